package main

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/traverse/event"
	"github.com/oomph-ac/traverse/game"
	"github.com/oomph-ac/traverse/input"
	"github.com/oomph-ac/traverse/player"
	"github.com/oomph-ac/traverse/player/movement"
	"github.com/oomph-ac/traverse/settings"
	"github.com/oomph-ac/traverse/worker"
	"github.com/oomph-ac/traverse/world"
	"github.com/sirupsen/logrus"
)

var (
	//go:embed demo.yaml
	demoScene []byte
	//go:embed demo.tengo
	demoScript []byte
)

const (
	fixedStep = float32(0.02)
	bodyDrag  = float32(4)
)

var bodyHalf = mgl32.Vec3{0.4, 1, 0.4}

var CLI struct {
	Settings string `help:"Path to the settings file, created with defaults if missing." default:"settings.toml" type:"path"`
	Scene    string `help:"Path to a YAML scene. The built-in demo scene is used if empty." type:"path"`
	Script   string `help:"Path to a tengo input script. The built-in demo script is used if empty." type:"path"`
	Count    int    `help:"Number of characters to simulate." short:"n" default:"4"`
	Ticks    int    `help:"Number of physics steps to run." default:"1000"`
	Realtime bool   `help:"Run physics steps at their real rate instead of as fast as possible."`
	Debug    bool   `help:"Whether to enable debug logging. Overrides the level in the settings file."`
}

// character is one simulated character with everything that drives it.
type character struct {
	body     *world.Body
	c        *player.Controller
	modes    *movement.Modes
	script   *input.Script
	recorder *event.Recorder
	err      error
}

// The following program runs a number of scripted characters through a scene and prints a digest of
// everything they did.
func main() {
	kong.Parse(&CLI,
		kong.Name("climbsim"),
		kong.Description("runs scripted characters through a climbing scene"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
	)

	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true}

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			log.Fatalf("unable to init sentry: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	s, err := settings.LoadOrCreate(CLI.Settings)
	if err != nil {
		log.Fatalf("unable to load settings: %v", err)
	}
	applyLogLevel(log, s)

	reloads := make(chan settings.Settings, 1)
	stop, err := settings.Watch(CLI.Settings, log, func(s settings.Settings) {
		// Only the latest settings matter if the tick loop has not picked up the previous ones yet.
		select {
		case <-reloads:
		default:
		}
		reloads <- s
	})
	if err != nil {
		log.Warnf("unable to watch settings, changes need a restart: %v", err)
	} else {
		defer stop()
	}

	if os.Getenv("STATSVIEW_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	scene, err := loadScene(CLI.Scene)
	if err != nil {
		log.Fatalf("unable to load scene: %v", err)
	}
	w, graph, err := scene.Build(log)
	if err != nil {
		log.Fatalf("unable to build scene: %v", err)
	}
	log.Infof("scene has %d climb points", graph.Len())

	src := demoScript
	if CLI.Script != "" {
		if src, err = os.ReadFile(CLI.Script); err != nil {
			log.Fatalf("unable to read script: %v", err)
		}
	}

	chars := make([]*character, CLI.Count)
	for i := range chars {
		ch, err := spawn(log, w, scene, s, src, i)
		if err != nil {
			log.Fatalf("unable to spawn character %d: %v", i, err)
		}
		chars[i] = ch
	}

	var ticker *time.Ticker
	if CLI.Realtime {
		ticker = time.NewTicker(time.Duration(fixedStep * float32(time.Second)))
		defer ticker.Stop()
	}

	start := time.Now()
	steps := make([]float64, 0, max(CLI.Ticks, 0))
	for tick := int64(0); tick < int64(CLI.Ticks); tick++ {
		select {
		case s = <-reloads:
			applyLogLevel(log, s)
			for _, ch := range chars {
				ch.modes.Apply(s)
				ch.c.SetDebug(s.Debug.Enabled)
			}
		default:
		}

		stepStart := time.Now()
		var g worker.Group
		for _, ch := range chars {
			if ch.err != nil {
				continue
			}
			g.Go(func() {
				ch.step(tick)
			})
		}
		g.Wait()
		steps = append(steps, float64(time.Since(stepStart).Microseconds()))

		if ticker != nil {
			<-ticker.C
		}
	}
	log.Infof("simulated %d steps of %d characters in %v", CLI.Ticks, len(chars), time.Since(start))
	log.Infof("step time: mean=%.1fus sd=%.1fus p99=%.1fus", game.Mean(steps), game.StandardDeviation(steps), game.Percentile(steps, 99))

	for i, ch := range chars {
		if ch.err != nil {
			fmt.Printf("character %d: stopped: %v\n", i, ch.err)
			continue
		}
		fmt.Printf("character %d: mode=%v pos=%v events=%d digest=%016x\n", i, ch.c.Mode(), ch.body.Position(), ch.recorder.Len(), ch.recorder.Digest())
	}
}

// spawn creates the i-th character of the scene in walking mode.
func spawn(log *logrus.Logger, w *world.World, scene world.Scene, s settings.Settings, src []byte, i int) (*character, error) {
	script, err := input.NewScript(src)
	if err != nil {
		return nil, err
	}

	body := w.NewBody(scene.SpawnPosition().Add(mgl32.Vec3{float32(i) * 1.5, 0, 0}), bodyHalf)
	body.SetDrag(bodyDrag)
	body.SetRotation(scene.SpawnRotation())

	c := player.New(log, body, w, player.NewFixedCamera(scene.SpawnRotation()), nil)
	modes := movement.Register(c, s)
	recorder := event.NewRecorder()
	c.Handle(recorder)
	c.SwitchMode(player.ModeWalk)

	return &character{body: body, c: c, modes: modes, script: script, recorder: recorder}, nil
}

// step runs a single frame of the character. A script error or a fault while stepping stops the
// character for the rest of the run.
func (ch *character) step(tick int64) {
	defer func() {
		if r := recover(); r != nil {
			ch.err = fmt.Errorf("tick %d: %v", tick, r)
		}
	}()
	if err := ch.script.Drive(ch.c, tick); err != nil {
		ch.err = err
		return
	}
	ch.c.TickUpdate(fixedStep)
	ch.c.TickFixedUpdate(fixedStep)
	ch.body.Step(fixedStep)
}

func loadScene(path string) (world.Scene, error) {
	if path == "" {
		return world.ParseScene(demoScene)
	}
	return world.LoadScene(path)
}

func applyLogLevel(log *logrus.Logger, s settings.Settings) {
	if CLI.Debug {
		log.SetLevel(logrus.DebugLevel)
		return
	}
	if s.Debug.LogLevel == "" {
		return
	}
	lvl, err := logrus.ParseLevel(s.Debug.LogLevel)
	if err != nil {
		log.Warnf("unknown log level %q, keeping %v", s.Debug.LogLevel, log.Level)
		return
	}
	log.SetLevel(lvl)
}
