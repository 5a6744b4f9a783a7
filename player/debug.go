package player

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

// Debugger logs diagnostics for the movement modes while debugging is enabled. Toggling it never
// changes what the modes decide.
type Debugger struct {
	log     *logrus.Logger
	enabled atomic.Bool
}

// Enabled returns true if diagnostics are emitted.
func (d *Debugger) Enabled() bool {
	return d.enabled.Load()
}

// Notify logs the message at debug level if debugging is enabled and cond holds.
func (d *Debugger) Notify(mode MovementMode, cond bool, format string, args ...any) {
	if !cond || !d.enabled.Load() {
		return
	}
	d.log.WithField("mode", mode.String()).Debugf(format, args...)
}
