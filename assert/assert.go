package assert

import "github.com/oomph-ac/traverse/oerror"

// IsTrue panics with an oerror if ok is false.
func IsTrue(ok bool, message string, args ...any) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
