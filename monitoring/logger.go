// Package monitoring holds the diagnostic logging hook shared by the
// microplate packages. Failed batch items in plate and rebuild failures in
// snapshot are reported through it in addition to the returned errors.
package monitoring

// Logf is the package-level diagnostic logger. It discards output by default
// so the library stays silent unless a caller opts in with SetLogger.
var Logf func(format string, v ...interface{}) = discard

func discard(string, ...interface{}) {}

// SetLogger replaces the package logger. Passing nil restores the no-op
// logger.
//
//	monitoring.SetLogger(log.Printf)
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = discard
		return
	}
	Logf = f
}
