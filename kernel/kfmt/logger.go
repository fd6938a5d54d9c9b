package kfmt

var (
	logPrefixStart = []byte("[")
	logPrefixEnd   = []byte("] ")
)

// Logger emits module-tagged log lines ("[module] message") through the same
// path as Printf. Loggers are meant to be declared as package-level values:
//
//	var log = kfmt.Logger{Module: "kmain"}
type Logger struct {
	Module string
}

// Printf formats its arguments like Printf and writes them as a single line
// prefixed with the logger's module name. The whole line is written while
// holding the output lock.
func (l Logger) Printf(format string, args ...interface{}) {
	w, s := lockOutput()
	doWrite(w, logPrefixStart)
	writeStringBytes(w, l.Module)
	doWrite(w, logPrefixEnd)
	Fprintf(w, format, args...)
	doWrite(w, newLine)
	unlockOutput(s)
}
