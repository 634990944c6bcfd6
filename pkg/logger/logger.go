package logger

import "log"

type Logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

type stdLogger struct {
	verbose bool
}

func New() Logger { return &stdLogger{} }

// NewVerbose returns a logger whose Debugf output is not suppressed; the
// CLI's -verbose flag uses it for the step trace.
func NewVerbose() Logger { return &stdLogger{verbose: true} }

func (l *stdLogger) Debugf(format string, v ...any) {
	if l.verbose {
		log.Printf("[DEBUG] "+format, v...)
	}
}
func (l *stdLogger) Infof(format string, v ...any)  { log.Printf("[INFO] "+format, v...) }
func (l *stdLogger) Errorf(format string, v ...any) { log.Printf("[ERROR] "+format, v...) }
