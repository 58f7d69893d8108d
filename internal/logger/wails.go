package logger

// WailsLogger adapts Logger to the Wails runtime logger interface so that
// runtime.Log* calls from the shell end up in the same sink.
type WailsLogger struct {
	log *Logger
}

func NewWailsLogger(l *Logger) *WailsLogger {
	return &WailsLogger{log: l.With("component", "wails")}
}

func (w *WailsLogger) Print(message string)   { w.log.Info(message) }
func (w *WailsLogger) Trace(message string)   { w.log.Debug(message) }
func (w *WailsLogger) Debug(message string)   { w.log.Debug(message) }
func (w *WailsLogger) Info(message string)    { w.log.Info(message) }
func (w *WailsLogger) Warning(message string) { w.log.Warn(message) }
func (w *WailsLogger) Error(message string)   { w.log.Error(message) }

// Fatal logs at error level; the Wails runtime decides whether to exit.
func (w *WailsLogger) Fatal(message string) { w.log.Error(message) }

// GormWriter satisfies gorm's logger.Writer.
type GormWriter struct {
	log *Logger
}

func NewGormWriter(l *Logger) GormWriter {
	return GormWriter{log: l.With("component", "gorm")}
}

func (g GormWriter) Printf(format string, args ...interface{}) {
	g.log.SugaredLogger.Debugf(format, args...)
}
