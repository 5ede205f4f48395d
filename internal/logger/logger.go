package logger

import (
	"fmt"
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

type Logger struct {
	l log.Logger
}

func New(w io.Writer) *Logger {
	l := log.NewLogfmtLogger(log.NewSyncWriter(w))
	l = log.With(l, "ts", log.DefaultTimestampUTC, "service", "booking")

	return &Logger{l: l}
}

func (l *Logger) LogErrorf(format string, v ...any) {
	_ = level.Error(l.l).Log("msg", fmt.Sprintf(format, v...))
}

func (l *Logger) LogInfo(format string, v ...any) {
	_ = level.Info(l.l).Log("msg", fmt.Sprintf(format, v...))
}
