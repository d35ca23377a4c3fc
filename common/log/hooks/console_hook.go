package hooks

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// consoleHook mirrors INFO and above to a second writer with its own format.
type consoleHook struct {
	mu        sync.Mutex
	out       io.Writer
	formatter logrus.Formatter
}

func NewConsoleHook(out io.Writer, formatter logrus.Formatter) *consoleHook {
	return &consoleHook{out: out, formatter: formatter}
}

func (hook *consoleHook) Levels() []logrus.Level {
	return []logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
		logrus.WarnLevel,
		logrus.InfoLevel,
	}
}

func (hook *consoleHook) Fire(entry *logrus.Entry) error {
	line, err := hook.formatter.Format(entry)
	if err != nil {
		return err
	}
	hook.mu.Lock()
	defer hook.mu.Unlock()
	_, err = hook.out.Write(line)
	return err
}
