// Package log builds the logger for a single run: a timestamped log file
// holding every entry at the configured level and above, mirrored to the
// console at INFO and above.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/twitter/copyclientnames/common/log/hooks"
)

// NameKey is the entry field holding the component (logger) name.
const NameKey = "logger"

const logFileTimeFormat = "20060102_150405"

type RunLogConfig struct {
	// Program name, used for the log file name and as the root logger name.
	Program string
	// Directory the log file is created in. Empty means the working directory.
	Dir string
	// Lowest level written to the log file.
	Level logrus.Level
	// Console receives INFO and above. Nil disables the console mirror.
	Console io.Writer
	// Adds a file:line field to every entry.
	Callsite bool
}

// RunLogger owns the logger and its file for the lifetime of one run.
type RunLogger struct {
	*logrus.Logger
	Path string
	file *os.File
	root string
}

// LogFileName returns "<program>_log_<YYYYmmdd_HHMMSS>.txt" with any extension stripped from program.
func LogFileName(program string, start time.Time) string {
	base := filepath.Base(program)
	if i := strings.Index(base, "."); i > 0 {
		base = base[:i]
	}
	return fmt.Sprintf("%s_log_%s.txt", base, start.Format(logFileTimeFormat))
}

func NewRunLogger(cfg RunLogConfig, start time.Time) (*RunLogger, error) {
	path := filepath.Join(cfg.Dir, LogFileName(cfg.Program, start))
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0600)
	if err != nil {
		return nil, errors.Wrapf(err, "opening log file %s", path)
	}

	root := strings.TrimSuffix(filepath.Base(cfg.Program), filepath.Ext(cfg.Program))
	l := logrus.New()
	l.SetOutput(file)
	l.SetLevel(cfg.Level)
	l.SetFormatter(&FileFormatter{DefaultName: root})
	if cfg.Console != nil {
		l.AddHook(hooks.NewConsoleHook(cfg.Console, &ConsoleFormatter{DefaultName: root}))
	}
	if cfg.Callsite {
		l.AddHook(hooks.NewContextHook())
	}
	return &RunLogger{Logger: l, Path: path, file: file, root: root}, nil
}

// Named returns an entry tagged with the given component name.
func (r *RunLogger) Named(name string) *logrus.Entry {
	return r.WithField(NameKey, name)
}

// Root returns an entry tagged with the program name.
func (r *RunLogger) Root() *logrus.Entry {
	return r.Named(r.root)
}

// Close flushes and closes the log file. Later entries go to stderr.
func (r *RunLogger) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	r.SetOutput(os.Stderr)
	syncErr := r.file.Sync()
	if err := r.file.Close(); err != nil {
		return err
	}
	r.file = nil
	return syncErr
}
