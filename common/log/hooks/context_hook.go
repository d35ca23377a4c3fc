package hooks

import (
	"runtime/debug"
	"strings"

	"github.com/sirupsen/logrus"
)

const modulePath = "copyclientnames/"

type contextHook struct {
}

func NewContextHook() contextHook {
	return contextHook{}
}

func (hook contextHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire records the first stack frame outside logrus and this hook as file:line.
func (hook contextHook) Fire(entry *logrus.Entry) error {
	if loc := callsite(string(debug.Stack())); loc != "" {
		entry.Data["file:line"] = loc
	}
	return nil
}

// callsite scans a debug.Stack() dump. File lines are tab indented and follow
// the function line they belong to.
func callsite(stack string) string {
	for _, line := range strings.Split(stack, "\n") {
		if !strings.HasPrefix(line, "\t") {
			continue
		}
		if strings.Contains(line, "sirupsen/logrus") ||
			strings.Contains(line, "/hooks/") ||
			strings.Contains(line, "runtime/debug") {
			continue
		}
		loc := strings.TrimSpace(line)
		if i := strings.Index(loc, " +0x"); i > 0 {
			loc = loc[:i]
		}
		ctx := strings.Split(loc, modulePath)
		return ctx[len(ctx)-1]
	}
	return ""
}
