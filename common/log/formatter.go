package log

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

const fileTimeFormat = "2006-01-02 15:04:05"

// FileFormatter writes "<time>: <LEVEL>: [<logger>]: <message> k=v...".
type FileFormatter struct {
	DefaultName string
}

func (f *FileFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := &bytes.Buffer{}
	fmt.Fprintf(b, "%s: %7s: [%s]: %s",
		entry.Time.Format(fileTimeFormat), levelName(entry.Level), entryName(entry, f.DefaultName), entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if k != NameKey {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, " %s=%v", k, entry.Data[k])
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

// ConsoleFormatter writes the shorter "<logger>: <LEVEL> <message>".
type ConsoleFormatter struct {
	DefaultName string
}

func (f *ConsoleFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	return []byte(fmt.Sprintf("%-12s: %-8s %s\n",
		entryName(entry, f.DefaultName), levelName(entry.Level), entry.Message)), nil
}

func entryName(entry *logrus.Entry, def string) string {
	if name, ok := entry.Data[NameKey].(string); ok && name != "" {
		return name
	}
	return def
}

func levelName(l logrus.Level) string {
	return strings.ToUpper(l.String())
}
