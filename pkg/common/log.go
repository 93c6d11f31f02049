package common

import (
	"fmt"
	"io"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
)

func ParseLevel(level string) (log.Level, error) {
	switch strings.ToLower(level) {
	case "trace": return log.TraceLevel, nil
	case "debug": return log.DebugLevel, nil
	case "info": return log.InfoLevel, nil
	case "warn": return log.WarnLevel, nil
	case "error": return log.ErrorLevel, nil
	case "fatal": return log.FatalLevel, nil
	case "panic": return log.PanicLevel, nil
	default:
		return 0, fmt.Errorf("unsupported log level %s", level)
	}
}

func InitLogger(level, appName string) (*log.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger := log.New()
	logger.SetLevel(lvl)
	logger.SetFormatter(&LogFormatter{AppName: appName})
	return logger, nil
}

// DiscardLogger is handed to components that were not given a logger.
func DiscardLogger() *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return logger
}

type LogFormatter struct {
	AppName	string
}

func (f *LogFormatter) Format(entry *log.Entry) ([]byte, error)  {
	year, month, day := entry.Time.Date()
	hour, minute, second := entry.Time.Clock()
	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var fields strings.Builder
	for _, k := range keys {
		fields.WriteString(fmt.Sprintf(" %s=%v", k, entry.Data[k]))
	}
	str := fmt.Sprintf("%d/%02d/%02d %02d:%02d:%02d %s [%s] %s%s\n", year, month, day, hour, minute, second,
		strings.ToUpper(entry.Level.String()), f.AppName, entry.Message, fields.String())
	return []byte(str), nil
}
