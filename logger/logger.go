package logger

import (
	"github.com/sirupsen/logrus"
)

// Init sets up the timestamped text formatter and level for all log statements.
func Init(level string) {
	formatter := new(logrus.TextFormatter)
	formatter.TimestampFormat = "2006-01-02 15:04:05"
	formatter.FullTimestamp = true
	logrus.SetFormatter(formatter)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.SetLevel(logrus.InfoLevel)
		logrus.Warnf("unknown log level %q, falling back to info", level)
		return
	}
	logrus.SetLevel(lvl)
}

// Default returns a logger without any request scoped fields.
func Default() *logrus.Entry {
	return logrus.NewEntry(logrus.StandardLogger())
}
