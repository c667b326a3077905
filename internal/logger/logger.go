package logger

import (
	"os"
	"time"

	"github.com/natefinch/lumberjack"
	logrus "github.com/sirupsen/logrus"
)

// Setup initializes Logrus with file rotation. LOG_FILE overrides the
// default path.
func Setup() {
	path := os.Getenv("LOG_FILE")
	if path == "" {
		path = "./logs/app.log"
	}

	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 7,
		MaxAge:     7, // days
		Compress:   true,
	}

	logrus.SetOutput(rotator)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.SetLevel(logrus.InfoLevel)
}

// L returns the standard Logrus logger for packages that want a handle
// rather than the package-level funcs.
func L() *logrus.Logger {
	return logrus.StandardLogger()
}
