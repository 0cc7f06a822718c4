package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New builds the process-wide logger. Invalid levels fall back to info
// rather than failing startup.
func New(level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.JSONFormatter{})

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
		log.Warnf("Invalid LOG_LEVEL '%s', using default: %s", level, logLevel.String())
	}
	log.SetLevel(logLevel)

	return log
}
