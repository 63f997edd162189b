package logging

import (
	"github.com/sirupsen/logrus"
)

// Init configures the process-wide logger. Called once from main.
func Init(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// ForGame returns the logging sink for one game's command audit trail.
func ForGame(gameID string) logrus.FieldLogger {
	return logrus.WithField("game", gameID)
}
