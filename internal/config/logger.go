package config

import (
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var Log *logrus.Logger

// InitLogger sets up the JSON logger and returns an entry tagged with a
// fresh playback session id.
func InitLogger(out io.Writer, debug bool) *logrus.Entry {
	Log = logrus.New()
	Log.SetFormatter(&logrus.JSONFormatter{})
	Log.SetOutput(out)

	Log.SetLevel(logrus.InfoLevel)
	if debug {
		Log.SetLevel(logrus.DebugLevel)
	}

	return Log.WithField("session_id", uuid.NewString())
}
