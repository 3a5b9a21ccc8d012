// Package logs configures the logrus standard logger for the benchmark
// binary: output format and an optional persistent log file that receives
// everything written to stdout.
package logs

import (
	"io"
	"os"
	"path/filepath"

	joonix "github.com/joonix/log"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

const (
	logFilePermissions = 0600
	logDirPermissions  = 0700
)

// SetLoggingFormat selects the formatter of the standard logger. Supported
// formats are text, fluentd and json. Colors are dropped from text output
// when disableColors is set, which callers do when logs also go to a file.
func SetLoggingFormat(format string, disableColors bool) error {
	switch format {
	case "text":
		formatter := new(prefixed.TextFormatter)
		formatter.TimestampFormat = "2006-01-02 15:04:05"
		formatter.FullTimestamp = true
		formatter.DisableColors = disableColors
		logrus.SetFormatter(formatter)
	case "fluentd":
		logrus.SetFormatter(joonix.NewFormatter())
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return errors.Errorf("unknown log format %s", format)
	}
	return nil
}

func addLogWriter(w io.Writer) {
	mw := io.MultiWriter(logrus.StandardLogger().Out, w)
	logrus.SetOutput(mw)
}

// ConfigurePersistentLogging adds a log-to-file writer. File content is identical to stdout.
// Missing parent directories are created.
func ConfigurePersistentLogging(logFileName string) error {
	logrus.WithField("logFileName", logFileName).Info("Logs will be made persistent")
	if err := os.MkdirAll(filepath.Dir(logFileName), logDirPermissions); err != nil {
		return errors.Wrap(err, "could not create log directory")
	}
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermissions) // #nosec G304
	if err != nil {
		return errors.Wrap(err, "could not open log file")
	}

	addLogWriter(f)

	logrus.Info("File logging initialized")
	return nil
}
