package log

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	easy "github.com/t-tomalak/logrus-easy-formatter"
)

// SetFormatter makes logrus print bare messages
func SetFormatter(logger *logrus.Logger) {
	logger.SetReportCaller(false)
	logger.SetFormatter(&easy.Formatter{
		LogFormat: "[%lvl%] %msg%\n",
	})
}

// SetDebugFormatter adds caller and field details to every entry
func SetDebugFormatter(logger *logrus.Logger, noColor bool) {
	logger.SetReportCaller(true)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:          noColor,
		DisableLevelTruncation: true,
		CallerPrettyfier: func(f *runtime.Frame) (string, string) {
			return "", fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
		},
	})
}

// Setup configures logger for a CLI run. debug wins over logLevel; an empty
// logLevel means info.
func Setup(logger *logrus.Logger, out io.Writer, logLevel string, debug bool) error {
	logger.SetOutput(out)

	if debug {
		logger.SetLevel(logrus.DebugLevel)
		SetDebugFormatter(logger, false)
		return nil
	}

	SetFormatter(logger)
	if logLevel == "" {
		logger.SetLevel(logrus.InfoLevel)
		return nil
	}

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return errors.Wrapf(err, "error parsing log level %q", logLevel)
	}
	logger.SetLevel(level)
	return nil
}
