package logger

import (
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
)

const LOG_FORMAT = `%{time:2006-01-02 15:04:05.000} [%{color}%{level:.5s}%{color:reset}] %{module}: %{message}`

var (
	initialized bool
	backend     logging.Backend
)

// InitGlobalLogger initializes the stderr backend and formatter. Only the
// first call has an effect.
func InitGlobalLogger(logLevel string) error {
	return InitGlobalLoggerWithWriter(logLevel, os.Stderr)
}

func InitGlobalLoggerWithWriter(logLevel string, out io.Writer) error {
	if initialized {
		return nil
	}

	logLevelCode, err := logging.LogLevel(strings.ToUpper(logLevel))
	if err != nil {
		return err
	}

	backend = logging.NewLogBackend(out, "", 0)

	// %{module} will be the prefix set in logging.MustGetLogger(prefix)
	format := logging.MustStringFormatter(LOG_FORMAT)

	backendFormatter := logging.NewBackendFormatter(backend, format)

	backendLeveled := logging.AddModuleLevel(backendFormatter)
	backendLeveled.SetLevel(logLevelCode, "")

	logging.SetBackend(backendLeveled)

	initialized = true
	return nil
}

// GetLoggerWithPrefix returns a new logger with its own prefix (per module)
func GetLoggerWithPrefix(prefix string) *logging.Logger {
	return logging.MustGetLogger(prefix)
}
