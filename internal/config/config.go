package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/op/go-logging"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// DefaultLogLevel is used when no level is set or the set level is invalid.
const DefaultLogLevel = "WARNING"

const envPrefix = "QRMENU"

// Config tunes diagnostics only. The report itself never depends on it.
type Config struct {
	LogLevel string
}

func (c Config) String() string {
	return fmt.Sprintf("LogLevel: %s", c.LogLevel)
}

// InitConfig reads settings from the environment (QRMENU_LOG_LEVEL).
// No files are read.
func InitConfig() *Config {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log.level", DefaultLogLevel)

	return &Config{
		LogLevel: v.GetString("log.level"),
	}
}

// InitLogger installs a leveled backend writing to out. An invalid level
// still installs the backend, at DefaultLogLevel, and the parse error is
// returned so the caller can report it.
func InitLogger(logLevel string, out io.Writer) error {
	baseBackend := logging.NewLogBackend(out, "", 0)
	format := logging.MustStringFormatter(
		`%{time:2006-01-02 15:04:05} %{level:.5s}     %{message}`,
	)
	backendFormatter := logging.NewBackendFormatter(baseBackend, format)

	backendLeveled := logging.AddModuleLevel(backendFormatter)
	logLevelCode, err := logging.LogLevel(logLevel)
	if err != nil {
		err = errors.Wrapf(err, "invalid log level %q, using %s", logLevel, DefaultLogLevel)
		logLevelCode = logging.WARNING
	}
	backendLeveled.SetLevel(logLevelCode, "")

	logging.SetBackend(backendLeveled)
	return err
}
