package config

import (
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lusion/netserve/lib/logger"
)

// ServerProperties defines global config properties
type ServerProperties struct {
	Bind          string        `mapstructure:"bind"`
	Port          int           `mapstructure:"port"`
	PoolSize      int           `mapstructure:"pool-size"`
	HandleTimeout time.Duration `mapstructure:"handle-timeout"`

	LogPath  string `mapstructure:"log-path"`
	LogName  string `mapstructure:"log-name"`
	LogExt   string `mapstructure:"log-ext"`
	LogLevel string `mapstructure:"log-level"`
}

// Properties holds global config properties
var Properties *ServerProperties

func init() {
	// default config
	Properties = &ServerProperties{
		Bind:     "0.0.0.0",
		Port:     1234,
		PoolSize: runtime.NumCPU(),
		LogName:  "netserve",
		LogExt:   "log",
		LogLevel: "info",
	}
}

// SetupConfig loads Properties from an optional config file and NETSERVE_*
// environment overrides. An empty filename skips the file
func SetupConfig(configFilename string) {
	v := viper.New()
	v.SetDefault("bind", Properties.Bind)
	v.SetDefault("port", Properties.Port)
	v.SetDefault("pool-size", Properties.PoolSize)
	v.SetDefault("handle-timeout", Properties.HandleTimeout)
	v.SetDefault("log-path", Properties.LogPath)
	v.SetDefault("log-name", Properties.LogName)
	v.SetDefault("log-ext", Properties.LogExt)
	v.SetDefault("log-level", Properties.LogLevel)

	v.SetEnvPrefix("netserve")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFilename != "" {
		v.SetConfigFile(configFilename)
		if err := v.ReadInConfig(); err != nil {
			logger.Fatal(err)
		}
	}

	config := &ServerProperties{}
	if err := v.Unmarshal(config); err != nil {
		logger.Fatal(err)
	}
	Properties = config
}
