package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the configuration of the godash command. It is read from godash.yaml,
// then GODASH_* environment variables, then flags.
type Config struct {
	BoardSize int     `mapstructure:"board_size"`
	Komi      float64 `mapstructure:"komi"`
	LogLevel  string  `mapstructure:"log_level"`
	GIF       GIFConf `mapstructure:"gif"`
}

// GIFConf sizes the frames written by "replay --gif".
type GIFConf struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
	Delay  int `mapstructure:"delay"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("board_size", 19)
	v.SetDefault("komi", 6.5)
	v.SetDefault("log_level", "info")
	v.SetDefault("gif.width", 1024)
	v.SetDefault("gif.height", 1024)
	v.SetDefault("gif.delay", 50)
}

// commonFlags are understood by every subcommand.
func commonFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a config file (default ./godash.yaml if present)")
	fs.Int("board_size", 19, "board size for new games")
	fs.Float64("komi", 6.5, "komi for new games")
	fs.String("log_level", "info", "debug, info, warn or error")
}

// Setup loads the configuration. Flags that were not set on the command line do not override the file or environment.
func Setup(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("GODASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfgPath, _ := fs.GetString("config")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "Unable to read config %q", cfgPath)
		}
	} else {
		v.SetConfigName("godash")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, errors.Wrap(err, "Unable to read godash.yaml")
			}
		}
	}

	for _, key := range []string{"board_size", "komi", "log_level"} {
		if f := fs.Lookup(key); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, errors.WithStack(err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "Unable to decode config")
	}
	return &cfg, nil
}
