package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix         = "yenksp"
	defaultConfigName = "yenksp"
)

// config is the merged view of flags, environment and config file.
type config struct {
	LogLevel      string   `mapstructure:"log-level"`
	LogFormat     string   `mapstructure:"log-format"`
	LogOutput     []string `mapstructure:"log-output"`
	Graph         string   `mapstructure:"graph"`
	HeaderLines   int      `mapstructure:"header-lines"`
	Nodes         int      `mapstructure:"nodes"`
	K             int      `mapstructure:"k"`
	Pairs         int      `mapstructure:"pairs"`
	Seed          int64    `mapstructure:"seed"`
	Source        int      `mapstructure:"source"`
	Sink          int      `mapstructure:"sink"`
	Workers       int      `mapstructure:"workers"`
	QueueCapacity int      `mapstructure:"queue-capacity"`
	CacheSize     int      `mapstructure:"cache-size"`
	Format        string   `mapstructure:"format"`
}

// loadConfig layers flags over YENKSP_* environment variables over the
// config file, in that order of precedence.
func loadConfig(cmd *cobra.Command) (*config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
	} else {
		v.SetConfigName(defaultConfigName)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for _, fs := range []*pflag.FlagSet{cmd.InheritedFlags(), cmd.Flags()} {
		if err := v.BindPFlags(fs); err != nil {
			return nil, err
		}
	}

	cfg := &config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks the settings that do not depend on the loaded graph.
func (c *config) validate() error {
	switch {
	case c.Graph == "":
		return errors.New("--graph is required")
	case c.K <= 0:
		return fmt.Errorf("--k must be > 0, got %d", c.K)
	case c.Workers < 0:
		return fmt.Errorf("--workers must be ≥ 0, got %d", c.Workers)
	case c.QueueCapacity <= 0:
		return fmt.Errorf("--queue-capacity must be > 0, got %d", c.QueueCapacity)
	case (c.Source >= 0) != (c.Sink >= 0):
		return errors.New("--source and --sink must be set together")
	case c.Source < 0 && c.Pairs <= 0:
		return fmt.Errorf("--pairs must be > 0, got %d", c.Pairs)
	}

	return nil
}
