// Package config loads server settings from flags, environment and an
// optional commdir.yaml using Viper.
package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configFileName = "commdir"
	configFileType = "yaml"
	envPrefix      = "COMMDIR"

	KeyHost            = "host"
	KeyPort            = "port"
	KeyAdminPort       = "admin_port"
	KeyDBPath          = "db_path"
	KeyPublicDir       = "public_dir"
	KeyShutdownTimeout = "shutdown_timeout"
	KeyExitAfter       = "exit_after"
	KeyLogLevel        = "log_level"
)

// Config is everything the server needs at startup. It is built once and
// passed to constructors; nothing reads settings from globals.
type Config struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	AdminPort       int           `mapstructure:"admin_port"`
	DBPath          string        `mapstructure:"db_path"`
	PublicDir       string        `mapstructure:"public_dir"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	ExitAfter       time.Duration `mapstructure:"exit_after"`
	LogLevel        string        `mapstructure:"log_level"`
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		Host:            "0.0.0.0",
		Port:            5000,
		AdminPort:       8383,
		DBPath:          "people.db",
		PublicDir:       "public",
		ShutdownTimeout: 15 * time.Second,
		LogLevel:        "info",
	}
}

// Addr is the public listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// AdminAddr is the admin listen address; the admin server binds loopback only.
func (c Config) AdminAddr() string {
	return net.JoinHostPort("127.0.0.1", strconv.Itoa(c.AdminPort))
}

// Validate reports settings the server cannot start with.
func (c Config) Validate() error {
	var errs []error
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	if c.AdminPort < 0 || c.AdminPort > 65535 {
		errs = append(errs, fmt.Errorf("admin port %d out of range", c.AdminPort))
	}
	if c.AdminPort != 0 && c.AdminPort == c.Port {
		errs = append(errs, fmt.Errorf("admin port %d collides with port", c.AdminPort))
	}
	if strings.TrimSpace(c.DBPath) == "" {
		errs = append(errs, errors.New("db path is empty"))
	}
	if strings.TrimSpace(c.PublicDir) == "" {
		errs = append(errs, errors.New("public dir is empty"))
	}
	if c.ShutdownTimeout < 0 {
		errs = append(errs, errors.New("shutdown timeout is negative"))
	}
	return errors.Join(errs...)
}

// SetDefaults registers Default() on v so every key is known to Viper,
// which AutomaticEnv needs to find environment overrides on Unmarshal.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyHost, d.Host)
	v.SetDefault(KeyPort, d.Port)
	v.SetDefault(KeyAdminPort, d.AdminPort)
	v.SetDefault(KeyDBPath, d.DBPath)
	v.SetDefault(KeyPublicDir, d.PublicDir)
	v.SetDefault(KeyShutdownTimeout, d.ShutdownTimeout)
	v.SetDefault(KeyExitAfter, d.ExitAfter)
	v.SetDefault(KeyLogLevel, d.LogLevel)
}

// Load reads configuration into a Config. Precedence is flags bound to v,
// then COMMDIR_* environment variables, then the config file, then defaults.
// When configFile is empty, commdir.yaml is looked up in the working
// directory and a missing file is not an error.
func Load(v *viper.Viper, configFile string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
