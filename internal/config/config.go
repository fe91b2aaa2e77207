// Package config loads game settings from defaults, an optional file, .env and
// DELVE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"delve/internal/fov"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the fully resolved settings tree.
type Config struct {
	Seed      int64           `mapstructure:"seed"`
	Map       MapConfig       `mapstructure:"map"`
	Rooms     RoomsConfig     `mapstructure:"rooms"`
	Monsters  MonstersConfig  `mapstructure:"monsters"`
	FOV       FOVConfig       `mapstructure:"fov"`
	Log       LogConfig       `mapstructure:"log"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	RunLog    RunLogConfig    `mapstructure:"runlog"`
	Server    ServerConfig    `mapstructure:"server"`
}

type MapConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

type RoomsConfig struct {
	MinSize     int `mapstructure:"min_size"`
	MaxSize     int `mapstructure:"max_size"`
	MaxAttempts int `mapstructure:"max_attempts"`
}

type MonstersConfig struct {
	MaxPerRoom int `mapstructure:"max_per_room"`
}

type FOVConfig struct {
	Radius     int    `mapstructure:"radius"`
	LightWalls bool   `mapstructure:"light_walls"`
	Algorithm  string `mapstructure:"algorithm"` // see fov.ParseAlgorithm
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

type TelemetryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type RunLogConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type ServerConfig struct {
	Port    int    `mapstructure:"port"`
	HostKey string `mapstructure:"host_key"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("seed", 0)
	v.SetDefault("map.width", 80)
	v.SetDefault("map.height", 45)
	v.SetDefault("rooms.min_size", 10)
	v.SetDefault("rooms.max_size", 10)
	v.SetDefault("rooms.max_attempts", 40)
	v.SetDefault("monsters.max_per_room", 3)
	v.SetDefault("fov.radius", 10)
	v.SetDefault("fov.light_walls", true)
	v.SetDefault("fov.algorithm", "basic")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("runlog.enabled", true)
	v.SetDefault("server.port", 2222)
	v.SetDefault("server.host_key", "server_host_key")
}

// Load resolves the configuration. path may be empty; a missing .env is not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("DELVE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the generator cannot satisfy.
func (c *Config) Validate() error {
	var errs []error
	if c.Map.Width <= 0 || c.Map.Height <= 0 {
		errs = append(errs, fmt.Errorf("map size %dx%d must be positive", c.Map.Width, c.Map.Height))
	}
	if c.Rooms.MinSize < 3 {
		errs = append(errs, fmt.Errorf("rooms.min_size %d must be at least 3", c.Rooms.MinSize))
	}
	if c.Rooms.MinSize > c.Rooms.MaxSize {
		errs = append(errs, fmt.Errorf("rooms.min_size %d exceeds rooms.max_size %d", c.Rooms.MinSize, c.Rooms.MaxSize))
	}
	if c.Rooms.MaxSize >= c.Map.Width || c.Rooms.MaxSize >= c.Map.Height {
		errs = append(errs, fmt.Errorf("rooms.max_size %d does not fit a %dx%d map", c.Rooms.MaxSize, c.Map.Width, c.Map.Height))
	}
	if c.Rooms.MaxAttempts < 0 {
		errs = append(errs, fmt.Errorf("rooms.max_attempts %d is negative", c.Rooms.MaxAttempts))
	}
	if c.Monsters.MaxPerRoom < 0 {
		errs = append(errs, fmt.Errorf("monsters.max_per_room %d is negative", c.Monsters.MaxPerRoom))
	}
	if c.FOV.Radius < 0 {
		errs = append(errs, fmt.Errorf("fov.radius %d is negative", c.FOV.Radius))
	}
	if _, err := fov.ParseAlgorithm(c.FOV.Algorithm); err != nil {
		errs = append(errs, fmt.Errorf("fov.algorithm: %w", err))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
