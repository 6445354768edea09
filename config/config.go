package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"divgame/experiments/metrics"
	"divgame/game"
	"divgame/meta"
	"divgame/searcher"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const EnvPrefix = "DIVGAME"

type Config struct {
	Depth     int           `mapstructure:"depth"`
	Algorithm string        `mapstructure:"algorithm"`
	First     string        `mapstructure:"first"`
	StartMin  int           `mapstructure:"start_min"`
	StartMax  int           `mapstructure:"start_max"`
	Seed      uint64        `mapstructure:"seed"`
	LogLevel  string        `mapstructure:"log_level"`
	LogFile   string        `mapstructure:"log_file"`
	AIDelay   time.Duration `mapstructure:"ai_delay"`
	Listen    string        `mapstructure:"listen"`

	Experiments Experiments `mapstructure:"experiments"`
}

type Experiments struct {
	Dir     string `mapstructure:"dir"`
	Format  string `mapstructure:"format"`
	Samples int    `mapstructure:"samples"`
	Depths  []int  `mapstructure:"depths"`
	Workers int    `mapstructure:"workers"`
	Games   int    `mapstructure:"games"`
}

// SetDefaults registers every key so environment variables bind even without
// a config file.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("depth", meta.DEFAULT_DEPTH)
	v.SetDefault("algorithm", string(searcher.AlgorithmAlphaBeta))
	v.SetDefault("first", "human")
	v.SetDefault("start_min", meta.START_MIN)
	v.SetDefault("start_max", meta.START_MAX)
	v.SetDefault("seed", 0)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("ai_delay", meta.AI_DELAY)
	v.SetDefault("listen", meta.LISTEN_ADDR)
	v.SetDefault("experiments.dir", "experiments")
	v.SetDefault("experiments.format", string(metrics.FormatCSV))
	v.SetDefault("experiments.samples", 200)
	v.SetDefault("experiments.depths", []int{1, 2, 3, 4, 5, 6})
	v.SetDefault("experiments.workers", 4)
	v.SetDefault("experiments.games", 30)
}

// Load reads an optional .env, an optional config file and DIVGAME_*
// environment variables into v, then decodes and validates the result.
func Load(v *viper.Viper, file string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Depth < 0 {
		return fmt.Errorf("depth must not be negative, got %d", c.Depth)
	}
	if _, err := searcher.ParseAlgorithm(c.Algorithm); err != nil {
		return err
	}
	if _, err := game.ParsePlayer(c.First); err != nil {
		return err
	}
	if c.StartMin > c.StartMax {
		return fmt.Errorf("start_min %d is above start_max %d", c.StartMin, c.StartMax)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if _, err := metrics.ParseFormat(c.Experiments.Format); err != nil {
		return err
	}
	for _, d := range c.Experiments.Depths {
		if d < 0 {
			return fmt.Errorf("experiment depth must not be negative, got %d", d)
		}
	}
	if c.Experiments.Workers < 1 {
		return fmt.Errorf("experiments.workers must be at least 1, got %d", c.Experiments.Workers)
	}
	return nil
}

// Searcher builds the configured strategy.
func (c Config) Searcher() (searcher.Searcher, error) {
	algorithm, err := searcher.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return nil, err
	}
	return searcher.New(algorithm)
}

func (c Config) FirstPlayer() game.Player {
	p, err := game.ParsePlayer(c.First)
	if err != nil { // Validated by Load
		panic(err)
	}
	return p
}

func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
