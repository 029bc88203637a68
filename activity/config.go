package activity

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTopN            = 10
	DefaultWindow          = 7 * 24 * time.Hour
	DefaultCacheExpiration = time.Minute
	DefaultCyclingType     = "Ride"
	DefaultRunningType     = "Run"
)

type Config struct {
	TopN            int           `yaml:"topN" json:"topN"`
	Window          time.Duration `yaml:"window" json:"window"`
	CacheExpiration time.Duration `yaml:"cacheExpiration" json:"cacheExpiration"`
	CyclingType     string        `yaml:"cyclingType" json:"cyclingType"`
	RunningType     string        `yaml:"runningType" json:"runningType"`
}

func (cfg *Config) fix() {
	if cfg.TopN <= 0 {
		cfg.TopN = DefaultTopN
	}

	if cfg.Window <= 0 {
		cfg.Window = DefaultWindow
	}

	if cfg.CacheExpiration <= 0 {
		cfg.CacheExpiration = DefaultCacheExpiration
	}

	if cfg.CyclingType == "" {
		cfg.CyclingType = DefaultCyclingType
	}

	if cfg.RunningType == "" {
		cfg.RunningType = DefaultRunningType
	}
}

func LoadConfig(file string) (cfg *Config, err error) {
	d, err := os.ReadFile(file)
	if err != nil {
		return
	}

	cfg = &Config{}

	err = yaml.Unmarshal(d, cfg)
	if err != nil {
		cfg = nil

		return
	}

	cfg.fix()

	return
}
