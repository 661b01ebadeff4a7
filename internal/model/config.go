package model

import (
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// Config holds the runtime configuration for dump processing
type Config struct {
	Dump        DumpConfig        `yaml:"dump"`
	Cache       CacheConfig       `yaml:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Limits      LimitsConfig      `yaml:"limits"`
	Output      OutputConfig      `yaml:"output"`
}

// DumpConfig describes where dump files live
type DumpConfig struct {
	Dir     string `yaml:"dir"`     // Directory searched for dump files
	Project string `yaml:"project"` // Project name used in reports (e.g., "wikidatawiki")
}

// CacheConfig controls the processed-entity cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// ConcurrencyConfig controls parallel entity processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"` // Number of concurrent entity workers
}

// LimitsConfig caps processing throughput
type LimitsConfig struct {
	EntitiesPerSecond float64 `yaml:"entities_per_second"` // 0 = unlimited
	Burst             int     `yaml:"burst"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	cacheDir := ".wikibase-cache"
	if home, err := os.UserHomeDir(); err == nil {
		cacheDir = filepath.Join(home, ".wikibase", "cache")
	}

	return &Config{
		Dump: DumpConfig{
			Dir:     ".",
			Project: "wikidatawiki",
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       cacheDir,
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   7 * 24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: runtime.NumCPU(),
		},
		Limits: LimitsConfig{
			EntitiesPerSecond: 0,
			Burst:             100,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
	}
}
