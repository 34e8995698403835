package config

import (
	"time"

	"github.com/alucardeht/wordcount/internal/watcher"
)

// DefaultSource is the allowed-guesses list the tool was written against.
const DefaultSource = "https://gist.githubusercontent.com/cfreshman/cdcdf777450c5b5301e439061d29694c/raw/b8375870720504ecf89c1970ea4532454f12de94/wordle-allowed-guesses.txt"

type Config struct {
	Source      string
	Timeout     time.Duration
	Encoding    string
	ShowMatches bool
	LogLevel    string
	LogFormat   string
	Watch       watcher.WatcherConfig
}

func Default() *Config {
	return &Config{
		Source:      DefaultSource,
		Timeout:     30 * time.Second,
		Encoding:    "auto",
		ShowMatches: false,
		LogLevel:    "warn",
		LogFormat:   "text",
		Watch:       watcher.DefaultWatcherConfig(),
	}
}
