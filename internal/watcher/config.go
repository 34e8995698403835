package watcher

import "time"

type WatcherConfig struct {
	DebounceWindow time.Duration `json:"debounce_window"`
	MaxBatchSize   int           `json:"max_batch_size"`
}

func DefaultWatcherConfig() WatcherConfig {
	return WatcherConfig{
		DebounceWindow: 300 * time.Millisecond,
		MaxBatchSize:   100,
	}
}
