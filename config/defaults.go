package config

import "path/filepath"

// DefaultRecentLimit is the recent-tip cache size used by the reference
// configuration (K=2).
const DefaultRecentLimit = 2

// DefaultConfig returns the node configuration used when no flags override it.
func DefaultConfig() *Config {
	return &Config{
		RecentLimit: DefaultRecentLimit,
		HistoryFile: filepath.Join(DefaultDataDir(), "history"),
		Log: LogConfig{
			Level: "info",
			JSON:  false,
		},
	}
}
