package config

// Default paths for on-disk state
const (
	// DefaultDataDir is the default directory for the JSON record files
	DefaultDataDir = "./data"
)
