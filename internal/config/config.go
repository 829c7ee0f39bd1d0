package config

import (
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Data
		Auth
		Audit
		Static
		Watcher
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Data struct {
		Dir string // Directory holding the JSON record files
	}
	Auth struct {
		UsersFile   string        // Path to the flat JSON user file
		TokenSecret string        // Hex-encoded HMAC secret; auto-generated if empty
		TokenTTL    time.Duration // Token lifetime
		BcryptCost  int
	}
	Audit struct {
		Enabled bool
		Dir     string
	}
	Static struct {
		Dir string // Built site directory served for non-API paths
	}
	Watcher struct {
		Enabled bool // Log external edits to the data directory
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("data_dir", DefaultDataDir)
	v.SetDefault("users_file", "")
	v.SetDefault("static_dir", "./dist")
	v.SetDefault("watch_data_dir", true)

	// Audit defaults
	v.SetDefault("audit_enabled", true)
	v.SetDefault("audit_dir", "./audit")

	// Auth defaults
	v.SetDefault("auth_token_secret", "") // Auto-generated if empty
	v.SetDefault("auth_token_ttl", "720h")
	v.SetDefault("auth_bcrypt_cost", 12)

	dataDir := v.GetString("DATA_DIR")
	usersFile := v.GetString("USERS_FILE")
	if usersFile == "" {
		usersFile = filepath.Join(dataDir, "users.json")
	}

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Data: Data{
			Dir: dataDir,
		},
		Auth: Auth{
			UsersFile:   usersFile,
			TokenSecret: v.GetString("AUTH_TOKEN_SECRET"),
			TokenTTL:    v.GetDuration("AUTH_TOKEN_TTL"),
			BcryptCost:  v.GetInt("AUTH_BCRYPT_COST"),
		},
		Audit: Audit{
			Enabled: v.GetBool("AUDIT_ENABLED"),
			Dir:     v.GetString("AUDIT_DIR"),
		},
		Static: Static{
			Dir: v.GetString("STATIC_DIR"),
		},
		Watcher: Watcher{
			Enabled: v.GetBool("WATCH_DATA_DIR"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
