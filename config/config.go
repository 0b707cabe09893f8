package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "BROADCASTER"

type config struct {
	// Debug indicates if in debug mode.
	Debug bool

	// Label is used as prefix in log output, e.g., mainnet, testnet.
	Label string

	// LogPath is the directory rotating log files are written to.
	LogPath string `mapstructure:"log_path"`

	// RPC is the JSON-RPC endpoint transactions are generated by.
	RPC string `mapstructure:"rpc"`

	// Explorer is the base url of the program explorer api.
	Explorer string

	// Network is the explorer path segment, e.g., mainnet, testnet.
	Network string

	RequestTimeout time.Duration `mapstructure:"request_timeout"`

	// PollDelay is the fixed wait before (and between) getGeneratedTransaction calls.
	PollDelay time.Duration `mapstructure:"poll_delay"`

	// PollAttempts caps the number of getGeneratedTransaction calls.
	PollAttempts uint `mapstructure:"poll_attempts"`

	// MaxAuthFileSize caps the raw authorization file size in bytes.
	MaxAuthFileSize int64 `mapstructure:"max_auth_file_size"`
}

var cfg config

var defaults = map[string]interface{}{
	"debug":              false,
	"label":              "",
	"log_path":           "./logs",
	"rpc":                "https://mainnet.aleorpc.com",
	"explorer":           "https://api.explorer.provable.com/v1",
	"network":            "mainnet",
	"request_timeout":    "30s",
	"poll_delay":         "10s",
	"poll_attempts":      1,
	"max_auth_file_size": 16 << 20,
}

// Load reads configs from file and environment, panics if invalid.
func Load(display bool) {
	if err := load(display); err != nil {
		panic(err)
	}
}

/* ------------------------------
        `Get` functions
------------------------------ */

// DebugMode tells if running in debug mode.
func DebugMode() bool {
	return cfg.Debug
}

// SetDebugMode overrides the loaded debug flag, e.g., from command line.
func SetDebugMode(debug bool) {
	cfg.Debug = debug
}

// GetLabel returns custome label as part of the log output prefix.
func GetLabel() string {
	return cfg.Label
}

// GetLogPath returns the log file directory.
func GetLogPath() string {
	return cfg.LogPath
}

// GetRPC returns the JSON-RPC endpoint url.
func GetRPC() string {
	return cfg.RPC
}

// GetExplorer returns the explorer api base url.
func GetExplorer() string {
	return cfg.Explorer
}

// GetNetwork returns the network name used in explorer paths.
func GetNetwork() string {
	return cfg.Network
}

// GetRequestTimeout returns the per-request network timeout.
func GetRequestTimeout() time.Duration {
	return cfg.RequestTimeout
}

// GetPollDelay returns the wait before polling the generated transaction.
func GetPollDelay() time.Duration {
	return cfg.PollDelay
}

// GetPollAttempts returns how many times the generated transaction is polled.
func GetPollAttempts() uint {
	return cfg.PollAttempts
}

// GetMaxAuthFileSize returns the authorization file size limit.
func GetMaxAuthFileSize() int64 {
	return cfg.MaxAuthFileSize
}

/* ------------------------------
         Utility Functions
------------------------------ */

func load(display bool) error {
	v := viper.New()
	v.SetConfigName("config")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	var loaded config
	if err := v.Unmarshal(&loaded); err != nil {
		return err
	}

	loaded.RPC = attachHTTPScheme(loaded.RPC)
	loaded.Explorer = strings.TrimSuffix(attachHTTPScheme(loaded.Explorer), "/")

	if err := validateConfig(&loaded); err != nil {
		return err
	}

	cfg = loaded

	if display {
		configContent, err := json.MarshalIndent(cfg, "", "    ")
		if err != nil {
			return err
		}

		fmt.Println(string(configContent))
	}

	return nil
}

func attachHTTPScheme(u string) string {
	if u != "" && !strings.HasPrefix(u, "http") {
		return "https://" + u
	}

	return u
}

func validateConfig(c *config) error {
	if err := checkURL("rpc", c.RPC); err != nil {
		return err
	}

	if err := checkURL("explorer", c.Explorer); err != nil {
		return err
	}

	if c.Network == "" {
		return errors.New("network must be set")
	}

	if c.PollAttempts == 0 {
		return errors.New("poll_attempts must be great than 0")
	}

	if c.MaxAuthFileSize <= 0 {
		return errors.New("max_auth_file_size must be great than 0")
	}

	return nil
}

func checkURL(name, rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("%s url must be set", name)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return err
	}

	if u.Host == "" {
		return fmt.Errorf("%s url has no host: %s", name, rawURL)
	}

	return nil
}
