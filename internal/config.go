package internal

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// Config holds application settings
type Config struct {
	// User configurable settings
	Languages  string // comma-separated default language preference
	Cookies    string // cookies file for age-restricted videos, passed to yt-dlp as-is
	ProxyHTTP  string
	ProxyHTTPS string
	Verbose    bool
	Quiet      bool
	MCPLog     bool

	// Fixed XDG paths (not configurable)
	ConfigDir string
	CacheDir  string
}

//go:embed config.toml
var defaultFS embed.FS

// EnsureDefaultConfig checks if a config file exists in the XDG config
// directory and creates it from the embedded default if it doesn't exist.
func EnsureDefaultConfig(configDir string) error {
	filePath := filepath.Join(configDir, "config.toml")
	if FileExists(filePath) {
		return nil
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	defaultContent, err := defaultFS.ReadFile("config.toml")
	if err != nil {
		return fmt.Errorf("reading embedded default configuration: %w", err)
	}

	if err := os.WriteFile(filePath, defaultContent, 0644); err != nil {
		return fmt.Errorf("writing default configuration: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Created default configuration at %s\n", filePath)
	return nil
}

// InitConfig initializes Viper and loads configuration
func InitConfig() *Config {
	// XDG standard directories
	configDir := filepath.Join(xdg.ConfigHome, "ytt")
	cacheDir := filepath.Join(xdg.CacheHome, "ytt")

	// Initialize viper
	v := viper.New()

	// Set default values for configurable settings
	v.SetDefault("languages", "en")
	v.SetDefault("cookies", "")
	v.SetDefault("proxy_http", "")
	v.SetDefault("proxy_https", "")
	v.SetDefault("verbose", false)
	v.SetDefault("quiet", false)
	v.SetDefault("mcp_log", false)

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	// Environment variables
	v.SetEnvPrefix("YTT")
	v.AutomaticEnv()

	// Cookie and proxy settings also honor the conventional YOUTUBE_* names
	_ = v.BindEnv("cookies", "YTT_COOKIES", "YOUTUBE_COOKIES")
	_ = v.BindEnv("proxy_http", "YTT_PROXY_HTTP", "YOUTUBE_PROXY_HTTP")
	_ = v.BindEnv("proxy_https", "YTT_PROXY_HTTPS", "YOUTUBE_PROXY_HTTPS")

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Warning: Error reading config file: %v\n", err)
		}
	}

	// Create config struct from viper
	config := &Config{
		Languages:  v.GetString("languages"),
		Cookies:    expandCookiesPath(v.GetString("cookies")),
		ProxyHTTP:  v.GetString("proxy_http"),
		ProxyHTTPS: v.GetString("proxy_https"),
		Verbose:    v.GetBool("verbose"),
		Quiet:      v.GetBool("quiet"),
		MCPLog:     v.GetBool("mcp_log"),

		ConfigDir: configDir,
		CacheDir:  cacheDir,
	}

	// HTTPS proxy falls back to the HTTP value when unset
	if config.ProxyHTTPS == "" {
		config.ProxyHTTPS = config.ProxyHTTP
	}

	if config.Verbose && v.ConfigFileUsed() != "" {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	return config
}

// expandCookiesPath expands a leading ~ and drops the setting when the file
// doesn't exist, so yt-dlp never gets handed a dead path.
func expandCookiesPath(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	if !FileExists(path) {
		fmt.Fprintf(os.Stderr, "Warning: cookies file not found: %s\n", path)
		return ""
	}
	return path
}
