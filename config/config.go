// Package config loads and persists the propsbot configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	DefaultFormat  string   `yaml:"default_format,omitempty"`
	ExcludedLogins []string `yaml:"excluded_logins,omitempty"`

	Directory *DirectoryConfig `yaml:"directory,omitempty"`
}

// DirectoryConfig points at the external community directory used to
// resolve GitHub logins to directory handles.
type DirectoryConfig struct {
	// Endpoint is the batch lookup URL.
	Endpoint string `yaml:"endpoint,omitempty"`
	// Domain is the host part of rendered attribution trailers
	// (login <handle@domain>).
	Domain string `yaml:"domain,omitempty"`
}

// Directory defaults point at the WordPress.org profile service, the
// directory this tool was built for.
const (
	DefaultDirectoryEndpoint = "https://profiles.wordpress.org/wp-json/wporg-github/v1/lookup"
	DefaultDirectoryDomain   = "git.wordpress.org"
)

// DefaultExcludedLogins returns the automation accounts that must never
// be credited as contributors.
func DefaultExcludedLogins() []string {
	return []string{
		"propsbot[bot]",
		"github-actions[bot]",
		"dependabot[bot]",
		"renovate[bot]",
	}
}

// DefaultConfigDir returns the default config directory
func DefaultConfigDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ".propsbot"
	}
	return filepath.Join(configDir, "propsbot")
}

// ConfigPath returns the path to the global config file
func ConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// LocalConfigPath returns the path to the local config file in the current directory
func LocalConfigPath() string {
	return ".propsbot.yaml"
}

// Load loads the configuration from disk.
// It first loads the global config from the XDG config directory, then
// merges any local .propsbot.yaml on top (local values take precedence).
func Load() (*Config, error) {
	cfg := &Config{
		DefaultFormat: "text",
	}

	globalPath := ConfigPath()
	if _, err := os.Stat(globalPath); err == nil {
		data, err := os.ReadFile(globalPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read global config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse global config file: %w", err)
		}
	}

	localPath := LocalConfigPath()
	if _, err := os.Stat(localPath); err == nil {
		data, err := os.ReadFile(localPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read local config file: %w", err)
		}
		var localCfg Config
		if err := yaml.Unmarshal(data, &localCfg); err != nil {
			return nil, fmt.Errorf("failed to parse local config file: %w", err)
		}
		cfg = mergeConfig(cfg, &localCfg)
	}

	if cfg.DefaultFormat == "" {
		cfg.DefaultFormat = "text"
	}

	return cfg, nil
}

// mergeConfig merges local config on top of global config.
// Local values take precedence; unset local values preserve global values.
func mergeConfig(global, local *Config) *Config {
	result := &Config{}

	if local.DefaultFormat != "" {
		result.DefaultFormat = local.DefaultFormat
	} else {
		result.DefaultFormat = global.DefaultFormat
	}

	if len(local.ExcludedLogins) > 0 {
		result.ExcludedLogins = local.ExcludedLogins
	} else {
		result.ExcludedLogins = global.ExcludedLogins
	}

	result.Directory = mergeDirectory(global.Directory, local.Directory)

	return result
}

func mergeDirectory(global, local *DirectoryConfig) *DirectoryConfig {
	if global == nil && local == nil {
		return nil
	}
	result := &DirectoryConfig{}

	if global != nil {
		result.Endpoint = global.Endpoint
		result.Domain = global.Domain
	}
	if local != nil {
		if local.Endpoint != "" {
			result.Endpoint = local.Endpoint
		}
		if local.Domain != "" {
			result.Domain = local.Domain
		}
	}

	return result
}

// GetExcludedLogins returns the exclusion list, using defaults if not
// configured.
func (c *Config) GetExcludedLogins() []string {
	if len(c.ExcludedLogins) > 0 {
		return c.ExcludedLogins
	}
	return DefaultExcludedLogins()
}

// GetDirectoryEndpoint returns the directory lookup URL, using the
// default if not configured.
func (c *Config) GetDirectoryEndpoint() string {
	if c.Directory != nil && c.Directory.Endpoint != "" {
		return c.Directory.Endpoint
	}
	return DefaultDirectoryEndpoint
}

// GetDirectoryDomain returns the trailer host, using the default if not
// configured.
func (c *Config) GetDirectoryDomain() string {
	if c.Directory != nil && c.Directory.Domain != "" {
		return c.Directory.Domain
	}
	return DefaultDirectoryDomain
}

// GetGitHubToken returns the GitHub token from the GITHUB_TOKEN
// environment variable. Following 12-factor practice, tokens are only
// read from the environment.
func (c *Config) GetGitHubToken() string {
	return os.Getenv("GITHUB_TOKEN")
}

// Save saves the configuration to disk
func (c *Config) Save() error {
	configDir := DefaultConfigDir()

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(), data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// SetDefaultFormat sets the default output format and saves
func (c *Config) SetDefaultFormat(format string) error {
	c.DefaultFormat = format
	return c.Save()
}

// DefaultConfig returns a fully populated config with all default
// values, useful for generating a complete config file template.
func DefaultConfig() *Config {
	return &Config{
		DefaultFormat:  "text",
		ExcludedLogins: DefaultExcludedLogins(),
		Directory: &DirectoryConfig{
			Endpoint: DefaultDirectoryEndpoint,
			Domain:   DefaultDirectoryDomain,
		},
	}
}

// ToYAML returns the config as a YAML string
func (c *Config) ToYAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(data), nil
}

// ConfigPathInfo contains information about config file paths
type ConfigPathInfo struct {
	GlobalPath   string
	GlobalExists bool
	LocalPath    string
	LocalExists  bool
}

// GetConfigPaths returns path info for both global and local configs
func GetConfigPaths() ConfigPathInfo {
	globalPath := ConfigPath()
	localPath := LocalConfigPath()

	absLocalPath, err := filepath.Abs(localPath)
	if err != nil {
		absLocalPath = localPath
	}

	_, globalErr := os.Stat(globalPath)
	_, localErr := os.Stat(localPath)

	return ConfigPathInfo{
		GlobalPath:   globalPath,
		GlobalExists: globalErr == nil,
		LocalPath:    absLocalPath,
		LocalExists:  localErr == nil,
	}
}

// MinimalConfig returns a minimal config template with comments
func MinimalConfig() string {
	return `# propsbot configuration file
# See: propsbot config defaults  (for all available options)

# Output format: text, trailers, or json
default_format: text

# Accounts that must never be credited (optional)
# excluded_logins:
#   - propsbot[bot]
#   - dependabot[bot]

# Community directory used for identity resolution (optional)
# directory:
#   endpoint: https://profiles.wordpress.org/wp-json/wporg-github/v1/lookup
#   domain: git.wordpress.org
`
}

// SaveTo writes content to a specific path, creating directories as needed
func SaveTo(path string, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	return nil
}
