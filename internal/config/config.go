package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// DefaultStorageKey is the record key the saved build is stored under.
const DefaultStorageKey = "pc-configurator-build"

// Config holds application configuration.
type Config struct {
	// StorageKey names the single keyed record used for the saved build.
	StorageKey string `json:"storage_key,omitempty"`

	// CatalogPath points at a YAML catalog that replaces the embedded one.
	// Relative paths are resolved against the directory holding the config file.
	CatalogPath string `json:"catalog_path,omitempty"`

	// ShareCommand is an external command that receives the build summary on stdin.
	// It is the first share tier; when empty the clipboard tier runs first.
	ShareCommand []string `json:"share_command,omitempty"`

	// Log rotation settings for ~/.pcbuild/logs/pcbuild.log.
	LogMaxSizeMB   int  `json:"log_max_size_mb,omitempty"`
	LogMaxBackups  int  `json:"log_max_backups,omitempty"`
	LogMaxAgeDays  int  `json:"log_max_age_days,omitempty"`
	LogDisableFile bool `json:"log_disable_file,omitempty"`

	// DBMaxOpenConns limits the maximum number of open database connections.
	// 0 means use sql.DB default (unlimited).
	DBMaxOpenConns int `json:"db_max_open_conns,omitempty"`

	// DBMaxIdleConns limits the maximum number of idle database connections.
	DBMaxIdleConns int `json:"db_max_idle_conns,omitempty"`

	// WebBind and WebPort are the defaults for `pcbuild ui`.
	WebBind string `json:"web_bind,omitempty"`
	WebPort int    `json:"web_port,omitempty"`

	// DisabledTools is a list of MCP tool names to exclude from registration.
	// Unknown tool names are logged as warnings.
	DisabledTools []string `json:"disabled_tools,omitempty"`

	// baseDir is the directory the global config was read from.
	baseDir string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		StorageKey:    DefaultStorageKey,
		LogMaxSizeMB:  5,
		LogMaxBackups: 3,
		LogMaxAgeDays: 28,
		WebBind:       "127.0.0.1",
		WebPort:       8417,
	}
}

// BaseDir returns the directory the configuration was loaded from, if any.
func (c *Config) BaseDir() string {
	return c.baseDir
}

// ResolveCatalogPath returns CatalogPath made absolute against BaseDir.
// Returns "" when no external catalog is configured.
func (c *Config) ResolveCatalogPath() string {
	if c.CatalogPath == "" {
		return ""
	}
	if filepath.IsAbs(c.CatalogPath) || c.baseDir == "" {
		return c.CatalogPath
	}
	return filepath.Join(c.baseDir, c.CatalogPath)
}

// Load loads configuration from baseDir/config.json.
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.pcbuild.
func Load(baseDir string) (*Config, error) {
	cfg, err := loadFile(filepath.Join(baseDir, "config.json"))
	if err != nil {
		return nil, err
	}
	cfg.baseDir = baseDir
	return cfg, nil
}

// LoadWithRepo loads configuration from both global (~/.pcbuild) and repo (.pcbuild) directories.
// Repo config is found by walking upward from startDir to find the nearest .pcbuild/config.json.
// Repo config takes precedence for scalar values; arrays are merged (deduplicated).
// Either or both configs may be missing.
func LoadWithRepo(globalDir, startDir string) (*Config, error) {
	global, err := loadFileRaw(filepath.Join(globalDir, "config.json"))
	if err != nil {
		return nil, err
	}

	repoConfigPath := FindRepoConfig(startDir)
	repo, err := loadFileRaw(repoConfigPath)
	if err != nil {
		return nil, err
	}

	cfg := Merge(Merge(DefaultConfig(), global), repo)
	cfg.baseDir = globalDir
	if repo.CatalogPath != "" && repoConfigPath != "" {
		cfg.baseDir = filepath.Dir(repoConfigPath)
	}
	return cfg, nil
}

// FindRepoConfig walks upward from startDir to find the nearest .pcbuild/config.json.
// Returns the path if found, or empty string if not found.
func FindRepoConfig(startDir string) string {
	dir := startDir
	for {
		configPath := filepath.Join(dir, ".pcbuild", "config.json")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the file doesn't exist (not defaults).
func loadFileRaw(configPath string) (*Config, error) {
	if configPath == "" {
		return &Config{}, nil
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile loads configuration from a specific file path.
// Returns default config if the file doesn't exist.
func loadFile(configPath string) (*Config, error) {
	cfg, err := loadFileRaw(configPath)
	if err != nil {
		return nil, err
	}
	return Merge(DefaultConfig(), cfg), nil
}

// Merge combines base and overlay configs.
// Overlay values take precedence for scalars; arrays are merged and deduplicated.
// ShareCommand is an argv, so the overlay replaces it wholesale.
func Merge(base, overlay *Config) *Config {
	result := &Config{baseDir: base.baseDir}

	result.StorageKey = firstString(overlay.StorageKey, base.StorageKey)
	result.CatalogPath = firstString(overlay.CatalogPath, base.CatalogPath)
	result.WebBind = firstString(overlay.WebBind, base.WebBind)

	result.LogMaxSizeMB = firstInt(overlay.LogMaxSizeMB, base.LogMaxSizeMB)
	result.LogMaxBackups = firstInt(overlay.LogMaxBackups, base.LogMaxBackups)
	result.LogMaxAgeDays = firstInt(overlay.LogMaxAgeDays, base.LogMaxAgeDays)
	result.DBMaxOpenConns = firstInt(overlay.DBMaxOpenConns, base.DBMaxOpenConns)
	result.DBMaxIdleConns = firstInt(overlay.DBMaxIdleConns, base.DBMaxIdleConns)
	result.WebPort = firstInt(overlay.WebPort, base.WebPort)

	result.LogDisableFile = base.LogDisableFile || overlay.LogDisableFile

	result.ShareCommand = base.ShareCommand
	if len(overlay.ShareCommand) > 0 {
		result.ShareCommand = overlay.ShareCommand
	}

	result.DisabledTools = mergeStringSlice(base.DisabledTools, overlay.DisabledTools)

	return result
}

func firstString(overlay, base string) string {
	if strings.TrimSpace(overlay) != "" {
		return overlay
	}
	return base
}

func firstInt(overlay, base int) int {
	if overlay != 0 {
		return overlay
	}
	return base
}

// mergeStringSlice combines two slices, trims whitespace, and removes duplicates.
func mergeStringSlice(a, b []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(a)+len(b))

	for _, s := range a {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}
	for _, s := range b {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
