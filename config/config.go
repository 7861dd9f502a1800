// Package config loads changelog settings with koanf.
// Priority: environment (CHANGELOG_*) > explicit file > project file
// (.changelog.yaml / .changelog.json) > user file in $HOME > defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/masmgr/changelog-go/internal/clierr"
	"github.com/masmgr/changelog-go/internal/git"
	"github.com/masmgr/changelog-go/internal/output"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CHANGELOG_"

// Config is the root configuration structure.
type Config struct {
	Writer   WriterSection  `koanf:"writer"`
	Defaults DefaultsConfig `koanf:"defaults"`
	Filters  FilterConfig   `koanf:"filters"`
}

// WriterSection holds rendering options.
type WriterSection struct {
	TypeDisplayNames    map[string]string `koanf:"type_display_names"`
	GroupByScope        bool              `koanf:"group_by_scope"`
	IgnoredTypes        []string          `koanf:"ignored_types"`
	BreakingSection     bool              `koanf:"breaking_section"`
	BreakingChangeLabel string            `koanf:"breaking_change_label"`
}

// DefaultsConfig holds the values used when a flag is not given.
type DefaultsConfig struct {
	From     string `koanf:"from"`
	To       string `koanf:"to"`
	Output   string `koanf:"output"`
	Format   string `koanf:"format"`
	Repo     string `koanf:"repo"`
	CloneDir string `koanf:"clone_dir"`
	Backend  string `koanf:"backend"`
}

// FilterConfig holds file path filtering options.
type FilterConfig struct {
	Include []string `koanf:"include"`
	Exclude []string `koanf:"exclude"`
}

// LoadOptions configures where configuration is read from.
type LoadOptions struct {
	// Path is an explicit config file. It must exist when set.
	Path string
	// ProjectDir is searched for project files (default: current directory).
	ProjectDir string
	// SkipUserConfig ignores config files in the home directory.
	SkipUserConfig bool
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	writer := output.DefaultWriterConfig()
	return &Config{
		Writer: WriterSection{
			TypeDisplayNames:    writer.TypeDisplayNames,
			GroupByScope:        writer.GroupByScope,
			IgnoredTypes:        writer.IgnoredTypes,
			BreakingSection:     writer.BreakingSection,
			BreakingChangeLabel: writer.BreakingChangeLabel,
		},
		Defaults: DefaultsConfig{
			From:     git.RootRef,
			To:       "HEAD",
			Output:   "CHANGELOG.md",
			Format:   string(output.FormatMarkdown),
			Repo:     ".",
			CloneDir: git.DefaultCloneDir,
			Backend:  string(git.BackendGoGit),
		},
		Filters: FilterConfig{
			Include: []string{},
			Exclude: []string{},
		},
	}
}

// LoadConfig loads configuration from all sources. path, when non-empty,
// names an explicit config file layered above the project and user files.
func LoadConfig(path string) (*Config, error) {
	return LoadWithOptions(LoadOptions{Path: path})
}

// LoadWithOptions loads configuration with custom options. The result is
// not validated: callers apply their overrides first, then call Validate.
func LoadWithOptions(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if !opts.SkipUserConfig {
		if err := loadFirstExisting(k, userConfigCandidates()); err != nil {
			return nil, err
		}
	}

	if err := loadFirstExisting(k, projectConfigCandidates(opts.ProjectDir)); err != nil {
		return nil, err
	}

	if opts.Path != "" {
		if _, err := os.Stat(opts.Path); err != nil {
			return nil, clierr.Configuration(err, "config file %s not readable", opts.Path)
		}
		if err := loadFile(k, opts.Path); err != nil {
			return nil, err
		}
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, clierr.Configuration(err, "failed to load environment config")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, clierr.Configuration(err, "failed to unmarshal config")
	}
	return &cfg, nil
}

// loadDefaults applies default configuration values.
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		_ = k.Set(key, value)
	}
}

// GetDefaults returns the default values as flat koanf keys.
func GetDefaults() map[string]interface{} {
	cfg := DefaultConfig()
	defaults := map[string]interface{}{
		"writer.group_by_scope":        cfg.Writer.GroupByScope,
		"writer.ignored_types":         cfg.Writer.IgnoredTypes,
		"writer.breaking_section":      cfg.Writer.BreakingSection,
		"writer.breaking_change_label": cfg.Writer.BreakingChangeLabel,
		"defaults.from":                cfg.Defaults.From,
		"defaults.to":                  cfg.Defaults.To,
		"defaults.output":              cfg.Defaults.Output,
		"defaults.format":              cfg.Defaults.Format,
		"defaults.repo":                cfg.Defaults.Repo,
		"defaults.clone_dir":           cfg.Defaults.CloneDir,
		"defaults.backend":             cfg.Defaults.Backend,
		"filters.include":              cfg.Filters.Include,
		"filters.exclude":              cfg.Filters.Exclude,
	}
	// Labels are set one by one so files can add types without
	// restating the built-in ones.
	for typ, label := range cfg.Writer.TypeDisplayNames {
		defaults["writer.type_display_names."+typ] = label
	}
	return defaults
}

func userConfigCandidates() []string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = os.Getenv("HOME")
	}
	if home == "" {
		return nil
	}
	return []string{
		filepath.Join(home, ".changelog.yaml"),
		filepath.Join(home, ".changelog.yml"),
		filepath.Join(home, ".changelog.json"),
	}
}

func projectConfigCandidates(dir string) []string {
	return []string{
		filepath.Join(dir, ".changelog.yaml"),
		filepath.Join(dir, ".changelog.yml"),
		filepath.Join(dir, ".changelog.json"),
	}
}

func loadFirstExisting(k *koanf.Koanf, candidates []string) error {
	for _, path := range candidates {
		if !fileExists(path) {
			continue
		}
		return loadFile(k, path)
	}
	return nil
}

// loadFile picks the parser from the file extension; YAML is the fallback.
func loadFile(k *koanf.Koanf, path string) error {
	var parser koanf.Parser = yaml.Parser()
	if strings.EqualFold(filepath.Ext(path), ".json") {
		parser = json.Parser()
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return clierr.Configuration(err, "failed to load config %s", path)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

var listKeys = map[string]bool{
	"writer.ignored_types": true,
	"filters.include":      true,
	"filters.exclude":      true,
}

// envTransform maps CHANGELOG_WRITER__IGNORED_TYPES=chore,docs to
// writer.ignored_types = [chore docs].
func envTransform(key, value string) (string, interface{}) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	key = strings.ReplaceAll(key, "__", ".")
	if !listKeys[key] {
		return key, value
	}
	items := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return key, items
}

// Validate checks values that would otherwise fail late in the run.
func (c *Config) Validate() error {
	if _, err := output.ParseFormat(c.Defaults.Format); err != nil {
		return err
	}
	if _, err := git.ParseBackend(c.Defaults.Backend); err != nil {
		return clierr.Configuration(err, "invalid defaults.backend")
	}
	if strings.TrimSpace(c.Defaults.From) == "" {
		return clierr.Configuration(nil, "defaults.from must not be empty")
	}
	if strings.TrimSpace(c.Defaults.To) == "" {
		return clierr.Configuration(nil, "defaults.to must not be empty")
	}
	return nil
}

// WriterConfig returns the writer settings as an independent value.
func (c *Config) WriterConfig() output.WriterConfig {
	return output.WriterConfig{
		TypeDisplayNames:    c.Writer.TypeDisplayNames,
		GroupByScope:        c.Writer.GroupByScope,
		IgnoredTypes:        c.Writer.IgnoredTypes,
		BreakingSection:     c.Writer.BreakingSection,
		BreakingChangeLabel: c.Writer.BreakingChangeLabel,
	}.Clone()
}

// String renders the config for --verbose output.
func (c *Config) String() string {
	return fmt.Sprintf("format=%s from=%s to=%s output=%s repo=%s backend=%s ignored=%v breaking_section=%t",
		c.Defaults.Format, c.Defaults.From, c.Defaults.To, c.Defaults.Output, c.Defaults.Repo,
		c.Defaults.Backend, c.Writer.IgnoredTypes, c.Writer.BreakingSection)
}
