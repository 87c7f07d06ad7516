// Package config loads and validates YAML configuration for the typogrify
// CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/alnah/go-typogrify/internal/fileutil"
	"github.com/alnah/go-typogrify/internal/htmltoken"
	"github.com/alnah/go-typogrify/internal/yamlutil"
)

var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxModeLength    = 16
	MaxPathLength    = 4096
	MaxSkipTags      = 32
	MaxTagNameLength = 32
)

// Allowed values, lower case. The empty string always means "default".
var (
	PassNames  = []string{"amp", "widont", "smartypants", "caps", "initialquotes", "dash"}
	LogLevels  = []string{"debug", "info", "warn", "error"}
	LogFormats = []string{"text", "json"}
	Formats    = []string{"html", "pdf"}
	PaperSizes = []string{"letter", "a4", "legal"}
)

// DirName is the directory under the user config dir searched for named
// configs.
const DirName = "go-typogrify"

// Config holds every setting the CLI reads from a file.
type Config struct {
	Typography TypographyConfig `yaml:"typography"`
	Input      InputConfig      `yaml:"input"`
	Output     OutputConfig     `yaml:"output"`
	CSS        CSSConfig        `yaml:"css"`
	Assets     AssetsConfig     `yaml:"assets"`
	Log        LogConfig        `yaml:"log"`
	PDF        PDFConfig        `yaml:"pdf"`
}

// TypographyConfig selects what the passes do.
type TypographyConfig struct {
	Mode       string   `yaml:"mode"`       // SmartyPants mode: "0".."3", "-1", or letters
	SkipTags   []string `yaml:"skipTags"`   // empty = pre, code, kbd, script, math
	Guillemets bool     `yaml:"guillemets"` // « counts as an initial quote
	Disable    []string `yaml:"disable"`    // pass names to turn off
	RawHTML    bool     `yaml:"rawHTML"`    // keep inline HTML in Markdown input
}

type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"`
}

type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // empty = next to the source
	Format     string `yaml:"format"`     // html (default) or pdf
}

type CSSConfig struct {
	Style string `yaml:"style"` // name, path, or CSS text; empty = default style
	None  bool   `yaml:"none"`  // inject no stylesheet
}

type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = embedded styles only
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	File    string `yaml:"file"`
	Journal bool   `yaml:"journal"`
}

type PDFConfig struct {
	PaperSize string `yaml:"paperSize"`
	Timeout   string `yaml:"timeout"` // Go duration, e.g. "45s"
}

// DefaultConfig returns a Config where every field takes its default.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks lengths and enumerated values. LoadConfig calls it; code
// that builds a Config by hand should too.
func (c *Config) Validate() error {
	t := c.Typography
	if err := validateFieldLength("typography.mode", t.Mode, MaxModeLength); err != nil {
		return err
	}
	if len(t.SkipTags) > MaxSkipTags {
		return fmt.Errorf("%w: typography.skipTags (%d tags, max %d)", ErrFieldTooLong, len(t.SkipTags), MaxSkipTags)
	}
	for i, tag := range t.SkipTags {
		if err := validateFieldLength(fmt.Sprintf("typography.skipTags[%d]", i), tag, MaxTagNameLength); err != nil {
			return err
		}
	}
	if _, err := htmltoken.NewSkipSet(t.SkipTags...); err != nil {
		return fmt.Errorf("%w: typography.skipTags: %w", ErrInvalidValue, err)
	}
	for i, name := range t.Disable {
		if err := validateChoice(fmt.Sprintf("typography.disable[%d]", i), name, PassNames); err != nil {
			return err
		}
	}

	for field, value := range map[string]string{
		"input.defaultDir":  c.Input.DefaultDir,
		"output.defaultDir": c.Output.DefaultDir,
		"css.style":         c.CSS.Style,
		"assets.basePath":   c.Assets.BasePath,
		"log.file":          c.Log.File,
	} {
		if err := validateFieldLength(field, value, MaxPathLength); err != nil {
			return err
		}
	}

	if err := validateChoice("output.format", c.Output.Format, Formats); err != nil {
		return err
	}
	if err := validateChoice("log.level", c.Log.Level, LogLevels); err != nil {
		return err
	}
	if err := validateChoice("log.format", c.Log.Format, LogFormats); err != nil {
		return err
	}
	if err := validateChoice("pdf.paperSize", c.PDF.PaperSize, PaperSizes); err != nil {
		return err
	}
	if _, err := c.PDF.TimeoutDuration(); err != nil {
		return err
	}
	return nil
}

// TimeoutDuration parses Timeout. It returns 0 when Timeout is empty.
func (p PDFConfig) TimeoutDuration() (time.Duration, error) {
	if p.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(p.Timeout)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: pdf.timeout %q (want a positive duration like 45s)", ErrInvalidValue, p.Timeout)
	}
	return d, nil
}

// PassEnabled reports whether the named pass is absent from Disable.
func (t TypographyConfig) PassEnabled(name string) bool {
	for _, d := range t.Disable {
		if strings.EqualFold(d, name) {
			return false
		}
	}
	return true
}

func validateFieldLength(field, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, field, len(value), maxLength)
	}
	return nil
}

func validateChoice(field, value string, allowed []string) error {
	if value == "" || slices.Contains(allowed, strings.ToLower(value)) {
		return nil
	}
	return fmt.Errorf("%w: %s %q (must be one of %s)", ErrInvalidValue, field, value, strings.Join(allowed, ", "))
}

// NotFoundError lists the locations searched for a named config. It
// matches ErrConfigNotFound with errors.Is.
type NotFoundError struct {
	Name     string
	Searched []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: %s (tried %s)", ErrConfigNotFound, e.Name, strings.Join(e.Searched, ", "))
}

func (e *NotFoundError) Unwrap() error {
	return ErrConfigNotFound
}

// LoadConfig reads a config by path, or by name from ./{name}.yaml,
// ./{name}.yml, then the same names under the user config directory's
// go-typogrify folder. A missing file is an error, never a silent default.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	path := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if path, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &NotFoundError{Name: nameOrPath, Searched: []string{path}}
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal renders c as YAML, for --print-config.
func (c *Config) Marshal() ([]byte, error) {
	return yamlutil.Marshal(c)
}

func resolveConfigPath(name string) (string, error) {
	candidates := []string{name + ".yaml", name + ".yml"}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(dir, DirName, name+".yaml"),
			filepath.Join(dir, DirName, name+".yml"),
		)
	}

	for _, p := range candidates {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", &NotFoundError{Name: name, Searched: candidates}
}
