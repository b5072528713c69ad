package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-logr/logr"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/vilocale/pkg/localize"
	"github.com/oakwood-commons/vilocale/pkg/settings"
)

//go:embed default_config.yaml
var embeddedDefaultConfig []byte

// ErrUnsupportedFormat is returned for config files that are neither YAML
// nor TOML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// OutputFormats lists the accepted values of defaults.output and --output.
var OutputFormats = []string{"table", "yaml", "json", "toml", "markdown", "html", "raw"}

// DefaultConfigYAML returns a copy of the embedded default config.
func DefaultConfigYAML() []byte {
	return append([]byte(nil), embeddedDefaultConfig...)
}

// Default decodes the embedded default config.
func Default() (Config, error) {
	var cfg Config
	if len(embeddedDefaultConfig) == 0 {
		return cfg, fmt.Errorf("embedded default config is empty")
	}
	if err := yaml.Unmarshal(embeddedDefaultConfig, &cfg); err != nil {
		return cfg, fmt.Errorf("decode default config: %w", err)
	}
	return cfg, nil
}

// ResolvePath returns explicit when set, otherwise the first existing file of
// $XDG_CONFIG_HOME/vilocale/config.{yaml,toml} or
// ~/.config/vilocale/config.{yaml,toml}. It returns "" when none exists.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	dir := ""
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dir = filepath.Join(xdg, settings.CliBinaryName)
	} else if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".config", settings.CliBinaryName)
	}
	if dir == "" {
		return ""
	}
	for _, name := range []string{"config.yaml", "config.yml", "config.toml"} {
		candidate := filepath.Join(dir, name)
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			return candidate
		}
	}
	return ""
}

// Load returns the default config merged with the file at path (if any),
// validated.
func Load(path string, lgr logr.Logger) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return cfg, err
	}
	if path == "" {
		lgr.V(1).Info("no user config file, using defaults")
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	user, err := Decode(path, data)
	if err != nil {
		return cfg, err
	}
	lgr.V(1).Info("merged user config", "path", path)
	cfg = Merge(cfg, user)
	return cfg, cfg.Validate()
}

// Decode parses data as YAML or TOML depending on the extension of path.
func Decode(path string, data []byte) (Config, error) {
	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", "":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("decode yaml config %s: %w", path, err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("decode toml config %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return cfg, nil
}

// Merge overlays the non-empty fields of over onto base.
func Merge(base, over Config) Config {
	out := base
	if over.App.Name != "" {
		out.App.Name = over.App.Name
	}
	if over.App.Version != "" {
		out.App.Version = over.App.Version
	}
	if over.Defaults.Width != "" {
		out.Defaults.Width = over.Defaults.Width
	}
	if over.Defaults.TimeOfDay != "" {
		out.Defaults.TimeOfDay = over.Defaults.TimeOfDay
	}
	if over.Defaults.Output != "" {
		out.Defaults.Output = over.Defaults.Output
	}
	if over.Output.YAMLIndent != nil {
		out.Output.YAMLIndent = over.Output.YAMLIndent
	}
	if over.Output.LiteralBlockStrings != nil {
		out.Output.LiteralBlockStrings = over.Output.LiteralBlockStrings
	}
	if over.Output.MaxCellWidth != nil {
		out.Output.MaxCellWidth = over.Output.MaxCellWidth
	}
	if over.Output.NoColor != nil {
		out.Output.NoColor = over.Output.NoColor
	}
	out.Output.Colors = mergeColors(out.Output.Colors, over.Output.Colors)
	return out
}

func mergeColors(base, over Colors) Colors {
	if over.HeaderFG != "" {
		base.HeaderFG = over.HeaderFG
	}
	if over.HeaderBG != "" {
		base.HeaderBG = over.HeaderBG
	}
	if over.Key != "" {
		base.Key = over.Key
	}
	if over.Separator != "" {
		base.Separator = over.Separator
	}
	return base
}

// Validate checks that every named default is one the library recognizes.
func (c Config) Validate() error {
	if c.Defaults.Width != "" {
		if _, ok := localize.ParseWidth(c.Defaults.Width); !ok {
			return fmt.Errorf("defaults.width: unknown width %q (expected one of %v)", c.Defaults.Width, localize.Widths())
		}
	}
	if c.Defaults.TimeOfDay != "" {
		if _, ok := localize.ParseDayPeriodType(c.Defaults.TimeOfDay); !ok {
			return fmt.Errorf("defaults.time_of_day: unknown type %q (expected long, uppercase or lowercase)", c.Defaults.TimeOfDay)
		}
	}
	if c.Defaults.Output != "" && !IsOutputFormat(c.Defaults.Output) {
		return fmt.Errorf("defaults.output: unknown format %q (expected one of %v)", c.Defaults.Output, OutputFormats)
	}
	if c.Output.YAMLIndent != nil && *c.Output.YAMLIndent < 0 {
		return fmt.Errorf("output.yaml_indent must be non-negative, got %d", *c.Output.YAMLIndent)
	}
	if c.Output.MaxCellWidth != nil && *c.Output.MaxCellWidth < 0 {
		return fmt.Errorf("output.max_cell_width must be non-negative, got %d", *c.Output.MaxCellWidth)
	}
	colors := c.Output.Colors
	for _, kv := range [][2]string{
		{"header_fg", colors.HeaderFG},
		{"header_bg", colors.HeaderBG},
		{"key", colors.Key},
		{"separator", colors.Separator},
	} {
		if kv[1] != "" && !colorPattern.MatchString(kv[1]) {
			return fmt.Errorf("output.colors.%s: invalid color %q (expected 0-255 or #rrggbb)", kv[0], kv[1])
		}
	}
	return nil
}

var colorPattern = regexp.MustCompile(`^(?:#[0-9a-fA-F]{6}|#[0-9a-fA-F]{3}|[0-9]|[1-9][0-9]|1[0-9]{2}|2[0-4][0-9]|25[0-5])$`)

// IsOutputFormat reports whether name is one of OutputFormats.
func IsOutputFormat(name string) bool {
	for _, f := range OutputFormats {
		if f == name {
			return true
		}
	}
	return false
}
