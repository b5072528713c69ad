// Package config loads vilocale settings: an embedded default file merged
// with an optional user file in YAML or TOML.
package config

// Config is the merged configuration. Tags serve both YAML and TOML files.
type Config struct {
	App      App      `yaml:"app" toml:"app" json:"app"`
	Defaults Defaults `yaml:"defaults" toml:"defaults" json:"defaults"`
	Output   Output   `yaml:"output" toml:"output" json:"output"`
}

// App is the metadata shown by `vilocale version`.
type App struct {
	Name    string `yaml:"name" toml:"name" json:"name"`
	Version string `yaml:"version" toml:"version" json:"version"`
}

// Defaults holds the option values used when a flag is not given.
type Defaults struct {
	Width     string `yaml:"width" toml:"width" json:"width"`
	TimeOfDay string `yaml:"time_of_day" toml:"time_of_day" json:"time_of_day"`
	Output    string `yaml:"output" toml:"output" json:"output"`
}

// Output controls rendering. Pointers distinguish "unset" from false/zero
// when merging.
type Output struct {
	YAMLIndent          *int   `yaml:"yaml_indent,omitempty" toml:"yaml_indent,omitempty" json:"yaml_indent,omitempty"`
	LiteralBlockStrings *bool  `yaml:"literal_block_strings,omitempty" toml:"literal_block_strings,omitempty" json:"literal_block_strings,omitempty"`
	MaxCellWidth        *int   `yaml:"max_cell_width,omitempty" toml:"max_cell_width,omitempty" json:"max_cell_width,omitempty"`
	NoColor             *bool  `yaml:"no_color,omitempty" toml:"no_color,omitempty" json:"no_color,omitempty"`
	Colors              Colors `yaml:"colors" toml:"colors" json:"colors"`
}

// Colors are the table colors, each an ANSI code ("0"-"255") or a hex value
// ("#rgb" or "#rrggbb"). Empty keeps the built-in color.
type Colors struct {
	HeaderFG  string `yaml:"header_fg" toml:"header_fg" json:"header_fg"`
	HeaderBG  string `yaml:"header_bg" toml:"header_bg" json:"header_bg"`
	Key       string `yaml:"key" toml:"key" json:"key"`
	Separator string `yaml:"separator" toml:"separator" json:"separator"`
}

// YAMLIndentOr returns the configured YAML indent or def.
func (o Output) YAMLIndentOr(def int) int {
	if o.YAMLIndent == nil || *o.YAMLIndent <= 0 {
		return def
	}
	return *o.YAMLIndent
}

// LiteralBlockStringsOr returns the configured literal-block setting or def.
func (o Output) LiteralBlockStringsOr(def bool) bool {
	if o.LiteralBlockStrings == nil {
		return def
	}
	return *o.LiteralBlockStrings
}

// MaxCellWidthOr returns the configured table cell limit or def.
func (o Output) MaxCellWidthOr(def int) int {
	if o.MaxCellWidth == nil {
		return def
	}
	return *o.MaxCellWidth
}

// NoColorOr returns the configured no-color setting or def.
func (o Output) NoColorOr(def bool) bool {
	if o.NoColor == nil {
		return def
	}
	return *o.NoColor
}
