// Package settings provides build metadata, runtime configuration, and
// context helpers used by the vilocale CLI and library packages.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "vilocale"

// VersionInformation is populated at build time via ldflags and holds the
// commit hash, semantic version, and build timestamp of the running binary.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build, including the commit hash,
// build version, and build timestamp.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds configuration settings for a single execution of the CLI:
// logging level, where the config came from, and how results are printed.
type Run struct {
	MinLogLevel int8
	ConfigPath  string
	Output      string
	NoColor     bool
	IsQuiet     bool
}

// NewCliParams returns a Run with the CLI defaults: info logging, table
// output, colors enabled.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
		Output:      "table",
		NoColor:     false,
		IsQuiet:     false,
	}
}
