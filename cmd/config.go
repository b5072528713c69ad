package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"runtime"
	rdebug "runtime/debug"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/vilocale/internal/config"
	"github.com/oakwood-commons/vilocale/internal/formatter"
	"github.com/oakwood-commons/vilocale/pkg/settings"
)

// configCmd groups configuration subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage vilocale configuration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the merged configuration",
	Long: `Show the embedded defaults merged with the user config file. Table output
prints YAML headed by the path of the user file, if one was found; json and
toml print those encodings.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		run := optionsFrom(cmd).run
		out, err := encodeConfig(activeConfig, run.Output)
		if err != nil {
			return err
		}
		if run.ConfigPath != "" && run.Output != "json" && run.Output != "toml" {
			out = "# merged from " + run.ConfigPath + "\n" + out
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	},
}

var configDefaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Print the embedded default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultConfigYAML())
		return err
	},
}

func encodeConfig(cfg config.Config, format string) (string, error) {
	switch format {
	case "json":
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cfg); err != nil {
			return "", fmt.Errorf("encode config: %w", err)
		}
		return buf.String(), nil
	case "toml":
		b, err := toml.Marshal(cfg)
		if err != nil {
			return "", fmt.Errorf("encode config: %w", err)
		}
		return string(b), nil
	default:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(cfg.Output.YAMLIndentOr(2))
		if err := enc.Encode(cfg); err != nil {
			return "", fmt.Errorf("encode config: %w", err)
		}
		if err := enc.Close(); err != nil {
			return "", err
		}
		return buf.String(), nil
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print vilocale version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !flagChanged(cmd, "output") {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), cliVersionString())
			return err
		}
		data := buildVersionData(activeConfig)
		r := formatter.NewResult("version", "name", "version", "commit", "build_time", "go_version", "platform")
		r.Add(data.Name, data.Version, data.Commit, data.BuildTime, data.GoVersion, data.Platform)
		return printResult(cmd, r, false)
	},
}

type versionData struct {
	Name      string
	Version   string
	Commit    string
	BuildTime string
	GoVersion string
	Platform  string
}

// buildVersionData prefers ldflags metadata, then module build info.
func buildVersionData(cfg config.Config) versionData {
	info := settings.VersionInformation
	data := versionData{
		Name:      settings.CliBinaryName,
		Version:   info.BuildVersion,
		Commit:    info.Commit,
		BuildTime: info.BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if cfg.App.Name != "" {
		data.Name = cfg.App.Name
	}
	if cfg.App.Version != "" {
		data.Version = cfg.App.Version
	}
	if bi, ok := rdebug.ReadBuildInfo(); ok {
		if data.Commit == "unknown" {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" && len(s.Value) >= 7 {
					data.Commit = s.Value[:7]
					break
				}
			}
		}
		if cfg.App.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			data.Version = bi.Main.Version
		}
	}
	return data
}

// cliVersionString is the one-line version used by `vilocale version` and
// --version.
func cliVersionString() string {
	d := buildVersionData(activeConfig)
	return fmt.Sprintf("%s %s (commit %s, %s)", d.Name, d.Version, d.Commit, d.GoVersion)
}

func init() { //nolint:gochecknoinits
	configCmd.AddCommand(configGetCmd, configDefaultCmd)
}
