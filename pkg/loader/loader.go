// Package loader parses the documents fed to `vilocale eval`: a single JSON,
// YAML or TOML document, detected from its content.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/go-logr/logr"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/vilocale/pkg/logger"
)

// Format names the syntax a document was parsed as.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var (
	// [section], [[array]], [a.b], ["quoted"]; excludes JSON arrays like [1, 2]
	tomlSectionPattern = regexp.MustCompile(`^\s*\[{1,2}(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+')(?:\.(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+'))*\]{1,2}\s*$`)
	// key = value (YAML uses key: value)
	tomlKeyValuePattern = regexp.MustCompile(`^\s*(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+')(?:\.(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+'))*\s*=\s*.+$`)
)

// Detect guesses the format of input.
func Detect(input string) Format {
	trimmed := strings.TrimSpace(input)
	if isLikelyTOML(trimmed) {
		return FormatTOML
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return FormatJSON
	}
	return FormatYAML
}

// LoadRoot parses input into a single root value.
func LoadRoot(input string) (any, error) {
	return LoadRootWithLogger(input, *logger.GetNoopLogger())
}

// LoadRootBytes parses input bytes into a single root value.
func LoadRootBytes(data []byte) (any, error) {
	return LoadRoot(string(data))
}

// LoadRootWithLogger is LoadRoot, logging the detected format and any
// fallback attempt.
func LoadRootWithLogger(input string, lgr logr.Logger) (any, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("empty input")
	}

	format := Detect(input)
	lgr.V(1).Info("detected input format", "format", string(format))
	switch format {
	case FormatTOML:
		return loadTOML(input)
	case FormatJSON:
		root, err := loadJSON(input)
		if err == nil {
			return root, nil
		}
		// YAML flow syntax ({a: 1}) starts like JSON
		lgr.V(1).Info("JSON parse failed, retrying as YAML", "error", err.Error())
		if root, yerr := loadYAML(input); yerr == nil {
			return root, nil
		}
		return nil, err
	case FormatYAML:
	}
	return loadYAML(input)
}

// LoadFile reads and parses the file at path.
func LoadFile(path string, lgr logr.Logger) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lgr.V(1).Info("loaded input file", "path", path, "bytes", len(data))
	return LoadRootWithLogger(string(data), lgr)
}

func loadJSON(input string) (any, error) {
	var data any
	if err := json.Unmarshal([]byte(input), &data); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return data, nil
}

func loadYAML(input string) (any, error) {
	var data any
	if err := yaml.Unmarshal([]byte(input), &data); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return data, nil
}

func loadTOML(input string) (any, error) {
	var data map[string]any
	if err := toml.Unmarshal([]byte(input), &data); err != nil {
		return nil, fmt.Errorf("invalid TOML: %w", err)
	}
	return data, nil
}

// isLikelyTOML reports TOML when there is a section header or most lines are
// key = value pairs.
func isLikelyTOML(input string) bool {
	sectionCount := 0
	keyValueCount := 0
	nonEmptyCount := 0
	for _, line := range strings.Split(input, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		nonEmptyCount++
		if tomlSectionPattern.MatchString(line) {
			sectionCount++
		}
		if tomlKeyValuePattern.MatchString(line) {
			keyValueCount++
		}
	}
	if sectionCount > 0 {
		return true
	}
	return nonEmptyCount > 0 && keyValueCount > nonEmptyCount/2
}
