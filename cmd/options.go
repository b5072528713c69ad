package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/vilocale/internal/config"
	"github.com/oakwood-commons/vilocale/pkg/localize"
)

// optionError reports a flag or argument value outside its accepted set.
type optionError struct {
	Name    string
	Value   string
	Allowed []string
	Reason  string
}

func (e *optionError) Error() string {
	if len(e.Allowed) > 0 {
		return fmt.Sprintf("invalid %s %q (expected one of: %s)", e.Name, e.Value, strings.Join(e.Allowed, ", "))
	}
	if e.Reason != "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Name, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q", e.Name, e.Value)
}

var dayPeriodTypes = []string{"long", "uppercase", "lowercase"}

func resolveWidth(cmd *cobra.Command, cfg config.Config) (localize.Width, error) {
	name := cfg.Defaults.Width
	if flagChanged(cmd, "width") {
		name = widthName
	}
	if name == "" {
		return localize.WidthLong, nil
	}
	w, ok := localize.ParseWidth(name)
	if !ok {
		return "", &optionError{Name: "width", Value: name, Allowed: localize.Widths()}
	}
	return w, nil
}

func resolveType(cmd *cobra.Command, cfg config.Config) (localize.DayPeriodType, error) {
	name := cfg.Defaults.TimeOfDay
	if flagChanged(cmd, "type") {
		name = typeName
	}
	if name == "" {
		return localize.DayPeriodLong, nil
	}
	t, ok := localize.ParseDayPeriodType(name)
	if !ok {
		return localize.DayPeriodLong, &optionError{Name: "type", Value: name, Allowed: dayPeriodTypes}
	}
	return t, nil
}

func resolveUnit(name string) (localize.Unit, error) {
	if name == "" {
		return localize.UnitUnspecified, nil
	}
	u, ok := localize.ParseUnit(name)
	if !ok {
		return localize.UnitUnspecified, &optionError{Name: "unit", Value: name, Allowed: localize.Units()}
	}
	return u, nil
}

func parseIndexes(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil {
			return nil, &optionError{Name: "index", Value: a, Reason: "not an integer"}
		}
		out = append(out, n)
	}
	return out, nil
}
