package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"marsdome/internal/domain"
	"marsdome/internal/dome"
)

// Format selects an output encoding.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format (want text, json or yaml)")

// ParseFormat returns the Format named s, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Text, JSON, YAML:
		return f, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// Result writes res to w in format f.
func Result(w io.Writer, f Format, res domain.DomeResult) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case YAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	case Text, "":
		_, err := fmt.Fprintln(w, Line(res))
		return err
	default:
		return fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}
}

// Line is the single-line text form of res. Diameter and thickness are
// rounded like area and weight.
func Line(res domain.DomeResult) string {
	return fmt.Sprintf("material ==> %s, diameter ==> %s, thickness ==> %s, area ==> %s, weight ==> %s kg",
		res.Material,
		Number(dome.Round(res.Diameter)),
		Number(dome.Round(res.Thickness)),
		Number(res.Area),
		Number(res.Weight))
}

// Number formats v with the fewest digits that represent it exactly.
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Materials writes the density table as aligned text, marking the default.
func Materials(w io.Writer, list []domain.MaterialDensity) error {
	for _, m := range list {
		mark := ""
		if m.Default {
			mark = " (default)"
		}
		if _, err := fmt.Fprintf(w, "%-14s %5s g/cm3%s\n", m.Name, Number(m.Density), mark); err != nil {
			return err
		}
	}
	return nil
}
