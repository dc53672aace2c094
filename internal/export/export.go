// Package export serializes everything a user owns as JSON, YAML or XML.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Dan9191/fitbyte/internal/models"
	"gopkg.in/yaml.v3"
)

// Version of the export document layout.
const Version = "1.0"

// Data is the full export of one user.
type Data struct {
	Version     string                  `json:"version" yaml:"version"`
	ExportedAt  time.Time               `json:"exportedAt" yaml:"exported_at"`
	Tool        string                  `json:"tool" yaml:"tool"`
	User        models.User             `json:"user" yaml:"user"`
	Workouts    []models.Workout        `json:"workouts" yaml:"workouts"`
	WorkoutLogs []models.WorkoutLog     `json:"workoutLogs" yaml:"workout_logs"`
	Goals       []models.Goal           `json:"goals" yaml:"goals"`
	Nutrition   []models.NutritionEntry `json:"nutrition" yaml:"nutrition"`
}

// Format is an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatXML  Format = "xml"
)

// ParseFormat accepts json, yaml/yml or xml; empty means json.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "xml":
		return FormatXML, nil
	}
	return "", fmt.Errorf("unsupported export format %q (use json, yaml or xml)", s)
}

// ContentType is the HTTP media type of the format.
func (f Format) ContentType() string {
	switch f {
	case FormatYAML:
		return "application/yaml"
	case FormatXML:
		return "application/xml"
	}
	return "application/json"
}

// Extension is the file suffix for the format, without the dot.
func (f Format) Extension() string {
	return string(f)
}

// Write encodes d to w in format f.
func Write(w io.Writer, f Format, d *Data) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatXML:
		return writeXML(w, d)
	}
	return fmt.Errorf("unsupported export format %q", f)
}
