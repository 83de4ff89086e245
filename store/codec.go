package store

import (
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ayoisaiah/dayclock/internal/apperr"
	"github.com/ayoisaiah/dayclock/internal/models"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var errUnknownFormat = &apperr.Error{
	Message: "unknown format %q (supported: json, yaml)",
}

// FormatFromPath infers an export format from a file extension, defaulting
// to JSON.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Encode writes sessions in the given format. Records keep the field names
// and ISO-8601 timestamps of the stored JSON payload in both formats.
func Encode(w io.Writer, sessions []models.Session, format string) error {
	if sessions == nil {
		sessions = []models.Session{}
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(sessions)

	case FormatYAML:
		records, err := toRecords(sessions)
		if err != nil {
			return err
		}

		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		err = enc.Encode(records)
		if err != nil {
			return err
		}

		return enc.Close()
	}

	return errUnknownFormat.Fmt(format)
}

// Decode reads sessions written by Encode or copied from the original
// browser storage.
func Decode(r io.Reader, format string) ([]models.Session, error) {
	var sessions []models.Session

	switch format {
	case FormatJSON:
		err := json.NewDecoder(r).Decode(&sessions)
		if err != nil {
			return nil, err
		}

	case FormatYAML:
		var records []map[string]any

		err := yaml.NewDecoder(r).Decode(&records)
		if err != nil && err != io.EOF {
			return nil, err
		}

		b, err := json.Marshal(records)
		if err != nil {
			return nil, err
		}

		err = json.Unmarshal(b, &sessions)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errUnknownFormat.Fmt(format)
	}

	if sessions == nil {
		sessions = []models.Session{}
	}

	return sessions, nil
}

// toRecords converts sessions to generic maps through their JSON encoding so
// that yaml output matches the JSON field names.
func toRecords(sessions []models.Session) ([]map[string]any, error) {
	b, err := json.Marshal(sessions)
	if err != nil {
		return nil, err
	}

	var records []map[string]any

	err = json.Unmarshal(b, &records)
	if err != nil {
		return nil, err
	}

	return records, nil
}
