package batch

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the output encoding.
type Format string

const (
	FormatJSON Format = "json" // one JSON object per line
	FormatYAML Format = "yaml"
	FormatText Format = "text" // ua, platform, browser, version separated by tabs
)

// Formats lists the supported formats.
var Formats = []Format{FormatJSON, FormatYAML, FormatText}

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Formats, f) {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
	return f, nil
}

// record is the serialised form. Absent fields are null.
type record struct {
	UA       string  `json:"ua" yaml:"ua"`
	Platform *string `json:"platform" yaml:"platform"`
	Browser  *string `json:"browser" yaml:"browser"`
	Version  *string `json:"version" yaml:"version"`
}

func toRecord(r Record) record {
	return record{
		UA:       r.UA,
		Platform: optional(r.Result.Platform),
		Browser:  optional(r.Result.Browser),
		Version:  optional(r.Result.Version),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Encode writes records to w in the given format.
func Encode(w io.Writer, records []Record, format Format) error {
	var err error
	switch format {
	case FormatJSON:
		err = encodeJSON(w, records)
	case FormatYAML:
		err = encodeYAML(w, records)
	case FormatText:
		err = encodeText(w, records)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return errors.Join(ErrEncode, err)
	}
	return nil
}

func encodeJSON(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, r := range records {
		if err := enc.Encode(toRecord(r)); err != nil {
			return err
		}
	}
	return nil
}

func encodeYAML(w io.Writer, records []Record) error {
	out := make([]record, len(records))
	for i, r := range records {
		out[i] = toRecord(r)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}

func encodeText(w io.Writer, records []Record) error {
	for _, r := range records {
		_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			r.UA, orDash(r.Result.Platform), orDash(r.Result.Browser), orDash(r.Result.Version))
		if err != nil {
			return err
		}
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
