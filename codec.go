package keplergl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type Format int

const (
	JSON Format = iota
	YAML
)

func (f Format) String() string {
	if f == YAML {
		return "yaml"
	}
	return "json"
}

// ParseFormat maps "json", "yaml" and "yml" to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return JSON, fmt.Errorf("unknown format %q", name)
}

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Parse decodes a JSON document.
func Parse(r io.Reader) (*Document, error) {
	input, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	doc := &Document{}
	if err := json.Unmarshal(input, doc); err != nil {
		return nil, fmt.Errorf("decoding map config: %w", err)
	}
	return doc, nil
}

// Decode reads a document in the given format.
func Decode(r io.Reader, f Format) (*Document, error) {
	if f == YAML {
		return ParseYAML(r)
	}
	return Parse(r)
}

// Encode writes d as JSON. An empty indent writes a single line.
func (d *Document) Encode(w io.Writer, indent string) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(d)
}

// EncodeFormat writes d in the given format, JSON indented by two spaces.
func (d *Document) EncodeFormat(w io.Writer, f Format) error {
	if f == YAML {
		return d.EncodeYAML(w)
	}
	return d.Encode(w, "  ")
}

// Load reads the document at path, the format follows the extension.
func Load(path string) (*Document, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	doc, err := Decode(r, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Save writes d to path, the format follows the extension. The file is
// replaced atomically.
func Save(path string, d *Document) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := d.EncodeFormat(&buf, f); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
