// Package scheduleio reads and writes schedule documents as YAML files.
package scheduleio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"schedule-interpreter/internal/model"
	"schedule-interpreter/pkg/datemath"
)

// File is the on-disk shape of a schedule. Dates are YYYY-MM-DD.
type File struct {
	Version int        `yaml:"version,omitempty"`
	Items   []FileItem `yaml:"items"`
}

// FileItem is one schedule line.
type FileItem struct {
	ID          string `yaml:"id"`
	Label       string `yaml:"label,omitempty"`
	Start       string `yaml:"start"`
	End         string `yaml:"end"`
	Assignee    string `yaml:"assignee,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// Decode reads a YAML schedule. Unknown keys are rejected.
func Decode(r io.Reader) (model.Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return model.Document{}, nil
		}
		return model.Document{}, fmt.Errorf("yaml decode: %w", err)
	}
	return f.toDocument()
}

func (f File) toDocument() (model.Document, error) {
	doc := model.Document{Version: f.Version, Items: make([]model.Item, 0, len(f.Items))}
	for i, it := range f.Items {
		if it.ID == "" {
			return model.Document{}, fmt.Errorf("items[%d]: id is required", i)
		}
		start, err := datemath.ParseISO(it.Start)
		if err != nil {
			return model.Document{}, fmt.Errorf("items[%d] %s: start: %w", i, it.ID, err)
		}
		end, err := datemath.ParseISO(it.End)
		if err != nil {
			return model.Document{}, fmt.Errorf("items[%d] %s: end: %w", i, it.ID, err)
		}
		if end.Before(start) {
			return model.Document{}, fmt.Errorf("items[%d] %s: end %s before start %s", i, it.ID, it.End, it.Start)
		}
		doc.Items = append(doc.Items, model.Item{
			ID:          it.ID,
			Label:       it.Label,
			Start:       start,
			End:         end,
			Assignee:    it.Assignee,
			Description: it.Description,
		})
	}
	return doc, nil
}

// Encode writes doc as YAML.
func Encode(w io.Writer, doc model.Document) error {
	f := File{Version: doc.Version, Items: make([]FileItem, len(doc.Items))}
	for i, it := range doc.Items {
		f.Items[i] = FileItem{
			ID:          it.ID,
			Label:       it.Label,
			Start:       datemath.FormatISO(it.Start),
			End:         datemath.FormatISO(it.End),
			Assignee:    it.Assignee,
			Description: it.Description,
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}

// LoadFile reads a schedule from path.
func LoadFile(path string) (model.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Document{}, err
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return model.Document{}, fmt.Errorf("%s: %w", path, err)
	}
	if info, statErr := f.Stat(); statErr == nil {
		doc.ModifiedAt = info.ModTime().UTC()
	}
	return doc, nil
}

// SaveFile writes doc to path through a temp file and rename so readers
// never see a partial schedule.
func SaveFile(path string, doc model.Document) error {
	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".schedule-tmp-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("atomic rename: %w", err)
	}
	return nil
}

// Touch stamps doc with now when it has no modification time.
func Touch(doc model.Document, now time.Time) model.Document {
	if doc.ModifiedAt.IsZero() {
		doc.ModifiedAt = now.UTC()
	}
	if doc.Version == 0 {
		doc.Version = 1
	}
	return doc
}
