// Package catalog reads item records from a source and turns them into items.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/osse101/itemforge/internal/domain"
)

// ErrInvalidName is returned for category or file names that are not a
// single path element.
var ErrInvalidName = errors.New("invalid record name")

// Source lists and reads raw item records by category.
type Source interface {
	// ListFiles returns the record file names of a category in a stable order.
	ListFiles(ctx context.Context, category string) ([]string, error)
	ReadRecord(ctx context.Context, category, filename string) (domain.Record, error)
}

// DirSource reads records from <root>/<category>/<file>. JSON and YAML files
// are records; the per-category columns file is not.
type DirSource struct {
	root string
}

var _ Source = (*DirSource)(nil)

func NewDirSource(root string) *DirSource {
	return &DirSource{root: root}
}

func (s *DirSource) Root() string { return s.root }

func (s *DirSource) ListFiles(ctx context.Context, category string) ([]string, error) {
	if err := checkName(category); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(filepath.Join(s.root, category))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidCategory, category)
		}
		return nil, fmt.Errorf(ErrFmtListFailed, category, err)
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !IsRecordFile(e.Name()) {
			continue
		}
		files = append(files, e.Name())
	}
	slices.Sort(files)
	return files, nil
}

func (s *DirSource) ReadRecord(ctx context.Context, category, filename string) (domain.Record, error) {
	if err := checkName(category); err != nil {
		return nil, err
	}
	if err := checkName(filename); err != nil {
		return nil, err
	}
	if !IsRecordFile(filename) {
		return nil, fmt.Errorf(ErrFmtUnsupportedFile, ErrInvalidName, filename)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(s.root, category, filename))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s/%s", domain.ErrRecordNotFound, category, filename)
		}
		return nil, fmt.Errorf(ErrFmtReadFailed, category, filename, err)
	}

	rec, err := DecodeRecord(filename, data)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtDecodeFailed, domain.ErrMalformedRecord, category, filename, err)
	}
	return rec, nil
}

// IsRecordFile reports whether name is a JSON or YAML record file other than
// the columns layout file.
func IsRecordFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext != ExtJSON && ext != ExtYAML && ext != ExtYML {
		return false
	}
	return strings.TrimSuffix(name, filepath.Ext(name)) != domain.ColumnsFileStem
}

// DecodeRecord parses a JSON or YAML record, chosen by the file extension.
// YAML records are normalized to the shapes encoding/json produces.
func DecodeRecord(filename string, data []byte) (domain.Record, error) {
	var raw map[string]any
	switch strings.ToLower(filepath.Ext(filename)) {
	case ExtJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		if raw == nil {
			return nil, errors.New("record is not an object")
		}
		return domain.Record(raw), nil
	case ExtYAML, ExtYML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		if raw == nil {
			return nil, errors.New("record is not an object")
		}
		return domain.ToRecord(raw)
	default:
		return nil, fmt.Errorf(ErrFmtUnsupportedFile, ErrInvalidName, filename)
	}
}

func checkName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf(ErrFmtInvalidName, ErrInvalidName, name)
	}
	return nil
}
