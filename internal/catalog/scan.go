package catalog

import (
	"context"
	"fmt"
	"os"
	"path"
	"slices"

	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/logger"
)

// ScanResult lists every record file under the asset root.
type ScanResult struct {
	Status    string                  `json:"status"`
	Items     map[string]ScanCategory `json:"items"`
	Materials []MaterialRef           `json:"materials"`
}

type ScanCategory struct {
	Items []ScanEntry `json:"items"`
}

type ScanEntry struct {
	File string `json:"file"`
	Path string `json:"path"`
}

// MaterialRef names a material record that declares a material key.
type MaterialRef struct {
	Name     string `json:"name"`
	Material string `json:"material"`
}

// Scan walks every category directory under the root. Material records that
// cannot be read are logged and left out of the materials list.
func (s *DirSource) Scan(ctx context.Context) (*ScanResult, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtListFailed, s.root, err)
	}

	res := &ScanResult{
		Status:    ScanStatusSuccess,
		Items:     make(map[string]ScanCategory),
		Materials: []MaterialRef{},
	}

	for _, dir := range entries {
		if !dir.IsDir() || dir.Name() == ScanSkipDir {
			continue
		}
		category := dir.Name()

		files, err := s.ListFiles(ctx, category)
		if err != nil {
			return nil, err
		}

		listed := make([]ScanEntry, 0, len(files))
		for _, f := range files {
			listed = append(listed, ScanEntry{File: f, Path: path.Join(domain.AssetPathPrefix, category, f)})
		}
		res.Items[category] = ScanCategory{Items: listed}

		if category == string(domain.CategoryMaterials) {
			res.Materials = append(res.Materials, s.scanMaterials(ctx, category, files)...)
		}
	}
	return res, nil
}

func (s *DirSource) scanMaterials(ctx context.Context, category string, files []string) []MaterialRef {
	var refs []MaterialRef
	for _, f := range files {
		rec, err := s.ReadRecord(ctx, category, f)
		if err != nil {
			logger.FromContext(ctx).Warn(LogMsgScanMaterialFailed, "file", f, "error", err)
			continue
		}
		name, material := domain.Text(rec[MaterialNameKey]), domain.Text(rec[MaterialKey])
		if name != "" && material != "" {
			refs = append(refs, MaterialRef{Name: name, Material: material})
		}
	}
	return slices.Clip(refs)
}
