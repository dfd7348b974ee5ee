package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/item"
	"github.com/osse101/itemforge/internal/logger"
	"github.com/osse101/itemforge/internal/metrics"
	"github.com/osse101/itemforge/internal/validation"
)

// Entry is one record read from a source together with its file name.
type Entry struct {
	Filename string
	Record   domain.Record
}

// Loader reads records from a Source and builds items with a Factory.
// Files are read one at a time.
type Loader struct {
	source     Source
	factory    *item.Factory
	validator  validation.SchemaValidator
	schemaPath string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithSchema validates every record against the JSON schema at path before
// it is handed to the factory.
func WithSchema(v validation.SchemaValidator, path string) LoaderOption {
	return func(l *Loader) {
		l.validator = v
		l.schemaPath = path
	}
}

func NewLoader(source Source, factory *item.Factory, opts ...LoaderOption) *Loader {
	l := &Loader{source: source, factory: factory}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loader) Factory() *item.Factory { return l.factory }

// LoadRecord reads one record. A record without a category takes the
// category of the directory it was read from.
func (l *Loader) LoadRecord(ctx context.Context, category, filename string) (domain.Record, error) {
	rec, err := l.source.ReadRecord(ctx, category, filename)
	if err != nil {
		return nil, err
	}
	if !rec.Has(domain.KeyCategory) {
		rec[domain.KeyCategory] = category
	}
	if l.validator != nil {
		if err := l.validator.ValidateValue(map[string]any(rec), l.schemaPath); err != nil {
			return nil, fmt.Errorf(ErrFmtSchemaFailed, category, filename, err)
		}
	}
	return rec, nil
}

// LoadCategoryRecords reads every record of a category. Records that fail to
// load are logged and skipped; only a failure to list the category is returned.
func (l *Loader) LoadCategoryRecords(ctx context.Context, category string) ([]Entry, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	files, err := l.source.ListFiles(ctx, category)
	if err != nil {
		metrics.CategoryLoads.WithLabelValues(category, metrics.OutcomeFailed).Inc()
		return nil, err
	}

	entries := make([]Entry, 0, len(files))
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			metrics.CategoryLoads.WithLabelValues(category, metrics.OutcomeFailed).Inc()
			return nil, err
		}
		rec, err := l.LoadRecord(ctx, category, f)
		if err != nil {
			log.Error(LogMsgLoadRecordFailed, "category", category, "file", f, "error", err)
			continue
		}
		entries = append(entries, Entry{Filename: f, Record: rec})
	}

	metrics.CategoryLoads.WithLabelValues(category, metrics.OutcomeSuccess).Inc()
	metrics.CategoryLoadDuration.WithLabelValues(category).Observe(time.Since(start).Seconds())
	log.Debug(LogMsgCategoryLoaded, "category", category, "files", len(files), "records", len(entries))
	return entries, nil
}

// LoadItemFromFile builds the item stored in one file. It returns nil when
// the file cannot be read, fails validation or is rejected by the factory.
func (l *Loader) LoadItemFromFile(ctx context.Context, category, filename string) item.Item {
	rec, err := l.LoadRecord(ctx, category, filename)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgLoadRecordFailed, "category", category, "file", filename, "error", err)
		return nil
	}
	return l.factory.CreateItem(ctx, rec)
}

// LoadCategoryItems builds every loadable item of a category. It returns an
// empty slice when the category cannot be listed.
func (l *Loader) LoadCategoryItems(ctx context.Context, category string) []item.Item {
	entries, err := l.LoadCategoryRecords(ctx, category)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgListFailed, "category", category, "error", err)
		return []item.Item{}
	}
	return l.build(ctx, entries)
}

// LoadAllItems loads every known category in order.
func (l *Loader) LoadAllItems(ctx context.Context) map[string][]item.Item {
	all := make(map[string][]item.Item, len(domain.Categories))
	total := 0
	for _, c := range item.AllItemCategories() {
		items := l.LoadCategoryItems(ctx, c.String())
		all[c.String()] = items
		total += len(items)
	}
	logger.FromContext(ctx).Info(LogMsgAllLoaded, "categories", len(all), "items", total)
	return all
}

func (l *Loader) build(ctx context.Context, entries []Entry) []item.Item {
	items := make([]item.Item, 0, len(entries))
	for _, e := range entries {
		if it := l.factory.CreateItem(ctx, e.Record); it != nil {
			items = append(items, it)
		}
	}
	return items
}
