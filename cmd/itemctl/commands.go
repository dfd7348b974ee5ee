package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/osse101/itemforge/internal/catalog"
	"github.com/osse101/itemforge/internal/config"
	"github.com/osse101/itemforge/internal/database"
	"github.com/osse101/itemforge/internal/database/postgres"
	"github.com/osse101/itemforge/internal/item"
	"github.com/osse101/itemforge/internal/validation"
)

var (
	errUsage        = errors.New("invalid arguments")
	errInvalidItems = errors.New("some item records are invalid")
)

// assetFlags are shared by every command that reads the asset directory.
type assetFlags struct {
	dir string
}

func (f *assetFlags) register(fs *flag.FlagSet, cfg *config.Config) {
	fs.StringVar(&f.dir, "dir", cfg.AssetsDir, "Asset directory with one sub-directory per category")
}

func (f *assetFlags) loader(opts ...catalog.LoaderOption) *catalog.Loader {
	return catalog.NewLoader(catalog.NewDirSource(f.dir), item.NewFactory(), opts...)
}

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}

func categoriesOrAll(args []string) []string {
	if len(args) > 0 {
		return args
	}
	var all []string
	for _, c := range item.AllItemCategories() {
		all = append(all, c.String())
	}
	return all
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ListCommand prints a table of the items in each category.
type ListCommand struct {
	cfg *config.Config
}

func (c *ListCommand) Name() string { return "list" }

func (c *ListCommand) Description() string {
	return "List the items of each category with their stats"
}

func (c *ListCommand) Run(ctx context.Context, args []string, out io.Writer) error {
	var assets assetFlags
	fs := newFlagSet(c.Name(), out)
	assets.register(fs, c.cfg)
	if err := fs.Parse(args); err != nil {
		return err
	}

	loader := assets.loader()
	for _, category := range categoriesOrAll(fs.Args()) {
		entries, err := loader.LoadCategoryRecords(ctx, category)
		if err != nil {
			PrintWarning(out, "%s: %v", category, err)
			continue
		}

		PrintHeader(out, category)
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "FILE\tID\tNAME\tKIND\tLEVEL\tRARITY\tSELL")
		for _, e := range entries {
			it := loader.Factory().CreateItem(ctx, e.Record)
			if it == nil {
				continue
			}
			b, s := it.Core(), item.ItemStats(it)
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%g\n",
				e.Filename, b.ID, b.Name, it.Kind(), s.Level, s.Rarity, s.SellPrice)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// TooltipCommand prints the tooltip of one item.
type TooltipCommand struct {
	cfg *config.Config
}

func (c *TooltipCommand) Name() string { return "tooltip" }

func (c *TooltipCommand) Description() string {
	return "Print the tooltip of <category> <file>"
}

func (c *TooltipCommand) Run(ctx context.Context, args []string, out io.Writer) error {
	var assets assetFlags
	fs := newFlagSet(c.Name(), out)
	assets.register(fs, c.cfg)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("%w: tooltip needs <category> <file>", errUsage)
	}

	it := assets.loader().LoadItemFromFile(ctx, fs.Arg(0), fs.Arg(1))
	if it == nil {
		return fmt.Errorf("could not load %s/%s", fs.Arg(0), fs.Arg(1))
	}
	fmt.Fprintln(out, it.TooltipText())
	return nil
}

// ExportCommand prints the canonical JSON of one item or of a whole category.
type ExportCommand struct {
	cfg *config.Config
}

func (c *ExportCommand) Name() string { return "export" }

func (c *ExportCommand) Description() string {
	return "Print the canonical JSON of <category> [file]"
}

func (c *ExportCommand) Run(ctx context.Context, args []string, out io.Writer) error {
	var assets assetFlags
	fs := newFlagSet(c.Name(), out)
	assets.register(fs, c.cfg)
	if err := fs.Parse(args); err != nil {
		return err
	}

	loader := assets.loader()
	switch fs.NArg() {
	case 1:
		items := loader.LoadCategoryItems(ctx, fs.Arg(0))
		exported := make([]any, len(items))
		for i, it := range items {
			exported[i] = it.ToJSON()
		}
		return writeJSON(out, exported)
	case 2:
		it := loader.LoadItemFromFile(ctx, fs.Arg(0), fs.Arg(1))
		if it == nil {
			return fmt.Errorf("could not load %s/%s", fs.Arg(0), fs.Arg(1))
		}
		return writeJSON(out, it.ToJSON())
	default:
		return fmt.Errorf("%w: export needs <category> [file]", errUsage)
	}
}

// ScanCommand prints the scan listing of the asset directory.
type ScanCommand struct {
	cfg *config.Config
}

func (c *ScanCommand) Name() string { return "scan" }

func (c *ScanCommand) Description() string {
	return "Print every record file under the asset directory"
}

func (c *ScanCommand) Run(ctx context.Context, args []string, out io.Writer) error {
	var assets assetFlags
	fs := newFlagSet(c.Name(), out)
	assets.register(fs, c.cfg)
	if err := fs.Parse(args); err != nil {
		return err
	}

	res, err := catalog.NewDirSource(assets.dir).Scan(ctx)
	if err != nil {
		return err
	}
	return writeJSON(out, res)
}

// ValidateCommand checks every record against the item schema.
type ValidateCommand struct {
	cfg *config.Config
}

func (c *ValidateCommand) Name() string { return "validate" }

func (c *ValidateCommand) Description() string {
	return "Validate item records against the JSON schema"
}

func (c *ValidateCommand) Run(ctx context.Context, args []string, out io.Writer) error {
	var assets assetFlags
	fs := newFlagSet(c.Name(), out)
	assets.register(fs, c.cfg)
	schema := fs.String("schema", c.cfg.ItemSchemaPath, "Path to the item JSON schema")
	if err := fs.Parse(args); err != nil {
		return err
	}

	schemaPath, err := validation.FindSchema(*schema)
	if err != nil {
		return err
	}
	src := catalog.NewDirSource(assets.dir)
	loader := catalog.NewLoader(src, item.NewFactory(), catalog.WithSchema(validation.NewSchemaValidator(), schemaPath))

	checked, failed := 0, 0
	for _, category := range categoriesOrAll(fs.Args()) {
		files, err := src.ListFiles(ctx, category)
		if err != nil {
			PrintWarning(out, "%s: %v", category, err)
			continue
		}
		for _, f := range files {
			checked++
			if _, err := loader.LoadRecord(ctx, category, f); err != nil {
				failed++
				PrintError(out, "%v", err)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errInvalidItems, failed, checked)
	}
	PrintSuccess(out, "%d records valid", checked)
	return nil
}

// SyncCommand copies the asset directory into the item store.
type SyncCommand struct {
	cfg *config.Config
}

func (c *SyncCommand) Name() string { return "sync" }

func (c *SyncCommand) Description() string {
	return "Sync item records into PostgreSQL (needs DB_HOST)"
}

func (c *SyncCommand) Run(ctx context.Context, args []string, out io.Writer) error {
	var assets assetFlags
	fs := newFlagSet(c.Name(), out)
	assets.register(fs, c.cfg)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !c.cfg.PersistenceEnabled() {
		return fmt.Errorf("%w: DB_HOST is not set", errUsage)
	}

	pool, err := database.NewPool(ctx, c.cfg.GetDBConnString(), c.cfg.DBMaxConns, c.cfg.DBMaxConnIdle, c.cfg.DBMaxConnLife)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		return err
	}

	res, err := catalog.NewSyncer(assets.loader(), postgres.NewItemRepository(pool)).Sync(ctx)
	if err != nil {
		return err
	}
	PrintSuccess(out, "inserted %d, updated %d, skipped %d, failed %d",
		res.Inserted, res.Updated, res.Skipped, res.Failed)
	return nil
}
