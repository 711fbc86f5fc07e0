package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/recetasproyecto/ms-catalogo/internal/model"
)

const insertBatchSize = 100

// Options configures an import run.
type Options struct {
	// Path of the CSV source file.
	Path string
	// DescriptionColumns overrides the source columns for the description
	// field; nil keeps DefaultDescriptionColumns.
	DescriptionColumns []string
}

// Importer replaces the recipe table contents from a CSV file. Delete-all
// and bulk-insert run inside a single transaction, so readers observe the
// dataset either fully before or fully after the import.
type Importer struct {
	db   *gorm.DB
	log  *zap.Logger
	opts Options
}

func NewImporter(db *gorm.DB, log *zap.Logger, opts Options) *Importer {
	return &Importer{db: db, log: log, opts: opts}
}

// Import runs the full pipeline and returns the number of records inserted.
// A missing source file is a no-op returning 0; everything else that fails
// rolls the transaction back and surfaces a single wrapped error.
func (im *Importer) Import(ctx context.Context) (int, error) {
	f, err := os.Open(im.opts.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			im.log.Warn("import source file missing, nothing loaded",
				zap.String("path", im.opts.Path))
			return 0, nil
		}
		return 0, fmt.Errorf("opening import file %s: %w", im.opts.Path, err)
	}
	defer f.Close()

	rows, err := ReadRows(f)
	if err != nil {
		return 0, fmt.Errorf("parsing import file %s: %w", im.opts.Path, err)
	}

	records := make([]model.Recipe, 0, len(rows))
	for _, row := range rows {
		rec := CoerceRow(row, im.opts.DescriptionColumns)
		if rec.RecipeID == "" {
			rec.RecipeID = model.NewRecipeID()
		}
		records = append(records, rec)
	}

	err = im.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.Recipe{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.CreateInBatches(records, insertBatchSize).Error
	})
	if err != nil {
		return 0, fmt.Errorf("import transaction failed: %w", err)
	}

	im.log.Info("import finished",
		zap.String("path", im.opts.Path),
		zap.Int("records", len(records)))
	return len(records), nil
}

// ReadRows parses a CSV stream into raw rows keyed by canonical column
// names. The first record is the header; unrecognized columns simply end up
// under keys nobody reads.
func ReadRows(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = NormalizeColumn(name)
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(rows)+2, err)
		}
		row := make(map[string]string, len(columns))
		for i, value := range record {
			if i < len(columns) {
				row[columns[i]] = value
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
