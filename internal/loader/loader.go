package loader

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fatih/color"

	"github.com/Vishalbharadwaj27/Diligent/internal/database"
)

// Loader materializes the generated CSV files into the relational
// store. Rows are treated as immutable input: they are mapped to typed
// values and upserted, never modified.
type Loader struct {
	adapter *database.Adapter
	dataDir string
}

func New(adapter *database.Adapter, dataDir string) *Loader {
	return &Loader{
		adapter: adapter,
		dataDir: dataDir,
	}
}

// Run loads all five tables in parents-before-children order. Each
// table loads in its own transaction; a failure aborts that table but
// leaves earlier tables committed.
func (l *Loader) Run(ctx context.Context) error {
	if err := l.checkDataDir(); err != nil {
		return err
	}

	if err := l.adapter.EnableForeignKeys(ctx); err != nil {
		return err
	}

	if err := EnsureSchema(ctx, l.adapter); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	for _, spec := range tableSpecs {
		count, err := l.LoadTable(ctx, spec.Name)
		if err != nil {
			return fmt.Errorf("failed to load table %s: %w", spec.Name, err)
		}
		color.Green("  ✅ %s: %d rows", spec.Name, count)
	}

	return nil
}

func (l *Loader) checkDataDir() error {
	info, err := os.Stat(l.dataDir)
	if os.IsNotExist(err) || (err == nil && !info.IsDir()) {
		return fmt.Errorf("%w: data directory %q does not exist, run `diligent generate` first", ErrMissingInput, l.dataDir)
	}
	if err != nil {
		return fmt.Errorf("failed to stat data directory %s: %w", l.dataDir, err)
	}
	return nil
}

// LoadTable reads one table's CSV and upserts every row by primary key.
// Re-running is safe: the final state matches the input, without
// duplicates.
func (l *Loader) LoadTable(ctx context.Context, table string) (int, error) {
	spec, err := specFor(table)
	if err != nil {
		return 0, err
	}

	rows, err := l.readRows(spec)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}

	query, _, err := l.adapter.Upsert(spec.Name, spec.columnNames(), spec.PrimaryKey).
		Values(rows[0]...).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build upsert statement: %w", err)
	}

	tx, err := l.adapter.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	for i, row := range rows {
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			if l.adapter.IsForeignKeyViolation(err) {
				return 0, fmt.Errorf("%w: %s row %d: %v", ErrReferentialIntegrity, spec.File, i+2, err)
			}
			return 0, fmt.Errorf("failed to insert row %d of %s: %w", i+2, spec.File, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit %s load: %w", spec.Name, err)
	}

	return len(rows), nil
}

func specFor(table string) (tableSpec, error) {
	for _, spec := range tableSpecs {
		if spec.Name == table {
			return spec, nil
		}
	}
	return tableSpec{}, fmt.Errorf("unknown table: %s", table)
}

// readRows parses the CSV into typed value rows, validating the header
// against the table schema first.
func (l *Loader) readRows(spec tableSpec) ([][]interface{}, error) {
	path := filepath.Join(l.dataDir, spec.File)

	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s does not exist, run `diligent generate` first", ErrMissingInput, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read header of %s: %v", ErrSchemaMismatch, path, err)
	}
	if err := validateHeader(spec, header); err != nil {
		return nil, err
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	rows := make([][]interface{}, 0, len(records))
	for i, record := range records {
		row, err := parseRow(spec, record)
		if err != nil {
			return nil, fmt.Errorf("%w: %s row %d: %v", ErrSchemaMismatch, spec.File, i+2, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func validateHeader(spec tableSpec, header []string) error {
	expected := spec.columnNames()
	if len(header) != len(expected) {
		return fmt.Errorf("%w: %s has %d columns, expected %d (%v)", ErrSchemaMismatch, spec.File, len(header), len(expected), expected)
	}
	for i, name := range expected {
		if header[i] != name {
			return fmt.Errorf("%w: %s column %d is %q, expected %q", ErrSchemaMismatch, spec.File, i+1, header[i], name)
		}
	}
	return nil
}

func parseRow(spec tableSpec, record []string) ([]interface{}, error) {
	row := make([]interface{}, len(spec.Columns))
	for i, col := range spec.Columns {
		switch col.Kind {
		case kindInt:
			v, err := strconv.Atoi(record[i])
			if err != nil {
				return nil, fmt.Errorf("column %s: %v", col.Name, err)
			}
			row[i] = v
		case kindFloat:
			v, err := strconv.ParseFloat(record[i], 64)
			if err != nil {
				return nil, fmt.Errorf("column %s: %v", col.Name, err)
			}
			row[i] = v
		default:
			row[i] = record[i]
		}
	}
	return row, nil
}
