package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Adapter wraps a database/sql connection with the provider-specific
// dialect bits the loader needs: placeholder style, upsert syntax,
// foreign-key enforcement, and violation detection.
type Adapter struct {
	Provider string
	DB       *sql.DB
}

func Connect(ctx context.Context, provider, url string) (*Adapter, error) {
	driverName, dsn, err := resolveDriver(provider, url)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Adapter{Provider: provider, DB: db}, nil
}

func resolveDriver(provider, url string) (driverName, dsn string, err error) {
	switch provider {
	case "postgresql", "postgres":
		return "pgx", url, nil
	case "mysql":
		return "mysql", strings.TrimPrefix(url, "mysql://"), nil
	case "sqlite", "sqlite3":
		dsn = strings.TrimPrefix(url, "sqlite://")
		if !strings.Contains(dsn, "?") {
			// _foreign_keys covers every pooled connection; the session
			// PRAGMA in EnableForeignKeys only reaches one.
			dsn += "?cache=shared&_journal_mode=WAL&_foreign_keys=on"
		}
		return "sqlite3", dsn, nil
	default:
		return "", "", fmt.Errorf("unsupported database provider: %s", provider)
	}
}

func (a *Adapter) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

// EnableForeignKeys turns on FK enforcement for the session. SQLite and
// MySQL can silently skip enforcement unless asked; Postgres always
// enforces.
func (a *Adapter) EnableForeignKeys(ctx context.Context) error {
	var query string
	switch a.Provider {
	case "sqlite", "sqlite3":
		query = "PRAGMA foreign_keys = ON"
	case "mysql":
		query = "SET FOREIGN_KEY_CHECKS = 1"
	default:
		return nil
	}

	if _, err := a.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to enable foreign key enforcement: %w", err)
	}
	return nil
}

// Builder returns a statement builder with the provider's placeholder
// format.
func (a *Adapter) Builder() squirrel.StatementBuilderType {
	if a.Provider == "postgresql" || a.Provider == "postgres" {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

// Upsert builds an insert that replaces any existing row sharing the
// same primary key, in the provider's dialect.
func (a *Adapter) Upsert(table string, columns []string, pk string) squirrel.InsertBuilder {
	builder := a.Builder().Insert(table).Columns(columns...)

	switch a.Provider {
	case "postgresql", "postgres":
		var sets []string
		for _, col := range columns {
			if col != pk {
				sets = append(sets, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
			}
		}
		return builder.Suffix(fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s", pk, strings.Join(sets, ", ")))
	case "mysql":
		var sets []string
		for _, col := range columns {
			if col != pk {
				sets = append(sets, fmt.Sprintf("%s = VALUES(%s)", col, col))
			}
		}
		return builder.Suffix("ON DUPLICATE KEY UPDATE " + strings.Join(sets, ", "))
	default:
		return builder.Options("OR REPLACE")
	}
}

// FloatType maps the 2-decimal price/amount columns to the provider's
// floating-point column type.
func (a *Adapter) FloatType() string {
	switch a.Provider {
	case "postgresql", "postgres":
		return "DOUBLE PRECISION"
	case "mysql":
		return "DOUBLE"
	default:
		return "REAL"
	}
}

// IsForeignKeyViolation reports whether err is the engine's FK
// constraint failure.
func (a *Adapter) IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "foreign key constraint") ||
		strings.Contains(msg, "violates foreign key") ||
		strings.Contains(msg, "foreign key constraint failed")
}

// CountRows returns the row count of a table.
func (a *Adapter) CountRows(ctx context.Context, table string) (int, error) {
	query, args, err := a.Builder().Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := a.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	return count, nil
}
