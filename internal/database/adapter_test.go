package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDriver(t *testing.T) {
	driver, dsn, err := resolveDriver("sqlite", "sqlite://ecom.db")
	require.NoError(t, err)
	assert.Equal(t, "sqlite3", driver)
	assert.Contains(t, dsn, "ecom.db?")
	assert.Contains(t, dsn, "_foreign_keys=on")

	driver, dsn, err = resolveDriver("postgres", "postgres://u:p@localhost/ecom")
	require.NoError(t, err)
	assert.Equal(t, "pgx", driver)
	assert.Equal(t, "postgres://u:p@localhost/ecom", dsn)

	driver, dsn, err = resolveDriver("mysql", "mysql://u:p@tcp(localhost)/ecom")
	require.NoError(t, err)
	assert.Equal(t, "mysql", driver)
	assert.Equal(t, "u:p@tcp(localhost)/ecom", dsn)

	_, _, err = resolveDriver("mongodb", "mongodb://localhost")
	require.Error(t, err)
}

func TestUpsertDialects(t *testing.T) {
	columns := []string{"order_id", "customer_id", "total_amount"}

	sqlite := &Adapter{Provider: "sqlite"}
	query, args, err := sqlite.Upsert("orders", columns, "order_id").Values(1, 2, 9.99).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "INSERT OR REPLACE INTO orders (order_id,customer_id,total_amount) VALUES (?,?,?)", query)
	assert.Len(t, args, 3)

	postgres := &Adapter{Provider: "postgres"}
	query, _, err = postgres.Upsert("orders", columns, "order_id").Values(1, 2, 9.99).ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "VALUES ($1,$2,$3)")
	assert.Contains(t, query, "ON CONFLICT (order_id) DO UPDATE SET customer_id = EXCLUDED.customer_id, total_amount = EXCLUDED.total_amount")

	mysql := &Adapter{Provider: "mysql"}
	query, _, err = mysql.Upsert("orders", columns, "order_id").Values(1, 2, 9.99).ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "ON DUPLICATE KEY UPDATE customer_id = VALUES(customer_id), total_amount = VALUES(total_amount)")
}

func TestIsForeignKeyViolation(t *testing.T) {
	a := &Adapter{Provider: "sqlite"}

	assert.False(t, a.IsForeignKeyViolation(nil))
	assert.True(t, a.IsForeignKeyViolation(errSQL("FOREIGN KEY constraint failed")))
	assert.True(t, a.IsForeignKeyViolation(errSQL(`insert or update on table "payments" violates foreign key constraint`)))
	assert.False(t, a.IsForeignKeyViolation(errSQL("UNIQUE constraint failed: customers.email")))
}

type errSQL string

func (e errSQL) Error() string { return string(e) }
