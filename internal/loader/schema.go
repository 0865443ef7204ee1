package loader

import (
	"context"
	"fmt"
	"strings"

	"github.com/Vishalbharadwaj27/Diligent/internal/database"
)

type columnKind int

const (
	kindInt columnKind = iota
	kindFloat
	kindText
)

type column struct {
	Name string
	Kind columnKind
}

type foreignKey struct {
	Column    string
	RefTable  string
	RefColumn string
}

type tableSpec struct {
	Name        string
	File        string
	PrimaryKey  string
	Columns     []column
	ForeignKeys []foreignKey
}

func (t tableSpec) columnNames() []string {
	names := make([]string, 0, len(t.Columns))
	for _, col := range t.Columns {
		names = append(names, col.Name)
	}
	return names
}

// tableSpecs lists the five tables in parents-before-children order:
// customers and products first, then orders, then payments and
// shipments. Loading in this order keeps FK constraints satisfiable.
var tableSpecs = []tableSpec{
	{
		Name:       "customers",
		File:       "customers.csv",
		PrimaryKey: "customer_id",
		Columns: []column{
			{"customer_id", kindInt},
			{"name", kindText},
			{"email", kindText},
			{"phone", kindText},
			{"created_at", kindText},
		},
	},
	{
		Name:       "products",
		File:       "products.csv",
		PrimaryKey: "product_id",
		Columns: []column{
			{"product_id", kindInt},
			{"product_name", kindText},
			{"category", kindText},
			{"price", kindFloat},
		},
	},
	{
		Name:       "orders",
		File:       "orders.csv",
		PrimaryKey: "order_id",
		Columns: []column{
			{"order_id", kindInt},
			{"customer_id", kindInt},
			{"order_date", kindText},
			{"total_amount", kindFloat},
		},
		ForeignKeys: []foreignKey{
			{"customer_id", "customers", "customer_id"},
		},
	},
	{
		Name:       "payments",
		File:       "payments.csv",
		PrimaryKey: "payment_id",
		Columns: []column{
			{"payment_id", kindInt},
			{"order_id", kindInt},
			{"amount", kindFloat},
			{"method", kindText},
			{"payment_date", kindText},
		},
		ForeignKeys: []foreignKey{
			{"order_id", "orders", "order_id"},
		},
	},
	{
		Name:       "shipments",
		File:       "shipments.csv",
		PrimaryKey: "shipment_id",
		Columns: []column{
			{"shipment_id", kindInt},
			{"order_id", kindInt},
			{"shipment_date", kindText},
			{"status", kindText},
		},
		ForeignKeys: []foreignKey{
			{"order_id", "orders", "order_id"},
		},
	},
}

// TableNames returns the table names in load order.
func TableNames() []string {
	names := make([]string, 0, len(tableSpecs))
	for _, spec := range tableSpecs {
		names = append(names, spec.Name)
	}
	return names
}

func (t tableSpec) createSQL(adapter *database.Adapter) string {
	var defs []string
	for _, col := range t.Columns {
		var colType string
		switch col.Kind {
		case kindInt:
			colType = "INTEGER"
		case kindFloat:
			colType = adapter.FloatType()
		default:
			colType = "TEXT"
		}

		def := fmt.Sprintf("%s %s", col.Name, colType)
		if col.Name == t.PrimaryKey {
			def += " PRIMARY KEY"
		}
		defs = append(defs, def)
	}

	for _, fk := range t.ForeignKeys {
		defs = append(defs, fmt.Sprintf("FOREIGN KEY (%s) REFERENCES %s(%s)", fk.Column, fk.RefTable, fk.RefColumn))
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s\n)", t.Name, strings.Join(defs, ",\n\t"))
}

// EnsureSchema creates the five tables if absent, with primary keys and
// foreign key constraints declared.
func EnsureSchema(ctx context.Context, adapter *database.Adapter) error {
	for _, spec := range tableSpecs {
		if _, err := adapter.DB.ExecContext(ctx, spec.createSQL(adapter)); err != nil {
			return fmt.Errorf("failed to create table %s: %w", spec.Name, err)
		}
	}
	return nil
}
