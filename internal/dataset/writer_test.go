package dataset

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()

	ds, err := NewGeneratorAt(42, testNow).Generate(5, 5, 8)
	require.NoError(t, err)
	require.NoError(t, WriteCSV(ds, dir))

	cases := []struct {
		file    string
		headers []string
		rows    int
	}{
		{"customers.csv", CustomerColumns, 5},
		{"products.csv", ProductColumns, 5},
		{"orders.csv", OrderColumns, 8},
		{"payments.csv", PaymentColumns, 8},
		{"shipments.csv", ShipmentColumns, 8},
	}

	for _, tc := range cases {
		records := readCSV(t, filepath.Join(dir, tc.file))
		require.Len(t, records, tc.rows+1, "%s row count", tc.file)
		assert.Equal(t, tc.headers, records[0], "%s header", tc.file)
	}
}

func TestWriteCSVTimestampFormat(t *testing.T) {
	dir := t.TempDir()

	ds, err := NewGeneratorAt(42, testNow).Generate(3, 3, 3)
	require.NoError(t, err)
	require.NoError(t, WriteCSV(ds, dir))

	records := readCSV(t, filepath.Join(dir, "customers.csv"))
	for _, record := range records[1:] {
		_, err := time.Parse(TimeFormat, record[4])
		assert.NoError(t, err, "created_at %q not in %q layout", record[4], TimeFormat)
	}
}

func TestWriteCSVAmountPrecision(t *testing.T) {
	dir := t.TempDir()

	ds := &Dataset{
		Products: []Product{{ProductID: 1, ProductName: "Compact Lamp", Category: "Home", Price: 19.5}},
	}
	require.NoError(t, WriteCSV(ds, dir))

	records := readCSV(t, filepath.Join(dir, "products.csv"))
	require.Len(t, records, 2)
	assert.Equal(t, "19.50", records[1][3])
}

func TestWriteCSVOverwritesPreviousRun(t *testing.T) {
	dir := t.TempDir()

	big, err := NewGeneratorAt(1, testNow).Generate(5, 5, 10)
	require.NoError(t, err)
	require.NoError(t, WriteCSV(big, dir))

	small, err := NewGeneratorAt(1, testNow).Generate(2, 2, 2)
	require.NoError(t, err)
	require.NoError(t, WriteCSV(small, dir))

	records := readCSV(t, filepath.Join(dir, "orders.csv"))
	assert.Len(t, records, 3)
}
