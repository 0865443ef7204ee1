package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// CSV file names and column orders, matching the relational schema.
var (
	CustomerColumns = []string{"customer_id", "name", "email", "phone", "created_at"}
	ProductColumns  = []string{"product_id", "product_name", "category", "price"}
	OrderColumns    = []string{"order_id", "customer_id", "order_date", "total_amount"}
	PaymentColumns  = []string{"payment_id", "order_id", "amount", "method", "payment_date"}
	ShipmentColumns = []string{"shipment_id", "order_id", "shipment_date", "status"}
)

// WriteCSV serializes the dataset into dir, one file per entity,
// overwriting any previous run.
func WriteCSV(ds *Dataset, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	files := []struct {
		name    string
		headers []string
		rows    [][]string
	}{
		{"customers.csv", CustomerColumns, customerRows(ds.Customers)},
		{"products.csv", ProductColumns, productRows(ds.Products)},
		{"orders.csv", OrderColumns, orderRows(ds.Orders)},
		{"payments.csv", PaymentColumns, paymentRows(ds.Payments)},
		{"shipments.csv", ShipmentColumns, shipmentRows(ds.Shipments)},
	}

	for _, f := range files {
		if err := writeFile(filepath.Join(dir, f.name), f.headers, f.rows); err != nil {
			return err
		}
	}

	return nil
}

func writeFile(path string, headers []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row to %s: %w", path, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}

	return nil
}

func customerRows(customers []Customer) [][]string {
	rows := make([][]string, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, []string{
			strconv.Itoa(c.CustomerID),
			c.Name,
			c.Email,
			c.Phone,
			c.CreatedAt.Format(TimeFormat),
		})
	}
	return rows
}

func productRows(products []Product) [][]string {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			strconv.Itoa(p.ProductID),
			p.ProductName,
			p.Category,
			formatAmount(p.Price),
		})
	}
	return rows
}

func orderRows(orders []Order) [][]string {
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			strconv.Itoa(o.OrderID),
			strconv.Itoa(o.CustomerID),
			o.OrderDate.Format(TimeFormat),
			formatAmount(o.TotalAmount),
		})
	}
	return rows
}

func paymentRows(payments []Payment) [][]string {
	rows := make([][]string, 0, len(payments))
	for _, p := range payments {
		rows = append(rows, []string{
			strconv.Itoa(p.PaymentID),
			strconv.Itoa(p.OrderID),
			formatAmount(p.Amount),
			p.Method,
			p.PaymentDate.Format(TimeFormat),
		})
	}
	return rows
}

func shipmentRows(shipments []Shipment) [][]string {
	rows := make([][]string, 0, len(shipments))
	for _, s := range shipments {
		rows = append(rows, []string{
			strconv.Itoa(s.ShipmentID),
			strconv.Itoa(s.OrderID),
			s.ShipmentDate.Format(TimeFormat),
			s.Status,
		})
	}
	return rows
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
