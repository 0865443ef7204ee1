package dataset

import "time"

// TimeFormat is the timestamp layout used in every CSV column:
// second precision, space-separated date and time, no timezone.
const TimeFormat = "2006-01-02 15:04:05"

type Customer struct {
	CustomerID int
	Name       string
	Email      string
	Phone      string
	CreatedAt  time.Time
}

type Product struct {
	ProductID   int
	ProductName string
	Category    string
	Price       float64
}

type Order struct {
	OrderID     int
	CustomerID  int
	OrderDate   time.Time
	TotalAmount float64
}

type Payment struct {
	PaymentID   int
	OrderID     int
	Amount      float64
	Method      string
	PaymentDate time.Time
}

type Shipment struct {
	ShipmentID   int
	OrderID      int
	ShipmentDate time.Time
	Status       string
}

// Dataset holds one generation run, in dependency order.
type Dataset struct {
	Customers []Customer
	Products  []Product
	Orders    []Order
	Payments  []Payment
	Shipments []Shipment
}

var Categories = []string{"Books", "Electronics", "Home", "Clothing", "Toys", "Sporting Goods", "Beauty"}

var PaymentMethods = []string{"credit_card", "paypal", "bank_transfer", "gift_card"}

var ShipmentStatuses = []string{"pending", "shipped", "delivered", "returned"}
