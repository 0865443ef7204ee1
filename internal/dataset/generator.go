package dataset

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

const (
	customerWindowDays = 365 * 3
	orderWindowDays    = 365 * 2
	secondsPerDay      = 86400

	minOrderItems = 1
	maxOrderItems = 5

	maxPaymentLagDays  = 5
	maxShipmentLagDays = 7

	// Shipments older than this many days use the aged status weights.
	agedShipmentDays = 30
)

var (
	agedStatusWeights   = []int{5, 15, 70, 10}
	recentStatusWeights = []int{40, 40, 15, 5}
)

// Generator produces internally-consistent entity collections. The
// random source is carried explicitly so a fixed seed (and fixed now)
// reproduces identical output.
type Generator struct {
	rand  *rand.Rand
	faker *faker
	now   time.Time
}

func NewGenerator(seed int64) *Generator {
	return NewGeneratorAt(seed, time.Now())
}

func NewGeneratorAt(seed int64, now time.Time) *Generator {
	r := rand.New(rand.NewSource(seed))
	return &Generator{
		rand:  r,
		faker: newFaker(r),
		now:   now.Truncate(time.Second),
	}
}

// Generate runs the five generators in dependency order.
func (g *Generator) Generate(customers, products, orders int) (*Dataset, error) {
	cs, err := g.GenerateCustomers(customers)
	if err != nil {
		return nil, err
	}

	ps := g.GenerateProducts(products)

	os, err := g.GenerateOrders(cs, ps, orders)
	if err != nil {
		return nil, err
	}

	return &Dataset{
		Customers: cs,
		Products:  ps,
		Orders:    os,
		Payments:  g.GeneratePayments(os),
		Shipments: g.GenerateShipments(os),
	}, nil
}

// GenerateCustomers returns count customers with dense 1-based ids,
// globally unique emails, and created_at within the last three years.
func (g *Generator) GenerateCustomers(count int) ([]Customer, error) {
	start := g.now.AddDate(0, 0, -customerWindowDays)
	customers := make([]Customer, 0, count)

	for i := 1; i <= count; i++ {
		name := g.faker.name()
		email, err := g.faker.email(name)
		if err != nil {
			return nil, fmt.Errorf("failed to generate customer %d: %w", i, err)
		}

		customers = append(customers, Customer{
			CustomerID: i,
			Name:       name,
			Email:      email,
			Phone:      g.faker.phone(),
			CreatedAt:  g.timestampIn(start, customerWindowDays),
		})
	}

	return customers, nil
}

// GenerateProducts returns count products with dense ids, a category
// drawn uniformly from the fixed set, and a price in [5.00, 500.00].
func (g *Generator) GenerateProducts(count int) []Product {
	products := make([]Product, 0, count)

	for i := 1; i <= count; i++ {
		products = append(products, Product{
			ProductID:   i,
			ProductName: g.faker.productName(),
			Category:    Categories[g.rand.Intn(len(Categories))],
			Price:       round2(5 + g.rand.Float64()*495),
		})
	}

	return products
}

// GenerateOrders returns count orders. Each picks one customer with
// replacement and 1-5 distinct products without replacement; the total
// is the rounded sum of the sampled product prices.
func (g *Generator) GenerateOrders(customers []Customer, products []Product, count int) ([]Order, error) {
	if count > 0 && (len(customers) == 0 || len(products) == 0) {
		return nil, fmt.Errorf("cannot generate orders without customers and products")
	}

	start := g.now.AddDate(0, 0, -orderWindowDays)
	orders := make([]Order, 0, count)

	for i := 1; i <= count; i++ {
		customer := customers[g.rand.Intn(len(customers))]

		total := 0.0
		for _, idx := range g.sampleIndexes(len(products), minOrderItems+g.rand.Intn(maxOrderItems)) {
			total += products[idx].Price
		}

		orders = append(orders, Order{
			OrderID:     i,
			CustomerID:  customer.CustomerID,
			OrderDate:   g.timestampIn(start, orderWindowDays),
			TotalAmount: round2(total),
		})
	}

	return orders, nil
}

// GeneratePayments returns exactly one payment per order, in traversal
// order. The amount is copied from the order, never re-sampled.
func (g *Generator) GeneratePayments(orders []Order) []Payment {
	payments := make([]Payment, 0, len(orders))

	for i, order := range orders {
		payments = append(payments, Payment{
			PaymentID:   i + 1,
			OrderID:     order.OrderID,
			Amount:      order.TotalAmount,
			Method:      PaymentMethods[g.rand.Intn(len(PaymentMethods))],
			PaymentDate: g.offsetAfter(order.OrderDate, maxPaymentLagDays),
		})
	}

	return payments
}

// GenerateShipments returns exactly one shipment per order. The status
// distribution switches at the 30-day age cutoff: aged shipments skew
// toward delivered/returned, recent ones toward pending/shipped.
func (g *Generator) GenerateShipments(orders []Order) []Shipment {
	shipments := make([]Shipment, 0, len(orders))

	for i, order := range orders {
		shipmentDate := g.offsetAfter(order.OrderDate, maxShipmentLagDays)
		ageDays := int(g.now.Sub(shipmentDate).Hours() / 24)

		shipments = append(shipments, Shipment{
			ShipmentID:   i + 1,
			OrderID:      order.OrderID,
			ShipmentDate: shipmentDate,
			Status:       g.shipmentStatus(ageDays),
		})
	}

	return shipments
}

func (g *Generator) shipmentStatus(ageDays int) string {
	weights := recentStatusWeights
	if ageDays > agedShipmentDays {
		weights = agedStatusWeights
	}
	return ShipmentStatuses[g.weightedIndex(weights)]
}

// weightedIndex draws an index with probability proportional to its weight.
func (g *Generator) weightedIndex(weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}

	n := g.rand.Intn(total)
	for i, w := range weights {
		if n < w {
			return i
		}
		n -= w
	}
	return len(weights) - 1
}

// timestampIn samples a timestamp from a window starting at start:
// a uniform whole-day offset up to windowDays plus a uniform
// second-of-day offset.
func (g *Generator) timestampIn(start time.Time, windowDays int) time.Time {
	days := g.rand.Intn(windowDays + 1)
	seconds := g.rand.Intn(secondsPerDay)
	return start.AddDate(0, 0, days).Add(time.Duration(seconds) * time.Second)
}

// offsetAfter samples a timestamp on or after base: a whole-day offset
// in [0, maxDays] plus a random time-of-day.
func (g *Generator) offsetAfter(base time.Time, maxDays int) time.Time {
	days := g.rand.Intn(maxDays + 1)
	seconds := g.rand.Intn(secondsPerDay)
	return base.AddDate(0, 0, days).Add(time.Duration(seconds) * time.Second)
}

// sampleIndexes picks n distinct indexes in [0, size) without
// replacement via a partial Fisher-Yates shuffle.
func (g *Generator) sampleIndexes(size, n int) []int {
	if n > size {
		n = size
	}

	indexes := make([]int, size)
	for i := range indexes {
		indexes[i] = i
	}

	for i := 0; i < n; i++ {
		j := i + g.rand.Intn(size-i)
		indexes[i], indexes[j] = indexes[j], indexes[i]
	}

	return indexes[:n]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
