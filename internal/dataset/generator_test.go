package dataset

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

func testDataset(t *testing.T) *Dataset {
	t.Helper()
	ds, err := NewGeneratorAt(42, testNow).Generate(10, 10, 20)
	require.NoError(t, err)
	return ds
}

func TestGenerateDeterministic(t *testing.T) {
	first, err := NewGeneratorAt(42, testNow).Generate(10, 10, 20)
	require.NoError(t, err)

	second, err := NewGeneratorAt(42, testNow).Generate(10, 10, 20)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestGenerateDifferentSeeds(t *testing.T) {
	first, err := NewGeneratorAt(1, testNow).Generate(10, 10, 20)
	require.NoError(t, err)

	second, err := NewGeneratorAt(2, testNow).Generate(10, 10, 20)
	require.NoError(t, err)

	assert.NotEqual(t, first.Customers, second.Customers)
}

func TestGenerateCustomers(t *testing.T) {
	ds := testDataset(t)
	require.Len(t, ds.Customers, 10)

	windowStart := testNow.AddDate(0, 0, -customerWindowDays)
	seenEmails := make(map[string]bool)

	for i, c := range ds.Customers {
		assert.Equal(t, i+1, c.CustomerID, "ids must be dense and 1-based")
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Phone)

		assert.False(t, seenEmails[c.Email], "duplicate email %s", c.Email)
		seenEmails[c.Email] = true

		assert.False(t, c.CreatedAt.Before(windowStart), "created_at before window start")
		assert.False(t, c.CreatedAt.After(testNow.AddDate(0, 0, 1)), "created_at in the future")
	}
}

func TestGenerateProducts(t *testing.T) {
	ds := testDataset(t)
	require.Len(t, ds.Products, 10)

	validCategories := make(map[string]bool)
	for _, c := range Categories {
		validCategories[c] = true
	}

	for i, p := range ds.Products {
		assert.Equal(t, i+1, p.ProductID)
		assert.NotEmpty(t, p.ProductName)
		assert.True(t, validCategories[p.Category], "unknown category %s", p.Category)
		assert.GreaterOrEqual(t, p.Price, 5.0)
		assert.LessOrEqual(t, p.Price, 500.0)
		assert.Equal(t, round2(p.Price), p.Price, "price must carry 2-decimal precision")
	}
}

func TestGenerateOrdersReferentialSoundness(t *testing.T) {
	ds := testDataset(t)
	require.Len(t, ds.Orders, 20)

	customerIDs := make(map[int]bool)
	for _, c := range ds.Customers {
		customerIDs[c.CustomerID] = true
	}

	windowStart := testNow.AddDate(0, 0, -orderWindowDays)
	for i, o := range ds.Orders {
		assert.Equal(t, i+1, o.OrderID)
		assert.True(t, customerIDs[o.CustomerID], "order %d references unknown customer %d", o.OrderID, o.CustomerID)
		assert.Greater(t, o.TotalAmount, 0.0)
		assert.Equal(t, round2(o.TotalAmount), o.TotalAmount)
		assert.False(t, o.OrderDate.Before(windowStart))
	}
}

func TestGenerateOrdersRequireParents(t *testing.T) {
	g := NewGeneratorAt(42, testNow)
	_, err := g.GenerateOrders(nil, nil, 5)
	require.Error(t, err)
}

func TestGeneratePayments(t *testing.T) {
	ds := testDataset(t)
	require.Len(t, ds.Payments, len(ds.Orders))

	validMethods := make(map[string]bool)
	for _, m := range PaymentMethods {
		validMethods[m] = true
	}

	for i, p := range ds.Payments {
		order := ds.Orders[i]
		assert.Equal(t, i+1, p.PaymentID)
		assert.Equal(t, order.OrderID, p.OrderID)
		assert.Equal(t, order.TotalAmount, p.Amount, "payment amount must equal the order total exactly")
		assert.True(t, validMethods[p.Method])

		assert.False(t, p.PaymentDate.Before(order.OrderDate), "payment_date before order_date")
		assert.False(t, p.PaymentDate.After(order.OrderDate.AddDate(0, 0, maxPaymentLagDays+1)))
	}
}

func TestGenerateShipments(t *testing.T) {
	ds := testDataset(t)
	require.Len(t, ds.Shipments, len(ds.Orders))

	validStatuses := make(map[string]bool)
	for _, s := range ShipmentStatuses {
		validStatuses[s] = true
	}

	for i, s := range ds.Shipments {
		order := ds.Orders[i]
		assert.Equal(t, i+1, s.ShipmentID)
		assert.Equal(t, order.OrderID, s.OrderID)
		assert.True(t, validStatuses[s.Status])

		assert.False(t, s.ShipmentDate.Before(order.OrderDate), "shipment_date before order_date")
		assert.False(t, s.ShipmentDate.After(order.OrderDate.AddDate(0, 0, maxShipmentLagDays+1)))
	}
}

// The weight vector switches at a hard 30-day cutoff: 31-day-old
// shipments draw from the aged distribution, 29-day-old ones from the
// recent distribution.
func TestShipmentStatusAgeBoundary(t *testing.T) {
	const draws = 5000

	count := func(ageDays int) map[string]int {
		g := NewGeneratorAt(42, testNow)
		counts := make(map[string]int)
		for i := 0; i < draws; i++ {
			counts[g.shipmentStatus(ageDays)]++
		}
		return counts
	}

	aged := count(31)
	assert.Greater(t, aged["delivered"], draws/2, "aged shipments should skew toward delivered")
	assert.Greater(t, aged["delivered"], aged["pending"])

	recent := count(29)
	assert.Greater(t, recent["pending"]+recent["shipped"], draws/2, "recent shipments should skew toward pending/shipped")
	assert.Greater(t, recent["pending"], recent["delivered"])

	// Exactly 30 days is still "recent".
	atCutoff := count(30)
	assert.Greater(t, atCutoff["pending"], atCutoff["delivered"])
}

func TestWeightedIndexCoversAllOutcomes(t *testing.T) {
	g := NewGeneratorAt(7, testNow)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		idx := g.weightedIndex([]int{1, 1, 1, 1})
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, 4)
		seen[idx] = true
	}
	assert.Len(t, seen, 4)
}

func TestSampleIndexesDistinct(t *testing.T) {
	g := NewGeneratorAt(3, testNow)

	for trial := 0; trial < 100; trial++ {
		n := 1 + g.rand.Intn(5)
		picked := g.sampleIndexes(10, n)
		require.Len(t, picked, n)

		seen := make(map[int]bool)
		for _, idx := range picked {
			require.False(t, seen[idx], "index %d picked twice", idx)
			require.GreaterOrEqual(t, idx, 0)
			require.Less(t, idx, 10)
			seen[idx] = true
		}
	}
}

func TestSampleIndexesClampsToSize(t *testing.T) {
	g := NewGeneratorAt(3, testNow)
	picked := g.sampleIndexes(3, 5)
	assert.Len(t, picked, 3)
}

func TestEmailExhaustion(t *testing.T) {
	g := NewGeneratorAt(42, testNow)
	f := g.faker

	// Claim the entire candidate space for one name.
	name := "John Smith"
	for n := 0; n < 100000; n++ {
		for _, domain := range emailDomains {
			f.usedEmails[fmt.Sprintf("john.smith%d@%s", n, domain)] = true
		}
	}

	_, err := f.email(name)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUniqueExhausted))
}
