package product_test

import (
	"Smart-Expiry-Tracker/domain"
	"Smart-Expiry-Tracker/entities"
	"Smart-Expiry-Tracker/pkg/product"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

func record(barcode, name string, expiry time.Time) *entities.Product {
	return &entities.Product{
		Barcode:     barcode,
		ProductName: name,
		ExpiryDate:  expiry,
		Type:        string(domain.ExpiryTypeManual),
	}
}

func fixtures() []*entities.Product {
	return []*entities.Product{
		record("111", "Milk", today.AddDate(0, 0, -3)),       // expired
		record("222", "Yogurt", today.AddDate(0, 0, 2)),      // expiring soon
		record("333", "Cheddar", today.AddDate(0, 0, 7)),     // expiring soon boundary
		record("444", "Pasta", today.AddDate(0, 0, 90)),      // active
		record("555", "Canned Tuna", today.AddDate(0, 0, 8)), // active boundary
		record("666", "Old Bread", today.AddDate(0, 0, -40)), // expired
	}
}

func TestApplyView(t *testing.T) {
	t.Run("Should keep everything with the all filter", func(t *testing.T) {
		result := product.ApplyView(fixtures(), domain.ViewOptions{Filter: domain.FilterAll}, today)

		assert.Len(t, result.Items, 6)
		assert.Equal(t, domain.ViewStats{Total: 6, Expired: 2, ExpiringSoon: 2, Active: 2}, result.Stats)
	})

	t.Run("Should bound expiring soon to zero through seven days", func(t *testing.T) {
		result := product.ApplyView(fixtures(), domain.ViewOptions{Filter: domain.FilterExpiringSoon}, today)

		require.Len(t, result.Items, 2)
		for _, item := range result.Items {
			assert.GreaterOrEqual(t, item.DaysLeft, 0)
			assert.LessOrEqual(t, item.DaysLeft, 7)
		}
	})

	t.Run("Should keep only negative days left when filtering expired", func(t *testing.T) {
		result := product.ApplyView(fixtures(), domain.ViewOptions{Filter: domain.FilterExpired}, today)

		require.Len(t, result.Items, 2)
		for _, item := range result.Items {
			assert.Negative(t, item.DaysLeft)
		}
	})

	t.Run("Should partition the collection exactly across the three filters", func(t *testing.T) {
		all := product.ApplyView(fixtures(), domain.ViewOptions{Filter: domain.FilterAll}, today)
		soon := product.ApplyView(fixtures(), domain.ViewOptions{Filter: domain.FilterExpiringSoon}, today)
		expired := product.ApplyView(fixtures(), domain.ViewOptions{Filter: domain.FilterExpired}, today)

		assert.Equal(t, all.Stats.Total, expired.Stats.Total+soon.Stats.Total+all.Stats.Active)

		seen := map[string]bool{}
		for _, item := range append(soon.Items, expired.Items...) {
			assert.False(t, seen[item.Barcode], "barcode %s appears in two filters", item.Barcode)
			seen[item.Barcode] = true
		}
	})

	t.Run("Should search case-insensitively on name or barcode", func(t *testing.T) {
		byName := product.ApplyView(fixtures(), domain.ViewOptions{Search: "cHeDd"}, today)
		require.Len(t, byName.Items, 1)
		assert.Equal(t, "Cheddar", byName.Items[0].ProductName)

		byBarcode := product.ApplyView(fixtures(), domain.ViewOptions{Search: "44"}, today)
		require.Len(t, byBarcode.Items, 1)
		assert.Equal(t, "444", byBarcode.Items[0].Barcode)

		none := product.ApplyView(fixtures(), domain.ViewOptions{Search: "caviar"}, today)
		assert.Empty(t, none.Items)
	})

	t.Run("Should apply inclusive open-ended date bounds", func(t *testing.T) {
		start := today.AddDate(0, 0, 2)
		end := today.AddDate(0, 0, 8)

		both := product.ApplyView(fixtures(), domain.ViewOptions{StartDate: &start, EndDate: &end}, today)
		require.Len(t, both.Items, 3)
		assert.Equal(t, []string{"222", "333", "555"}, barcodes(both.Items))

		onlyEnd := product.ApplyView(fixtures(), domain.ViewOptions{EndDate: &end}, today)
		assert.Len(t, onlyEnd.Items, 5)
	})

	t.Run("Should compose filter, search and range with AND", func(t *testing.T) {
		end := today.AddDate(0, 0, 5)
		result := product.ApplyView(fixtures(), domain.ViewOptions{
			Filter:  domain.FilterExpiringSoon,
			Search:  "yog",
			EndDate: &end,
		}, today)

		require.Len(t, result.Items, 1)
		assert.Equal(t, "222", result.Items[0].Barcode)
	})

	t.Run("Should sort ascending by each key", func(t *testing.T) {
		byExpiry := product.ApplyView(fixtures(), domain.ViewOptions{SortBy: domain.SortByExpiry}, today)
		assert.True(t, sort.SliceIsSorted(byExpiry.Items, func(i, j int) bool {
			return byExpiry.Items[i].ExpiryDate < byExpiry.Items[j].ExpiryDate
		}))

		byName := product.ApplyView(fixtures(), domain.ViewOptions{SortBy: domain.SortByName}, today)
		assert.Equal(t, "Canned Tuna", byName.Items[0].ProductName)

		byBarcode := product.ApplyView(fixtures(), domain.ViewOptions{SortBy: domain.SortByBarcode}, today)
		assert.Equal(t, []string{"111", "222", "333", "444", "555", "666"}, barcodes(byBarcode.Items))
	})

	t.Run("Should compute the same output twice for the same input", func(t *testing.T) {
		opts := domain.ViewOptions{Filter: domain.FilterExpiringSoon, SortBy: domain.SortByName}
		first := product.ApplyView(fixtures(), opts, today)
		second := product.ApplyView(fixtures(), opts, today)

		assert.Equal(t, first, second)
	})

	t.Run("Should recompute days left instead of trusting storage", func(t *testing.T) {
		records := fixtures()
		later := today.AddDate(0, 0, 5)

		result := product.ApplyView(records, domain.ViewOptions{}, later)

		for _, item := range result.Items {
			if item.Barcode == "222" {
				assert.Equal(t, -3, item.DaysLeft)
			}
		}
	})

	t.Run("Should handle an empty collection", func(t *testing.T) {
		result := product.ApplyView(nil, domain.ViewOptions{Filter: domain.FilterExpiringSoon}, today)

		assert.Empty(t, result.Items)
		assert.Equal(t, domain.ViewStats{}, result.Stats)
	})
}

func TestExportRows(t *testing.T) {
	result := product.ApplyView(fixtures(), domain.ViewOptions{SortBy: domain.SortByExpiry}, today)
	rows := product.ExportRows(result.Items)

	require.Len(t, rows, len(result.Items))
	for i, row := range rows {
		require.Len(t, row, 4)
		assert.Equal(t, result.Items[i].ProductName, row[0])
		assert.Equal(t, result.Items[i].Barcode, row[1])
		assert.Equal(t, result.Items[i].ExpiryDate, row[2])
	}

	assert.Equal(t, "-40", rows[0][3])
}

func barcodes(items []domain.ProductResponse) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Barcode)
	}
	return out
}
