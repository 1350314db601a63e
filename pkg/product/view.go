package product

import (
	"Smart-Expiry-Tracker/domain"
	"Smart-Expiry-Tracker/entities"
	"Smart-Expiry-Tracker/pkg/scan"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ApplyView derives the filtered, sorted view of a user's collection with
// aggregate counts over the filtered set. Pure function: days left is
// recomputed from the injected today, stored values are never trusted, and
// the input slice is not mutated.
func ApplyView(records []*entities.Product, opts domain.ViewOptions, today time.Time) domain.ViewResult {
	items := make([]domain.ProductResponse, 0, len(records))

	search := strings.ToLower(strings.TrimSpace(opts.Search))

	for _, record := range records {
		daysLeft := scan.DaysBetween(today, record.ExpiryDate)

		switch opts.Filter {
		case domain.FilterExpiringSoon:
			if daysLeft < 0 || daysLeft > domain.NotifyThresholdDays {
				continue
			}
		case domain.FilterExpired:
			if daysLeft >= 0 {
				continue
			}
		}

		if search != "" &&
			!strings.Contains(strings.ToLower(record.ProductName), search) &&
			!strings.Contains(strings.ToLower(record.Barcode), search) {
			continue
		}

		if opts.StartDate != nil && record.ExpiryDate.Before(*opts.StartDate) {
			continue
		}
		if opts.EndDate != nil && record.ExpiryDate.After(*opts.EndDate) {
			continue
		}

		items = append(items, toProductResponse(record, daysLeft))
	}

	sort.SliceStable(items, func(i, j int) bool {
		switch opts.SortBy {
		case domain.SortByName:
			return items[i].ProductName < items[j].ProductName
		case domain.SortByBarcode:
			return items[i].Barcode < items[j].Barcode
		default:
			return items[i].ExpiryDate < items[j].ExpiryDate
		}
	})

	stats := domain.ViewStats{Total: len(items)}
	for _, item := range items {
		switch {
		case item.DaysLeft < 0:
			stats.Expired++
		case item.DaysLeft <= domain.NotifyThresholdDays:
			stats.ExpiringSoon++
		default:
			stats.Active++
		}
	}

	return domain.ViewResult{Items: items, Stats: stats}
}

// ExportRows flattens view items into (name, barcode, expiry date, days
// left) string tuples, preserving the view's display order.
func ExportRows(items []domain.ProductResponse) [][]string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.ProductName,
			item.Barcode,
			item.ExpiryDate,
			strconv.Itoa(item.DaysLeft),
		})
	}
	return rows
}

func toProductResponse(record *entities.Product, daysLeft int) domain.ProductResponse {
	return domain.ProductResponse{
		Barcode:     record.Barcode,
		ProductName: record.ProductName,
		ExpiryDate:  record.ExpiryDate.Format("2006-01-02"),
		DaysLeft:    daysLeft,
		Type:        domain.ExpiryType(record.Type),
		Notified:    record.Notified,
		AddedAt:     record.CreatedAt,
	}
}
