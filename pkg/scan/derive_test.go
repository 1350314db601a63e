package scan_test

import (
	"Smart-Expiry-Tracker/domain"
	"Smart-Expiry-Tracker/pkg/scan"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDeriveFromBarcode(t *testing.T) {
	today := date(2025, time.January, 1)

	t.Run("Should derive expiry from GS1 (17) segment", func(t *testing.T) {
		result, err := scan.DeriveFromBarcode("(17)250815", today)

		require.NoError(t, err)
		assert.Equal(t, domain.ExpiryTypeGS1, result.Type)
		assert.Equal(t, date(2025, time.August, 15), result.ExpiryDate)
		assert.Equal(t, 226, result.DaysLeft)
	})

	t.Run("Should derive from segment embedded in a longer payload", func(t *testing.T) {
		result, err := scan.DeriveFromBarcode("(01)09506000134352(17)250301(10)AB123", today)

		require.NoError(t, err)
		assert.Equal(t, date(2025, time.March, 1), result.ExpiryDate)
		assert.Equal(t, 59, result.DaysLeft)
	})

	t.Run("Should return negative days left for a past date", func(t *testing.T) {
		result, err := scan.DeriveFromBarcode("(17)241225", today)

		require.NoError(t, err)
		assert.Equal(t, -7, result.DaysLeft)
	})

	t.Run("Should always resolve two-digit years to 20xx", func(t *testing.T) {
		// A payload from 1999 would still come out as 2099. Documented
		// limitation of the GS1 two-digit year, kept as-is.
		result, err := scan.DeriveFromBarcode("(17)990101", today)

		require.NoError(t, err)
		assert.Equal(t, 2099, result.ExpiryDate.Year())
	})

	t.Run("Should request image scan when (17) segment is absent", func(t *testing.T) {
		for _, payload := range []string{"", "5012345678900", "(10)LOT42", "(17)12345"} {
			_, err := scan.DeriveFromBarcode(payload, today)
			assert.ErrorIs(t, err, domain.ErrNeedsImageScan, "payload %q", payload)
		}
	})

	t.Run("Should reject impossible calendar dates", func(t *testing.T) {
		_, err := scan.DeriveFromBarcode("(17)250230", today)
		assert.ErrorIs(t, err, domain.ErrInvalidDate)

		_, err = scan.DeriveFromBarcode("(17)251301", today)
		assert.ErrorIs(t, err, domain.ErrInvalidDate)

		_, err = scan.DeriveFromBarcode("(17)250100", today)
		assert.ErrorIs(t, err, domain.ErrInvalidDate)
	})
}

func TestDeriveFromRecognizedText(t *testing.T) {
	today := date(2025, time.January, 1)

	t.Run("Should combine manufacture date and shelf life", func(t *testing.T) {
		result, err := scan.DeriveFromRecognizedText("MFG: 01/01/2025 Best before 6 months", today)

		require.NoError(t, err)
		assert.Equal(t, domain.ExpiryTypeCalculated, result.Type)
		assert.Equal(t, date(2025, time.July, 1), result.ExpiryDate)
		assert.Equal(t, 181, result.DaysLeft)
	})

	t.Run("Should tolerate case and whitespace on the anchors", func(t *testing.T) {
		result, err := scan.DeriveFromRecognizedText("mfg 15/03/2024\nbest  before 12 months", today)

		require.NoError(t, err)
		assert.Equal(t, date(2025, time.March, 15), result.ExpiryDate)
	})

	t.Run("Should clamp month arithmetic to the end of the month", func(t *testing.T) {
		result, err := scan.DeriveFromRecognizedText("MFG: 31/01/2025 Best before 1 months", today)

		require.NoError(t, err)
		assert.Equal(t, date(2025, time.February, 28), result.ExpiryDate)
	})

	t.Run("Should clamp into a leap-year February", func(t *testing.T) {
		result, err := scan.DeriveFromRecognizedText("MFG: 31/01/2024 Best before 1 months", today)

		require.NoError(t, err)
		assert.Equal(t, date(2024, time.February, 29), result.ExpiryDate)
	})

	t.Run("Should request manual entry when a pattern is missing", func(t *testing.T) {
		cases := []string{
			"",
			"MFG: 01/01/2025",
			"Best before 6 months",
			"EXP 2025-08-01",
			"MFG: 1/1/2025 Best before 6 months", // wrong numeric shape
		}
		for _, text := range cases {
			_, err := scan.DeriveFromRecognizedText(text, today)
			assert.ErrorIs(t, err, domain.ErrNeedsManualEntry, "text %q", text)
		}
	})

	t.Run("Should reject an impossible manufacture date", func(t *testing.T) {
		_, err := scan.DeriveFromRecognizedText("MFG: 30/02/2025 Best before 6 months", today)
		assert.ErrorIs(t, err, domain.ErrInvalidDate)
	})
}

func TestShouldNotify(t *testing.T) {
	for daysLeft := -30; daysLeft <= 30; daysLeft++ {
		got := scan.ShouldNotify(domain.ExpiryResult{DaysLeft: daysLeft})
		assert.Equal(t, daysLeft <= 7, got, "daysLeft=%d", daysLeft)
	}
}

func TestDaysBetween(t *testing.T) {
	t.Run("Should ignore sub-day components", func(t *testing.T) {
		today := time.Date(2025, time.January, 1, 23, 59, 0, 0, time.UTC)
		expiry := time.Date(2025, time.January, 2, 0, 1, 0, 0, time.UTC)

		assert.Equal(t, 1, scan.DaysBetween(today, expiry))
	})

	t.Run("Should be zero for the same date", func(t *testing.T) {
		assert.Equal(t, 0, scan.DaysBetween(date(2025, time.June, 10), date(2025, time.June, 10)))
	})
}

func TestAddCalendarMonths(t *testing.T) {
	assert.Equal(t, date(2025, time.April, 30), scan.AddCalendarMonths(date(2025, time.January, 30), 3))
	assert.Equal(t, date(2026, time.January, 31), scan.AddCalendarMonths(date(2025, time.January, 31), 12))
	assert.Equal(t, date(2025, time.November, 30), scan.AddCalendarMonths(date(2025, time.August, 30), 3))
}
