package scan

import (
	"Smart-Expiry-Tracker/domain"
	"regexp"
	"strconv"
	"time"
)

// GS1 Application Identifier (17) carries a use-by date as YYMMDD.
var gs1ExpiryPattern = regexp.MustCompile(`\(17\)(\d{6})`)

// Label text anchors are case- and whitespace-tolerant, the numeric field
// shapes are exact.
var (
	mfgDatePattern   = regexp.MustCompile(`(?i)MFG[:\s]*(\d{2})/(\d{2})/(\d{4})`)
	shelfLifePattern = regexp.MustCompile(`(?i)best\s+before\s+(\d+)\s*months`)
)

// DeriveFromBarcode extracts a use-by date from a raw barcode payload.
// Payloads without a (17)YYMMDD segment return domain.ErrNeedsImageScan so
// the caller falls back to label image capture. Two-digit years always
// resolve to 20YY; this is the documented behavior of GS1 payloads in this
// system and is deliberately not extended past 2099.
func DeriveFromBarcode(payload string, today time.Time) (domain.ExpiryResult, error) {
	match := gs1ExpiryPattern.FindStringSubmatch(payload)
	if match == nil {
		return domain.ExpiryResult{}, domain.ErrNeedsImageScan
	}

	raw := match[1]
	year, _ := strconv.Atoi(raw[0:2])
	month, _ := strconv.Atoi(raw[2:4])
	day, _ := strconv.Atoi(raw[4:6])

	expiryDate, err := makeDate(2000+year, month, day)
	if err != nil {
		return domain.ExpiryResult{}, err
	}

	return domain.ExpiryResult{
		Type:       domain.ExpiryTypeGS1,
		ExpiryDate: expiryDate,
		DaysLeft:   DaysBetween(today, expiryDate),
	}, nil
}

// DeriveFromRecognizedText derives an expiry date from free-form label text
// by combining a manufacture date (MFG: DD/MM/YYYY) with a shelf life
// (Best before N months). When either pattern is absent the result is
// domain.ErrNeedsManualEntry and the caller must prompt the user.
func DeriveFromRecognizedText(text string, today time.Time) (domain.ExpiryResult, error) {
	mfgMatch := mfgDatePattern.FindStringSubmatch(text)
	shelfMatch := shelfLifePattern.FindStringSubmatch(text)
	if mfgMatch == nil || shelfMatch == nil {
		return domain.ExpiryResult{}, domain.ErrNeedsManualEntry
	}

	day, _ := strconv.Atoi(mfgMatch[1])
	month, _ := strconv.Atoi(mfgMatch[2])
	year, _ := strconv.Atoi(mfgMatch[3])

	mfgDate, err := makeDate(year, month, day)
	if err != nil {
		return domain.ExpiryResult{}, err
	}

	months, err := strconv.Atoi(shelfMatch[1])
	if err != nil {
		// Out-of-range month count, treat as an unmatched pattern.
		return domain.ExpiryResult{}, domain.ErrNeedsManualEntry
	}

	expiryDate := AddCalendarMonths(mfgDate, months)

	return domain.ExpiryResult{
		Type:       domain.ExpiryTypeCalculated,
		ExpiryDate: expiryDate,
		DaysLeft:   DaysBetween(today, expiryDate),
	}, nil
}

// ShouldNotify reports whether a derived result qualifies for an expiry
// notification. Already-expired items (negative days left) qualify.
func ShouldNotify(result domain.ExpiryResult) bool {
	return result.DaysLeft <= domain.NotifyThresholdDays
}

// DaysBetween returns the whole-day calendar difference between two dates,
// ignoring any sub-day component. Negative when expiry is in the past.
func DaysBetween(today, expiry time.Time) int {
	a := truncateToDate(today)
	b := truncateToDate(expiry)
	return int(b.Sub(a).Hours() / 24)
}

// AddCalendarMonths adds n calendar months with month-end clamping, so
// Jan 31 plus one month is the last day of February rather than an
// overflowed date in March.
func AddCalendarMonths(t time.Time, n int) time.Time {
	firstOfTarget := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	day := t.Day()
	if last := daysInMonth(firstOfTarget.Year(), firstOfTarget.Month()); day > last {
		day = last
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, time.UTC)
}

// makeDate builds a calendar date, rejecting values time.Date would silently
// normalize (February 30th, month 13).
func makeDate(year, month, day int) (time.Time, error) {
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, domain.ErrInvalidDate
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, domain.ErrInvalidDate
	}
	return d, nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
