package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// malayMonths maps month number (1-12) to its Malay name.
var malayMonths = [...]string{
	"Januari", "Februari", "Mac", "April", "Mei", "Jun",
	"Julai", "Ogos", "September", "Oktober", "November", "Disember",
}

// FormatDate renders a strict YYYY-MM-DD date in the given style. The input
// is decomposed by splitting the string rather than parsing through a
// timezone-aware constructor, so the stored calendar day can never shift
// across a midnight boundary. Malformed input degrades: empty or
// zero-component dates render "-", a wrong part count renders the raw string.
func FormatDate(isoDate string, style DateFormat) string {
	if isoDate == "" {
		return "-"
	}
	parts := strings.Split(isoDate, "-")
	if len(parts) != 3 {
		return isoDate
	}
	year, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	day, _ := strconv.Atoi(parts[2])
	if year == 0 || month == 0 || day == 0 {
		return "-"
	}

	switch style {
	case DateFormatSlash:
		return fmt.Sprintf("%02d/%02d/%d", day, month, year)
	case DateFormatDash:
		return fmt.Sprintf("%02d-%02d-%d", day, month, year)
	default:
		if month < 1 || month > 12 {
			return isoDate
		}
		return fmt.Sprintf("%d %s %d", day, malayMonths[month-1], year)
	}
}

// FormatLongDate renders a calendar date in the Malay long form used by the
// signature block.
func FormatLongDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), malayMonths[int(t.Month())-1], t.Year())
}

// FormatTimestamp renders a submission timestamp in the ms-MY locale shape,
// e.g. "24/10/2023, 14:30:05".
func FormatTimestamp(t time.Time) string {
	return t.Format("02/01/2006, 15:04:05")
}
