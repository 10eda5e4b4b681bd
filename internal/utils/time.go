package utils

import "time"

// FormatDate renders timestamps the way invoices and reports display them,
// e.g. "6/1/2025, 3:04:05 PM".
func FormatDate(t time.Time) string {
	return t.Format("1/2/2006, 3:04:05 PM")
}
