package models

import (
	"fmt"
	"regexp"
	"time"
)

var months = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// InternationalDate formats t as "Jan 2, 2006" in UTC.
func InternationalDate(t time.Time) string {
	return t.UTC().Format("Jan 2, 2006")
}

// MonthName maps a zero-based month index to its short name, or "" when
// out of range.
func MonthName(month int) string {
	if month < 0 || month >= len(months) {
		return ""
	}
	return months[month]
}

var usPhone = regexp.MustCompile(`^\+1(\d{3})(\d{3})(\d{4})$`)

// FormatPhoneNumber renders +1XXXXXXXXXX as "+1 (XXX) XXX-XXXX" and returns
// anything else unchanged.
func FormatPhoneNumber(phone string) string {
	m := usPhone.FindStringSubmatch(phone)
	if m == nil {
		return phone
	}
	return fmt.Sprintf("+1 (%s) %s-%s", m[1], m[2], m[3])
}
