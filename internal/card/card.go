// Package card validates card numbers, CVVs and expiry dates. The checks are
// pure format checks (Luhn is a typo detector, not a fraud check); nothing
// here talks to a payment gateway.
package card

import (
	"strings"
	"time"
)

// ValidNumber reports whether s is a plausible card number: 13-19 digits
// after stripping spaces and dashes, passing the Luhn mod-10 checksum.
func ValidNumber(s string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(s)
	if len(cleaned) < 13 || len(cleaned) > 19 {
		return false
	}

	sum := 0
	double := false
	for i := len(cleaned) - 1; i >= 0; i-- {
		c := cleaned[i]
		if c < '0' || c > '9' {
			return false
		}
		digit := int(c - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	return sum%10 == 0
}

// Last4 returns the last four digits of a card number with separators
// stripped, for masked storage.
func Last4(s string) string {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(s)
	if len(cleaned) < 4 {
		return cleaned
	}
	return cleaned[len(cleaned)-4:]
}

// ValidCVV reports whether cvv is exactly 3 or 4 ASCII digits.
func ValidCVV(cvv string) bool {
	if len(cvv) != 3 && len(cvv) != 4 {
		return false
	}
	for i := 0; i < len(cvv); i++ {
		if cvv[i] < '0' || cvv[i] > '9' {
			return false
		}
	}
	return true
}

// ValidExpiry reports whether month/year (two-digit year, 2000+yy century)
// is the current month or later. A card expiring this month is still usable.
func ValidExpiry(month, year int) bool {
	return validExpiryAt(month, year, time.Now())
}

func validExpiryAt(month, year int, now time.Time) bool {
	if month < 1 || month > 12 {
		return false
	}
	if year < 0 || year > 99 {
		return false
	}
	curYear := now.Year() % 100
	curMonth := int(now.Month())
	if year < curYear {
		return false
	}
	if year == curYear && month < curMonth {
		return false
	}
	return true
}
