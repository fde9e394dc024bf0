package card

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidNumber(t *testing.T) {
	testCases := []struct {
		name   string
		number string
		want   bool
	}{
		{"Visa test number", "4111111111111111", true},
		{"Luhn failure", "4111111111111112", false},
		{"Mastercard test number", "5500005555555559", true},
		{"With spaces", "4111 1111 1111 1111", true},
		{"With dashes", "4111-1111-1111-1111", true},
		{"13 digits amex-era", "4222222222222", true},
		{"Too short", "411111111111", false},
		{"Too long", "41111111111111111111", false},
		{"Letters", "4111a11111111111", false},
		{"Empty", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidNumber(tc.number))
		})
	}
}

func TestLast4(t *testing.T) {
	assert.Equal(t, "1111", Last4("4111111111111111"))
	assert.Equal(t, "1111", Last4("4111 1111 1111 1111"))
	assert.Equal(t, "5559", Last4("5500-0055-5555-5559"))
	assert.Equal(t, "123", Last4("123"))
}

func TestValidCVV(t *testing.T) {
	assert.True(t, ValidCVV("123"))
	assert.True(t, ValidCVV("1234"))
	assert.False(t, ValidCVV("12"))
	assert.False(t, ValidCVV("12345"))
	assert.False(t, ValidCVV("12a"))
	assert.False(t, ValidCVV(""))
}

func TestValidExpiry(t *testing.T) {
	now := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name  string
		month int
		year  int
		want  bool
	}{
		{"Current month is still valid", 8, 26, true},
		{"End of current year", 12, 26, true},
		{"Previous month", 7, 26, false},
		{"Previous year", 1, 25, false},
		{"Future year", 1, 30, true},
		{"Month zero", 0, 30, false},
		{"Month thirteen", 13, 30, false},
		{"Negative year", 12, -1, false},
		{"Three digit year", 12, 126, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, validExpiryAt(tc.month, tc.year, now))
		})
	}
}

func TestValidExpiry_Now(t *testing.T) {
	// Current month against the real clock must be valid.
	now := time.Now()
	assert.True(t, ValidExpiry(int(now.Month()), now.Year()%100))
}
