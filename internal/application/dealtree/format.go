package dealtree

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// notAvailable is rendered for values that cannot be formatted
const notAvailable = "N/A"

// FormatCurrency renders an amount as a fixed USD currency string: symbol,
// thousands separators, two decimals. Text input is stripped of everything
// but digits, '.' and '-' before parsing. Nil or non-numeric input renders
// as "N/A".
func FormatCurrency(v interface{}) string {
	d, ok := toAmount(v)
	if !ok {
		return notAvailable
	}

	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	parts := strings.SplitN(d.StringFixed(2), ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	var grouped strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteRune(',')
		}
		grouped.WriteRune(c)
	}

	return sign + "$" + grouped.String() + "." + decPart
}

// toAmount converts supported input types to a decimal amount
func toAmount(v interface{}) (decimal.Decimal, bool) {
	switch val := v.(type) {
	case nil:
		return decimal.Zero, false
	case decimal.Decimal:
		return val, true
	case *decimal.Decimal:
		if val == nil {
			return decimal.Zero, false
		}
		return *val, true
	case int:
		return decimal.NewFromInt(int64(val)), true
	case int64:
		return decimal.NewFromInt(val), true
	case float32:
		return decimal.NewFromFloat(float64(val)), true
	case float64:
		return decimal.NewFromFloat(val), true
	case string:
		cleaned := strings.Map(func(r rune) rune {
			if (r >= '0' && r <= '9') || r == '.' || r == '-' {
				return r
			}
			return -1
		}, val)
		if cleaned == "" {
			return decimal.Zero, false
		}
		d, err := decimal.NewFromString(cleaned)
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	default:
		return decimal.Zero, false
	}
}

// acceptedDateLayouts are the formats FormatDate accepts for string input
var acceptedDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// FormatDate renders a date as "YYYY/MM/DD" with zero-padded month and day.
// Empty, nil or unparseable input renders as "N/A".
func FormatDate(v interface{}) string {
	t, ok := toDate(v)
	if !ok || t.IsZero() {
		return notAvailable
	}
	return t.Format("2006/01/02")
}

func toDate(v interface{}) (time.Time, bool) {
	switch val := v.(type) {
	case time.Time:
		return val, true
	case *time.Time:
		if val == nil {
			return time.Time{}, false
		}
		return *val, true
	case string:
		if val == "" {
			return time.Time{}, false
		}
		for _, layout := range acceptedDateLayouts {
			if t, err := time.Parse(layout, val); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}
