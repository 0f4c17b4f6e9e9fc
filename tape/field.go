package tape

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Field is a single raw slot/text pair parsed from a field line,
// immutable once created. Memo fields keep the trailing M in Slot, so
// "71" and "71M" are distinct keys within an entry.
type Field struct {
	Slot string
	Text string
	Memo bool
}

// currencyCleaner strips the formatting the export applies to amounts.
var currencyCleaner = strings.NewReplacer(",", "", "$", "")

// dateLayouts are tried in order by Date.
var dateLayouts = []string{"01/02/2006", "01/02/06", "2006-01-02"}

// Decimal coerces the text to a decimal amount, stripping thousands
// separators and currency symbols first. Empty or unparsable text
// yields zero; Decimal never fails. The grammar carries no type
// information, so the caller's accessor choice is the only typing a
// field ever gets.
func (f Field) Decimal() decimal.Decimal {
	clean := strings.TrimSpace(currencyCleaner.Replace(f.Text))
	if clean == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero
	}

	return d
}

// Bool reports whether the text is the checkbox marker "X",
// case-insensitively. Everything else, including empty text, is false.
func (f Field) Bool() bool {
	return strings.EqualFold(strings.TrimSpace(f.Text), "X")
}

// Date tries the export's date layouts (MM/DD/YYYY, MM/DD/YY,
// YYYY-MM-DD) in order and returns the first match. ok is false when
// nothing matches; an unparsable date is not an error.
func (f Field) Date() (time.Time, bool) {
	text := strings.TrimSpace(f.Text)
	if text == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, text); err == nil {
			return d, true
		}
	}

	return time.Time{}, false
}
