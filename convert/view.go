package convert

import (
	"time"

	"github.com/shopspring/decimal"

	"taxtape/mapping"
	"taxtape/records"
	"taxtape/tape"
)

// formView binds one entry to its form's slot layout. Plain accessors
// resolve a single semantic name through the table; the chain
// accessors walk a fallback chain. Either way a miss reads as the type
// zero value, so builders stay free of lookup error handling.
type formView struct {
	table *mapping.Table
	form  string
	entry *tape.Entry
}

func (v formView) text(name string) string {
	return v.entry.Get(v.table.Slot(v.form, name))
}

func (v formView) amount(name string) decimal.Decimal {
	return v.entry.Decimal(v.table.Slot(v.form, name))
}

func (v formView) flag(name string) bool {
	return v.entry.Bool(v.table.Slot(v.form, name))
}

// owner reads the taxpayer/spouse discriminator, defaulting to
// taxpayer when the slot is absent or unrecognized.
func (v formView) owner() records.Owner {
	o, _ := records.ParseOwner(v.text("taxpayer_or_spouse"))
	return o
}

// lookup walks a chain and returns the first field holding a
// non-empty value.
func (v formView) lookup(ch chain) (tape.Field, bool) {
	for _, name := range ch.names {
		slot, ok := v.table.Resolve(v.form, name)
		if !ok {
			continue
		}
		if f, ok := v.entry.Lookup(slot); ok && f.Text != "" {
			return f, true
		}
	}
	for _, slot := range ch.slots {
		if f, ok := v.entry.Lookup(slot); ok && f.Text != "" {
			return f, true
		}
	}
	return tape.Field{}, false
}

// first is the text of the first non-empty field along the chain.
func (v formView) first(ch chain) string {
	f, _ := v.lookup(ch)
	return f.Text
}

// firstAmount is the first non-zero amount along the chain. Unlike
// first, a field whose text does not coerce to a number falls through
// to the next link.
func (v formView) firstAmount(ch chain) decimal.Decimal {
	for _, name := range ch.names {
		slot, ok := v.table.Resolve(v.form, name)
		if !ok {
			continue
		}
		if d := v.entry.Decimal(slot); !d.IsZero() {
			return d
		}
	}
	for _, slot := range ch.slots {
		if d := v.entry.Decimal(slot); !d.IsZero() {
			return d
		}
	}
	return decimal.Zero
}

// firstDate parses the first non-empty field along the chain as a
// date.
func (v formView) firstDate(ch chain) (time.Time, bool) {
	f, ok := v.lookup(ch)
	if !ok {
		return time.Time{}, false
	}
	return f.Date()
}
