package convert

import (
	"taxtape/diag"
	"taxtape/mapping"
	"taxtape/records"
	"taxtape/tape"
)

// Converter turns parsed documents into structured returns using one
// mapping table. It is stateless apart from the table and safe for
// concurrent use.
type Converter struct {
	table *mapping.Table
}

// New returns a converter over the given table. A nil table is
// allowed: every mapped lookup misses and only literal fallback slots
// resolve.
func New(table *mapping.Table) *Converter {
	return &Converter{table: table}
}

// NewDefault returns a converter over the embedded mapping table.
func NewDefault() *Converter {
	return New(mapping.Default())
}

// Convert assembles a Return from one parsed document. It never
// fails; gaps in the input degrade to zero values and anything
// ambiguous is reported through the returned diagnostics.
func (c *Converter) Convert(doc *tape.Document) (*records.Return, diag.Diagnostics) {
	var ds diag.Diagnostics

	ret := &records.Return{
		Year:     doc.Header.Year,
		ClientID: doc.Header.ClientID,
		Kind:     string(doc.Header.Kind),
	}

	c.convertClient(doc, ret, &ds)
	c.convertIncome(doc, ret, &ds)
	c.convertDeductions(doc, ret)
	c.convertBankAccount(doc, ret)
	c.convertBalanceSheet(doc, ret)

	ret.RawForms = rawForms(doc)

	return ret, ds
}

// view binds an entry to the converter's table for one form code.
func (c *Converter) view(form string, e *tape.Entry) formView {
	return formView{table: c.table, form: form, entry: e}
}

// admitted applies the form's presence predicate to an entry.
func admitted(code string, e *tape.Entry) bool {
	slots, ok := presenceRules[code]
	if !ok {
		return true
	}
	for _, slot := range slots {
		if e.Get(slot) != "" {
			return true
		}
	}
	return false
}

// rawForms flattens every form entry into slot-to-text maps, keeping
// entry order. Presence predicates do not apply here: the raw view
// exists precisely to show what conversion filtered or ignored.
func rawForms(doc *tape.Document) map[string][]map[string]string {
	if len(doc.Forms) == 0 {
		return nil
	}

	raw := make(map[string][]map[string]string, len(doc.Forms))
	for code, form := range doc.Forms {
		entries := make([]map[string]string, 0, len(form.Entries))
		for _, e := range form.Entries {
			fields := make(map[string]string, len(e.Fields))
			for slot, f := range e.Fields {
				fields[slot] = f.Text
			}
			entries = append(entries, fields)
		}
		raw[code] = entries
	}
	return raw
}
