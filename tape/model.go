package tape

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReturnKind is the return-type letter from a document header.
// Unlisted letters are carried verbatim, not rejected.
type ReturnKind string

const (
	KindIndividual   ReturnKind = "I"
	KindPartnership  ReturnKind = "P"
	KindSCorporation ReturnKind = "S"
	KindCCorporation ReturnKind = "C"
	KindFiduciary    ReturnKind = "F"
)

// Header holds the fields of a document's opening marker line.
type Header struct {
	Year     int
	Kind     ReturnKind
	ClientID string
	Sequence string
	IDNumber string
	Office   string
	Group    string
	Location string
}

// Entry is one repetition within a form, e.g. one W-2 among several.
// Fields are keyed by raw slot id, memo suffix included.
type Entry struct {
	Section int
	Index   int
	Fields  map[string]Field
}

// insert applies the memo precedence rule: a field is stored when its
// slot is not yet present, or when the incoming field is non-memo.
// Memo fields never overwrite anything already stored.
func (e *Entry) insert(f Field) {
	if _, exists := e.Fields[f.Slot]; exists && f.Memo {
		return
	}

	e.Fields[f.Slot] = f
}

// Get returns the field text for a slot, or "" when the slot is absent.
func (e *Entry) Get(slot string) string {
	return e.Fields[slot].Text
}

// Lookup returns the field stored at a slot.
func (e *Entry) Lookup(slot string) (Field, bool) {
	f, ok := e.Fields[slot]

	return f, ok
}

// Decimal coerces the slot to a decimal amount; absent slots and
// unparsable text yield zero.
func (e *Entry) Decimal(slot string) decimal.Decimal {
	return e.Fields[slot].Decimal()
}

// Bool reports whether the slot holds the checkbox marker.
func (e *Entry) Bool(slot string) bool {
	return e.Fields[slot].Bool()
}

// Date parses the slot as a date; ok is false for absent slots and
// unrecognized layouts.
func (e *Entry) Date(slot string) (time.Time, bool) {
	return e.Fields[slot].Date()
}

// Form is a coded block of repeating entries. Repeated boundary
// markers for the same code within one document accumulate entries
// into a single Form; the display name of the first marker wins.
type Form struct {
	Code    string
	Name    string
	Entries []*Entry
}

// Document is one complete export document: one tax return.
type Document struct {
	Header Header
	Forms  map[string]*Form
}

// Form returns the form with the given code, or nil.
func (d *Document) Form(code string) *Form {
	return d.Forms[code]
}

// Entries returns all entries for a form code; nil when the form is
// absent, so callers can range without checking.
func (d *Document) Entries(code string) []*Entry {
	if f := d.Forms[code]; f != nil {
		return f.Entries
	}

	return nil
}
