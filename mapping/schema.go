package mapping

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"taxtape/internal/common"
)

// DeclaredType is the advisory value type recorded for a slot. It
// feeds validation and review tooling only; the coercion actually
// applied to a value is decided by the accessor the caller uses.
type DeclaredType string

const (
	// TypeUnspecified means the table does not declare a type.
	TypeUnspecified DeclaredType = ""
	// TypeCurrency marks a monetary amount.
	TypeCurrency DeclaredType = "currency"
	// TypeText marks free text.
	TypeText DeclaredType = "text"
	// TypeDate marks a date in one of the export's date layouts.
	TypeDate DeclaredType = "date"
	// TypeBool marks the X-means-true flag convention.
	TypeBool DeclaredType = "bool"
	// TypeCode marks an enumerated code, optionally with Values.
	TypeCode DeclaredType = "code"
)

// IsValid returns true if the type is a recognized value.
func (t DeclaredType) IsValid() bool {
	switch t {
	case TypeUnspecified, TypeCurrency, TypeText, TypeDate, TypeBool, TypeCode:
		return true
	default:
		return false
	}
}

// FieldDef describes one slot of one form.
type FieldDef struct {
	// Name is the semantic field name (e.g., "box1_wages").
	Name string `yaml:"name"`

	// Type is the advisory declared type.
	Type DeclaredType `yaml:"type,omitempty"`

	// Values enumerates the accepted codes for TypeCode fields.
	Values []string `yaml:"values,omitempty"`
}

// UnmarshalYAML accepts either the full mapping form or the bare
// string shorthand:
//
//	"54": {name: box1_wages, type: currency}
//	"54M": box1_wages_note
func (f *FieldDef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var name string
		if err := node.Decode(&name); err != nil {
			return err
		}

		*f = FieldDef{Name: name}

		return nil

	case yaml.MappingNode:
		type plain FieldDef

		var def plain
		if err := node.Decode(&def); err != nil {
			return err
		}

		*f = FieldDef(def)

		return nil

	default:
		return fmt.Errorf("expected string or map for field definition, got %v", node.Kind)
	}
}

// FormDef is the slot layout of one form code.
type FormDef struct {
	// Name is the human-readable form name.
	Name string `yaml:"name"`

	// Fields maps slot id to its definition. Slot ids include the
	// trailing M of memo variants.
	Fields map[string]FieldDef `yaml:"fields"`
}

// Table is a loaded mapping table. It is immutable after load; all
// query methods are safe on a nil receiver, which resolves nothing.
type Table struct {
	forms map[string]FormDef
	// index is the reverse lookup: form code -> semantic name -> slot.
	index map[string]map[string]string
}

// Resolve returns the slot id mapped to the semantic name within the
// form, and whether the table defines one.
func (t *Table) Resolve(formCode, name string) (string, bool) {
	if t == nil {
		return "", false
	}

	slot, ok := t.index[formCode][name]

	return slot, ok
}

// Slot is Resolve with the miss case collapsed to "". Callers that
// chain literal fallback slots treat "" as unresolved.
func (t *Table) Slot(formCode, name string) string {
	slot, _ := t.Resolve(formCode, name)

	return slot
}

// FieldsOf returns the slot definitions of a form, or nil if the form
// is not in the table. The returned map is shared; callers must not
// modify it.
func (t *Table) FieldsOf(formCode string) map[string]FieldDef {
	if t == nil {
		return nil
	}

	return t.forms[formCode].Fields
}

// FormName returns the table's name for a form code, or "Form <code>"
// when the table has none.
func (t *Table) FormName(formCode string) string {
	if t != nil {
		if def, ok := t.forms[formCode]; ok && def.Name != "" {
			return def.Name
		}
	}

	return "Form " + formCode
}

// HasForm returns true if the table defines the form code.
func (t *Table) HasForm(formCode string) bool {
	if t == nil {
		return false
	}

	_, ok := t.forms[formCode]

	return ok
}

// FormCodes returns the form codes defined by the table in ascending
// order.
func (t *Table) FormCodes() []string {
	if t == nil {
		return nil
	}

	return common.SortedKeys(t.forms)
}
