package mapping

import (
	"fmt"

	"taxtape/diag"
	"taxtape/internal/common"
)

// Validate runs the structural consistency checks a reviewer would
// apply before committing a table: duplicate semantic names and empty
// names are errors, an unrecognized declared type is a warning, and a
// values list on a non-code field is informational. Resolution itself
// never consults these results; a table that validates dirty still
// resolves whatever it can.
func Validate(t *Table) diag.Diagnostics {
	var res diag.Diagnostics

	if t == nil {
		res.AddError("table_is_nil", "mapping table is nil", "", "")
		return res
	}

	for _, code := range common.SortedKeys(t.forms) {
		def := t.forms[code]
		seen := map[string]string{}

		for _, slot := range common.SortedKeys(def.Fields) {
			fd := def.Fields[slot]

			if fd.Name == "" {
				res.AddError("empty_field_name",
					fmt.Sprintf("form %s slot %s has no semantic name", code, slot), code, slot)
				continue
			}

			if prev, ok := seen[fd.Name]; ok {
				res.AddError("duplicate_field_name",
					fmt.Sprintf("semantic name %q maps to both slot %s and slot %s", fd.Name, prev, slot),
					code, slot)
			} else {
				seen[fd.Name] = slot
			}

			if !fd.Type.IsValid() {
				res.AddWarning("unknown_declared_type",
					fmt.Sprintf("declared type %q is not recognized", fd.Type), code, slot)
			}

			if len(fd.Values) > 0 && fd.Type != TypeCode {
				res.AddInfo("values_on_non_code",
					fmt.Sprintf("values listed for %q, which is not a code field", fd.Name), code, slot)
			}
		}
	}

	return res
}
