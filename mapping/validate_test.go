package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDefaultTable(t *testing.T) {
	res := Validate(Default())

	assert.Empty(t, res.Errors)
	assert.Empty(t, res.Warnings)
	assert.Empty(t, res.Infos)
	assert.True(t, res.IsValid())
}

func TestValidateFindings(t *testing.T) {
	yaml := `
form_180:
  name: IRS W-2
  fields:
    "41": {name: employer_name, type: text}
    "42": {name: employer_name, type: text}
    "43": {name: "", type: text}
    "44": {name: employer_city, type: address}
    "45": {name: employer_state, type: text, values: [CA, NY]}
`

	table, err := Parse([]byte(yaml))
	require.NoError(t, err)

	res := Validate(table)
	assert.True(t, res.HasErrors())
	assert.False(t, res.IsValid())

	require.Len(t, res.Errors, 2)
	assert.Equal(t, "duplicate_field_name", res.Errors[0].Code)
	assert.Equal(t, "42", res.Errors[0].Slot)
	assert.Equal(t, "empty_field_name", res.Errors[1].Code)
	assert.Equal(t, "43", res.Errors[1].Slot)

	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "unknown_declared_type", res.Warnings[0].Code)
	assert.Equal(t, "44", res.Warnings[0].Slot)

	require.Len(t, res.Infos, 1)
	assert.Equal(t, "values_on_non_code", res.Infos[0].Code)
	assert.Equal(t, "45", res.Infos[0].Slot)
}

func TestValidateNilTable(t *testing.T) {
	res := Validate(nil)

	require.Len(t, res.Errors, 1)
	assert.Equal(t, "table_is_nil", res.Errors[0].Code)
}
