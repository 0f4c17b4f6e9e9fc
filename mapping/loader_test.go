package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
form_180:
  name: IRS W-2
  fields:
    "30": {name: taxpayer_or_spouse, type: code, values: [T, S, J]}
    "41": {name: employer_name, type: text}
    "54": {name: box1_wages, type: currency}
    "54M": box1_wages_note
`

	table, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, table)

	assert.True(t, table.HasForm("180"))
	assert.False(t, table.HasForm("181"))
	assert.Equal(t, "IRS W-2", table.FormName("180"))
	assert.Equal(t, "Form 181", table.FormName("181"))

	slot, ok := table.Resolve("180", "box1_wages")
	require.True(t, ok)
	assert.Equal(t, "54", slot)

	_, ok = table.Resolve("180", "box2_fed_withheld")
	assert.False(t, ok)
	assert.Equal(t, "", table.Slot("180", "box2_fed_withheld"))

	_, ok = table.Resolve("999", "box1_wages")
	assert.False(t, ok)

	// Bare string shorthand carries only the name.
	note := table.FieldsOf("180")["54M"]
	assert.Equal(t, "box1_wages_note", note.Name)
	assert.Equal(t, TypeUnspecified, note.Type)

	owner := table.FieldsOf("180")["30"]
	assert.Equal(t, TypeCode, owner.Type)
	assert.Equal(t, []string{"T", "S", "J"}, owner.Values)
}

func TestParseRejectsUnexpectedKey(t *testing.T) {
	_, err := Parse([]byte("w2_180:\n  name: nope\n"))
	assert.Error(t, err)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("form_180: ["))
	assert.Error(t, err)
}

func TestResolveDuplicateName(t *testing.T) {
	yaml := `
form_184:
  name: Retirement Distributions (1099-R)
  fields:
    "54": {name: box1_gross_dist, type: currency}
    "41": {name: box1_gross_dist, type: currency}
`

	table, err := Parse([]byte(yaml))
	require.NoError(t, err)

	// The slot that sorts first wins, deterministically.
	assert.Equal(t, "41", table.Slot("184", "box1_gross_dist"))
}

func TestFormCodes(t *testing.T) {
	yaml := `
form_182:
  name: Dividend Income (1099-DIV)
  fields:
    "40": payer_name
form_120:
  name: S Corporation K-1 (1120S)
  fields:
    "34": corporation_name
`

	table, err := Parse([]byte(yaml))
	require.NoError(t, err)
	assert.Equal(t, []string{"120", "182"}, table.FormCodes())
}

func TestNilTableQueries(t *testing.T) {
	var table *Table

	_, ok := table.Resolve("180", "box1_wages")
	assert.False(t, ok)
	assert.Equal(t, "", table.Slot("180", "box1_wages"))
	assert.Nil(t, table.FieldsOf("180"))
	assert.Equal(t, "Form 180", table.FormName("180"))
	assert.False(t, table.HasForm("180"))
	assert.Nil(t, table.FormCodes())
}

func TestDefault(t *testing.T) {
	table := Default()
	require.NotNil(t, table)
	assert.Same(t, table, Default())

	// Spot checks across the embedded table.
	assert.Equal(t, "54", table.Slot("180", "box1_wages"))
	assert.Equal(t, "71M", table.Slot("181", "box1_interest_prior"))
	assert.Equal(t, "70M", table.Slot("182", "box1a_ordinary_div_prior"))
	assert.Equal(t, "34", table.Slot("120", "corporation_name"))
	assert.Equal(t, "45", table.Slot("120", "corporation_name_alt"))
	assert.Equal(t, "57", table.Slot("882", "interest_income"))
	assert.Equal(t, "90", table.Slot("151", "filing_status"))
	assert.Equal(t, "60", table.Slot("211", "total_expenses"))
	assert.True(t, table.HasForm("291"))
	assert.True(t, table.HasForm("921"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestCached(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "table.yaml")
	body := "form_180:\n  name: IRS W-2\n  fields:\n    \"54\": box1_wages\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	first, err := Cached(path)
	require.NoError(t, err)

	second, err := Cached(path)
	require.NoError(t, err)
	assert.Same(t, first, second)

	_, err = Cached(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
