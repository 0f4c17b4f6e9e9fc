package convert_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxtape/convert"
	"taxtape/records"
	"taxtape/tape"
)

// parseDoc parses a single-document export fixture.
func parseDoc(t *testing.T, text string) *tape.Document {
	t.Helper()

	doc, ok := tape.First(text)
	require.True(t, ok, "fixture must contain a document header")

	return doc
}

// convertText converts a fixture with the embedded table, requiring a
// diagnostic-free run.
func convertText(t *testing.T, text string) *records.Return {
	t.Helper()

	ret, ds := convert.NewDefault().Convert(parseDoc(t, text))
	require.Empty(t, ds.Errors)
	require.Empty(t, ds.Warnings)

	return ret
}

// assertAmount checks a decimal against its string form, so failures
// print both values.
func assertAmount(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()

	assert.True(t, got.Equal(decimal.RequireFromString(want)),
		"want %s, got %s", want, got)
}

func TestConvertHeaderOnly(t *testing.T) {
	t.Parallel()

	ret := convertText(t, "**BEGIN,2024:I:ALICE:1,123-45-6789,77,J1,DEN\n")

	assert.Equal(t, 2024, ret.Year)
	assert.Equal(t, "ALICE", ret.ClientID)
	assert.Equal(t, "I", ret.Kind)

	// With no client information form the taxpayer is reconstructed
	// from the header.
	assert.Equal(t, "ALICE", ret.Taxpayer.FirstName)
	assert.Equal(t, "123-45-6789", ret.Taxpayer.SSN)
	assert.Equal(t, records.FilingSingle, ret.FilingStatus)
	assert.Empty(t, ret.RawForms)
}

func TestPresencePredicateFiltersPlaceholders(t *testing.T) {
	t.Parallel()

	const text = `**BEGIN,2024:I:ALICE:1,123-45-6789,,,
\@180 \ IRS W-2
\&1
.30 T
.54 1,200.00
\&2
.30 T
.41 ACME ROBOTICS LLC
.54 84,500.00
`

	ret := convertText(t, text)

	// Entry 1 has wages but no employer name: a placeholder, excluded
	// from the converted records.
	require.Len(t, ret.Income.W2s, 1)
	assert.Equal(t, "ACME ROBOTICS LLC", ret.Income.W2s[0].EmployerName)

	// The raw model still shows both entries.
	require.Len(t, ret.RawForms["180"], 2)
	assert.Equal(t, "1200.00", ret.RawForms["180"][0]["54"])
}

func TestConvertW2AllBoxes(t *testing.T) {
	t.Parallel()

	const text = `**BEGIN,2024:I:ALICE:1,123-45-6789,,,
\@180 \ IRS W-2
\&1
.30 S
.41 ACME ROBOTICS LLC
.42 84-1112223
.54 84,500.00
.55 12,100.00
.56 84,500.00
.57 5,239.00
.58 84,500.00
.59 1,225.25
.64 X
.70 CO
.72 84,500.00
.73 3,700.00
`

	ret := convertText(t, text)
	require.Len(t, ret.Income.W2s, 1)
	w2 := ret.Income.W2s[0]

	assert.Equal(t, records.OwnerSpouse, w2.Owner)
	assert.Equal(t, "84-1112223", w2.EmployerEIN)
	assertAmount(t, "84500", w2.Wages)
	assertAmount(t, "12100", w2.FedTaxWithheld)
	assertAmount(t, "5239", w2.SSTaxWithheld)
	assertAmount(t, "1225.25", w2.MedicareTaxWithheld)
	assert.True(t, w2.RetirementPlan)
	assert.False(t, w2.StatutoryEmployee)
	assert.Equal(t, "CO", w2.State)
	assertAmount(t, "3700", w2.StateTax)

	assertAmount(t, "84500", ret.Income.TotalWages())
}

func TestOwnerDefaultsToTaxpayer(t *testing.T) {
	t.Parallel()

	const text = `**BEGIN,2024:I:ALICE:1,123-45-6789,,,
\@180 \ IRS W-2
\&1
.41 ACME ROBOTICS LLC
.54 10,000.00
`

	ret := convertText(t, text)
	require.Len(t, ret.Income.W2s, 1)
	assert.Equal(t, records.OwnerTaxpayer, ret.Income.W2s[0].Owner)
}

func TestMemoSlotsCarryPriorYearAmounts(t *testing.T) {
	t.Parallel()

	const text = `**BEGIN,2024:I:ALICE:1,123-45-6789,,,
\@181 \ Interest Income
\&1
.40 FIRST NATIONAL BANK
.71 812.00
.71M 650.00
`

	ret := convertText(t, text)
	require.Len(t, ret.Income.Form1099INT, 1)
	slip := ret.Income.Form1099INT[0]

	assertAmount(t, "812", slip.InterestIncome)
	assertAmount(t, "650", slip.PriorYearInterest)
}

// nilTableExport exercises the degraded mode: without a table only
// literal fallback slots resolve, so records built purely from mapped
// names come back empty rather than failing.
func TestConvertWithNilTable(t *testing.T) {
	t.Parallel()

	const text = `**BEGIN,2024:I:ALICE:1,123-45-6789,,,
\@206 \ Mortgage Interest
\&1
.40 HOMELOAN SERVICING
.54 9,800.00
.59 301,000.00
`

	ret, ds := convert.New(nil).Convert(parseDoc(t, text))
	require.Empty(t, ds.Errors)

	require.Len(t, ret.Deductions.MortgageInterest, 1)
	m := ret.Deductions.MortgageInterest[0]

	// Mapped-only fields miss; the literal slot 59 chain still works.
	assert.Empty(t, m.LenderName)
	assert.True(t, m.MortgageInterest.IsZero())
	assertAmount(t, "301000", m.OutstandingPrincipal)
}
