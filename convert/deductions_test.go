package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertMortgageInterest(t *testing.T) {
	t.Parallel()

	const text = `**BEGIN,2024:I:ALICE:1,123-45-6789,,,
\@206 \ Mortgage Interest
\&1
.30 J
.40 HOMELOAN SERVICING
.41 33-4455667
.42 12 ELM ST DENVER CO
.54 9,800.00
.56 1,150.00
.59 301,000.00
`

	ret := convertText(t, text)
	require.Len(t, ret.Deductions.MortgageInterest, 1)
	m := ret.Deductions.MortgageInterest[0]

	assert.Equal(t, "HOMELOAN SERVICING", m.LenderName)
	assert.Equal(t, "33-4455667", m.LenderTIN)
	assertAmount(t, "9800", m.MortgageInterest)
	assertAmount(t, "1150", m.PointsPaid)
	assertAmount(t, "301000", m.OutstandingPrincipal)

	assertAmount(t, "9800", ret.Deductions.TotalMortgageInterest())
}

func TestConvertMarketplaceStatement(t *testing.T) {
	t.Parallel()

	const text = `**BEGIN,2024:I:ALICE:1,123-45-6789,,,
\@624 \ Health Insurance Marketplace
\&1
.40 CO
.41 7788-XK
.42 SILVER 70 HMO
.54 8,400.00
.55 8,900.00
.56 3,100.00
`

	ret := convertText(t, text)
	require.Len(t, ret.Deductions.HealthInsurance, 1)
	a := ret.Deductions.HealthInsurance[0]

	assert.Equal(t, "CO", a.MarketplaceState)
	assert.Equal(t, "7788-XK", a.PolicyNumber)
	assertAmount(t, "8400", a.AnnualPremium)
	assertAmount(t, "8900", a.AnnualSLCSP)
	assertAmount(t, "3100", a.AnnualAPTC)
}

func TestCoverageFormCodeCollision(t *testing.T) {
	t.Parallel()

	// Code 641 doubles as an e-file authorization form; entries
	// without an employer name belong to the other form and are
	// skipped.
	const text = `**BEGIN,2024:I:ALICE:1,123-45-6789,,,
\@641 \ E-File Authorization
\&1
.52 PIN 88211
\&2
.46 ACME ROBOTICS LLC
.47 84-1112223
.52 ALICE EXAMPLE
.115 123-45-6789
.118 1A
.119 142.50
`

	ret := convertText(t, text)
	require.Len(t, ret.Deductions.Form1095C, 1)
	c := ret.Deductions.Form1095C[0]

	assert.Equal(t, "ACME ROBOTICS LLC", c.EmployerName)
	assert.Equal(t, "ALICE EXAMPLE", c.EmployeeName)
	assert.Equal(t, "123-45-6789", c.EmployeeSSN)
	assert.Equal(t, "1A", c.OfferOfCoverage)
	assertAmount(t, "142.50", c.EmployeeShare)
}
