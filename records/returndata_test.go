package records

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func equalDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, actual.Equal(dec(expected)), "expected %s, got %s", expected, actual)
}

func TestIncomeTotals(t *testing.T) {
	income := Income{
		W2s: []W2{
			{Wages: dec("50000.25")},
			{Wages: dec("1200")},
		},
		Form1099INT: []Form1099INT{
			{InterestIncome: dec("10.50")},
			{InterestIncome: dec("0.25")},
		},
		Form1099DIV: []Form1099DIV{
			{OrdinaryDividends: dec("300"), QualifiedDividends: dec("120")},
		},
		Form1099R: []Form1099R{
			{GrossDistribution: dec("9000"), TaxableAmount: dec("7000")},
		},
		Form1099NEC: []Form1099NEC{
			{NonemployeeCompensation: dec("1500")},
		},
		Form1099MISC: []Form1099MISC{
			{OtherIncome: dec("60"), Rents: dec("99999")},
		},
		PartnershipK1s: []PartnershipK1{
			{OrdinaryIncome: dec("2000")},
			{OrdinaryIncome: dec("-500")},
		},
		SCorpK1s: []SCorpK1{
			{OrdinaryIncome: dec("800")},
		},
		SSA1099s: []SSA1099{
			{BenefitsPaid: dec("1000"), NetBenefits: dec("900")},
		},
	}

	equalDecimal(t, "51200.25", income.TotalWages())
	equalDecimal(t, "10.75", income.TotalInterest())
	equalDecimal(t, "300", income.TotalDividends())
	equalDecimal(t, "120", income.TotalQualifiedDividends())
	equalDecimal(t, "7000", income.TotalRetirement())
	equalDecimal(t, "1500", income.TotalSelfEmployment())
	equalDecimal(t, "1500", income.TotalPartnershipIncome())
	equalDecimal(t, "800", income.TotalSCorpIncome())
	equalDecimal(t, "2300", income.TotalK1Income())
	equalDecimal(t, "900", income.TotalSocialSecurity())
	equalDecimal(t, "60", income.TotalOtherIncome())

	// Wages + interest + dividends + retirement + self-employment +
	// K-1 + social security + other. Rents and gross amounts stay out.
	equalDecimal(t, "63271", income.TotalIncome())
}

func TestIncomeTotalsEmpty(t *testing.T) {
	var income Income

	equalDecimal(t, "0", income.TotalWages())
	equalDecimal(t, "0", income.TotalK1Income())
	equalDecimal(t, "0", income.TotalIncome())
}

func TestDeductionTotals(t *testing.T) {
	deductions := Deductions{
		MortgageInterest: []Form1098{
			{MortgageInterest: dec("8000.50")},
			{MortgageInterest: dec("1999.50")},
		},
		CharitableCash:    dec("250"),
		CharitableNoncash: dec("100"),
	}

	equalDecimal(t, "10000", deductions.TotalMortgageInterest())
	equalDecimal(t, "350", deductions.TotalCharitable())
}
