package records

import (
	"github.com/shopspring/decimal"
)

// Income aggregates every income slip converted from one document.
type Income struct {
	W2s            []W2            `json:"w2s,omitempty"`
	Form1099INT    []Form1099INT   `json:"form_1099_int,omitempty"`
	Form1099DIV    []Form1099DIV   `json:"form_1099_div,omitempty"`
	Form1099R      []Form1099R     `json:"form_1099_r,omitempty"`
	Form1099NEC    []Form1099NEC   `json:"form_1099_nec,omitempty"`
	Form1099G      []Form1099G     `json:"form_1099_g,omitempty"`
	Form1099MISC   []Form1099MISC  `json:"form_1099_misc,omitempty"`
	PartnershipK1s []PartnershipK1 `json:"k1_1065,omitempty"`
	SCorpK1s       []SCorpK1       `json:"k1_1120s,omitempty"`
	SSA1099s       []SSA1099       `json:"ssa_1099,omitempty"`
	FBARAccounts   []FBARAccount   `json:"fbar,omitempty"`
	ScheduleE      []ScheduleE     `json:"schedule_e,omitempty"`
}

func sumBy[E any](items []E, amount func(E) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(amount(item))
	}

	return total
}

// TotalWages sums box 1 across all W-2s.
func (in Income) TotalWages() decimal.Decimal {
	return sumBy(in.W2s, func(w W2) decimal.Decimal { return w.Wages })
}

// TotalInterest sums box 1 across all 1099-INTs.
func (in Income) TotalInterest() decimal.Decimal {
	return sumBy(in.Form1099INT, func(f Form1099INT) decimal.Decimal { return f.InterestIncome })
}

// TotalDividends sums ordinary dividends across all 1099-DIVs.
func (in Income) TotalDividends() decimal.Decimal {
	return sumBy(in.Form1099DIV, func(f Form1099DIV) decimal.Decimal { return f.OrdinaryDividends })
}

// TotalQualifiedDividends sums qualified dividends across all 1099-DIVs.
func (in Income) TotalQualifiedDividends() decimal.Decimal {
	return sumBy(in.Form1099DIV, func(f Form1099DIV) decimal.Decimal { return f.QualifiedDividends })
}

// TotalRetirement sums the taxable amounts across all 1099-Rs.
func (in Income) TotalRetirement() decimal.Decimal {
	return sumBy(in.Form1099R, func(f Form1099R) decimal.Decimal { return f.TaxableAmount })
}

// TotalSelfEmployment sums compensation across all 1099-NECs.
func (in Income) TotalSelfEmployment() decimal.Decimal {
	return sumBy(in.Form1099NEC, func(f Form1099NEC) decimal.Decimal { return f.NonemployeeCompensation })
}

// TotalPartnershipIncome sums box 1 across all partnership K-1s.
func (in Income) TotalPartnershipIncome() decimal.Decimal {
	return sumBy(in.PartnershipK1s, func(k PartnershipK1) decimal.Decimal { return k.OrdinaryIncome })
}

// TotalSCorpIncome sums box 1 across all S corporation K-1s.
func (in Income) TotalSCorpIncome() decimal.Decimal {
	return sumBy(in.SCorpK1s, func(k SCorpK1) decimal.Decimal { return k.OrdinaryIncome })
}

// TotalK1Income is partnership plus S corporation ordinary income.
func (in Income) TotalK1Income() decimal.Decimal {
	return in.TotalPartnershipIncome().Add(in.TotalSCorpIncome())
}

// TotalSocialSecurity sums net benefits across all SSA-1099s.
func (in Income) TotalSocialSecurity() decimal.Decimal {
	return sumBy(in.SSA1099s, func(s SSA1099) decimal.Decimal { return s.NetBenefits })
}

// TotalOtherIncome sums box 3 across all 1099-MISCs.
func (in Income) TotalOtherIncome() decimal.Decimal {
	return sumBy(in.Form1099MISC, func(f Form1099MISC) decimal.Decimal { return f.OtherIncome })
}

// TotalIncome sums every source feeding the return-level summary:
// wages, interest, ordinary dividends, taxable retirement
// distributions, self-employment, K-1, social security and other
// income.
func (in Income) TotalIncome() decimal.Decimal {
	return decimal.Sum(
		in.TotalWages(),
		in.TotalInterest(),
		in.TotalDividends(),
		in.TotalRetirement(),
		in.TotalSelfEmployment(),
		in.TotalK1Income(),
		in.TotalSocialSecurity(),
		in.TotalOtherIncome(),
	)
}

// Deductions aggregates deduction statements converted from one
// document.
type Deductions struct {
	MortgageInterest []Form1098  `json:"mortgage_interest,omitempty"`
	HealthInsurance  []Form1095A `json:"health_insurance,omitempty"`
	Form1095C        []Form1095C `json:"form_1095_c,omitempty"`

	// Worksheet amounts. The slip converter leaves these zero; callers
	// merging worksheet data fill them in.
	StateLocalTaxes     decimal.Decimal `json:"state_local_taxes"`
	RealEstateTaxes     decimal.Decimal `json:"real_estate_taxes"`
	MedicalExpenses     decimal.Decimal `json:"medical_expenses"`
	CharitableCash      decimal.Decimal `json:"charitable_cash"`
	CharitableNoncash   decimal.Decimal `json:"charitable_noncash"`
	StudentLoanInterest decimal.Decimal `json:"student_loan_interest"`
}

// TotalMortgageInterest sums box 1 across all 1098s.
func (d Deductions) TotalMortgageInterest() decimal.Decimal {
	return sumBy(d.MortgageInterest, func(m Form1098) decimal.Decimal { return m.MortgageInterest })
}

// TotalCharitable is cash plus noncash contributions.
func (d Deductions) TotalCharitable() decimal.Decimal {
	return d.CharitableCash.Add(d.CharitableNoncash)
}

// Return is the structured, queryable record of one filed tax return,
// assembled by the conversion engine from a parsed document.
type Return struct {
	Year     int    `json:"tax_year"`
	ClientID string `json:"client_id"`
	Kind     string `json:"return_kind,omitempty"` // header type letter, e.g. "I" for individual

	Taxpayer     Person       `json:"taxpayer"`
	Spouse       *Person      `json:"spouse,omitempty"`
	FilingStatus FilingStatus `json:"filing_status"`
	Address      Address      `json:"address"`
	Dependents   []Dependent  `json:"dependents,omitempty"`

	BankAccount *BankAccount `json:"bank_account,omitempty"`

	Income       Income        `json:"income"`
	Deductions   Deductions    `json:"deductions"`
	BalanceSheet *BalanceSheet `json:"balance_sheet,omitempty"`

	// RawForms carries every raw form entry as slot-to-text maps so a
	// consumer can trace any converted value back to its source.
	RawForms map[string][]map[string]string `json:"raw_forms,omitempty"`
}
