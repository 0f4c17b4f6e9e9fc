package records

import (
	"github.com/shopspring/decimal"
)

// W2 is a Form W-2 wage and tax statement from one employer.
type W2 struct {
	Owner           Owner  `json:"owner"`
	EmployerName    string `json:"employer_name"`
	EmployerEIN     string `json:"employer_ein"`
	EmployerAddress string `json:"employer_address,omitempty"`
	EmployerCity    string `json:"employer_city,omitempty"`
	EmployerState   string `json:"employer_state,omitempty"`
	EmployerZip     string `json:"employer_zip,omitempty"`

	// Boxes 1-6: income and withholding.
	Wages               decimal.Decimal `json:"wages"`
	FedTaxWithheld      decimal.Decimal `json:"fed_tax_withheld"`
	SSWages             decimal.Decimal `json:"ss_wages"`
	SSTaxWithheld       decimal.Decimal `json:"ss_tax_withheld"`
	MedicareWages       decimal.Decimal `json:"medicare_wages"`
	MedicareTaxWithheld decimal.Decimal `json:"medicare_tax_withheld"`

	// Boxes 7-11.
	SSTips            decimal.Decimal `json:"ss_tips"`
	AllocatedTips     decimal.Decimal `json:"allocated_tips"`
	DependentCare     decimal.Decimal `json:"dependent_care"`
	NonqualifiedPlans decimal.Decimal `json:"nonqualified_plans"`

	// Box 13 checkboxes.
	StatutoryEmployee bool `json:"statutory_employee"`
	RetirementPlan    bool `json:"retirement_plan"`

	// Boxes 15-19: state and local.
	State      string          `json:"state,omitempty"`
	StateEIN   string          `json:"state_ein,omitempty"`
	StateWages decimal.Decimal `json:"state_wages"`
	StateTax   decimal.Decimal `json:"state_tax"`
	LocalWages decimal.Decimal `json:"local_wages"`
	LocalTax   decimal.Decimal `json:"local_tax"`
}

// Form1099INT is an interest income statement.
type Form1099INT struct {
	Owner         Owner  `json:"owner"`
	PayerName     string `json:"payer_name"`
	PayerTIN      string `json:"payer_tin,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`

	InterestIncome         decimal.Decimal `json:"interest_income"`          // box 1
	PriorYearInterest      decimal.Decimal `json:"prior_year_interest"`      // box 1 prior year
	EarlyWithdrawalPenalty decimal.Decimal `json:"early_withdrawal_penalty"` // box 2
	USSavingsBondInterest  decimal.Decimal `json:"us_savings_bond_interest"` // box 3
	FedTaxWithheld         decimal.Decimal `json:"fed_tax_withheld"`         // box 4
}

// Form1099DIV is a dividend income statement.
type Form1099DIV struct {
	Owner         Owner  `json:"owner"`
	PayerName     string `json:"payer_name"`
	PayerTIN      string `json:"payer_tin,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`

	OrdinaryDividends  decimal.Decimal `json:"ordinary_dividends"`   // box 1a
	PriorYearDividends decimal.Decimal `json:"prior_year_dividends"` // box 1a prior year
	QualifiedDividends decimal.Decimal `json:"qualified_dividends"`  // box 1b
	CapitalGainDist    decimal.Decimal `json:"capital_gain_dist"`    // box 2a
	FedTaxWithheld     decimal.Decimal `json:"fed_tax_withheld"`     // box 4
}

// Form1099R is a retirement or pension distribution.
type Form1099R struct {
	Owner         Owner  `json:"owner"`
	PayerName     string `json:"payer_name"`
	PayerTIN      string `json:"payer_tin,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`

	GrossDistribution decimal.Decimal `json:"gross_distribution"` // box 1
	TaxableAmount     decimal.Decimal `json:"taxable_amount"`     // box 2a
	FedTaxWithheld    decimal.Decimal `json:"fed_tax_withheld"`   // box 4
	DistributionCode  string          `json:"distribution_code"`  // box 7
}

// Form1099NEC is non-employee compensation.
type Form1099NEC struct {
	Owner     Owner  `json:"owner"`
	PayerName string `json:"payer_name"`
	PayerTIN  string `json:"payer_tin,omitempty"`

	NonemployeeCompensation decimal.Decimal `json:"nonemployee_compensation"` // box 1
	FedTaxWithheld          decimal.Decimal `json:"fed_tax_withheld"`         // box 4
}

// Form1099G reports government payments, typically unemployment compensation.
type Form1099G struct {
	Owner     Owner  `json:"owner"`
	PayerName string `json:"payer_name"`
	State     string `json:"state,omitempty"`

	UnemploymentCompensation decimal.Decimal `json:"unemployment_compensation"` // box 1
	StateLocalRefund         decimal.Decimal `json:"state_local_refund"`        // box 2, rarely present in exports
	FedTaxWithheld           decimal.Decimal `json:"fed_tax_withheld"`          // box 4
}

// Form1099MISC is miscellaneous information.
type Form1099MISC struct {
	Owner     Owner  `json:"owner"`
	PayerName string `json:"payer_name"`
	PayerTIN  string `json:"payer_tin,omitempty"`

	Rents                    decimal.Decimal `json:"rents"`                      // box 1
	Royalties                decimal.Decimal `json:"royalties"`                  // box 2
	OtherIncome              decimal.Decimal `json:"other_income"`               // box 3
	FishingBoatProceeds      decimal.Decimal `json:"fishing_boat_proceeds"`      // box 5, rarely present in exports
	MedicalPayments          decimal.Decimal `json:"medical_payments"`           // box 6, rarely present in exports
	NonqualifiedDeferredComp decimal.Decimal `json:"nonqualified_deferred_comp"` // box 15, rarely present in exports

	State       string          `json:"state,omitempty"`
	StateIncome decimal.Decimal `json:"state_income"`
}

// PartnershipK1 is a Schedule K-1 (Form 1065) partner's share of income.
type PartnershipK1 struct {
	Owner              Owner  `json:"owner"`
	PartnershipName    string `json:"partnership_name"`
	PartnershipEIN     string `json:"partnership_ein,omitempty"`
	PartnershipAddress string `json:"partnership_address,omitempty"`
	PartnershipCity    string `json:"partnership_city,omitempty"`
	PartnershipState   string `json:"partnership_state,omitempty"`
	PartnershipZip     string `json:"partnership_zip,omitempty"`
	PartnerType        string `json:"partner_type,omitempty"`

	OrdinaryIncome     decimal.Decimal `json:"ordinary_income"`      // box 1
	NetRentalREIncome  decimal.Decimal `json:"net_rental_re_income"` // box 2
	OtherRentalIncome  decimal.Decimal `json:"other_rental_income"`  // box 3
	GuaranteedPayments decimal.Decimal `json:"guaranteed_payments"`  // box 4c, else 4a+4b
	InterestIncome     decimal.Decimal `json:"interest_income"`      // box 5
	OrdinaryDividends  decimal.Decimal `json:"ordinary_dividends"`   // box 6a
	QualifiedDividends decimal.Decimal `json:"qualified_dividends"`  // box 6b
	Royalties          decimal.Decimal `json:"royalties"`            // box 7
	NetSTCG            decimal.Decimal `json:"net_stcg"`             // box 8
	NetLTCG            decimal.Decimal `json:"net_ltcg"`             // box 9a
}

// SCorpK1 is a Schedule K-1 (Form 1120-S) shareholder's share of income.
type SCorpK1 struct {
	Owner           Owner  `json:"owner"`
	CorporationName string `json:"corporation_name"`
	CorporationEIN  string `json:"corporation_ein,omitempty"`

	OrdinaryIncome decimal.Decimal `json:"ordinary_income"` // box 1
}

// SSA1099 is a social security benefit statement.
type SSA1099 struct {
	Owner           Owner  `json:"owner"`
	BeneficiaryName string `json:"beneficiary_name"`
	ClaimNumber     string `json:"claim_number,omitempty"`

	BenefitsPaid decimal.Decimal `json:"benefits_paid"` // box 3
	NetBenefits  decimal.Decimal `json:"net_benefits"`  // box 5
}

// FBARAccount is one foreign financial account reportable on the FBAR.
type FBARAccount struct {
	Owner         Owner  `json:"owner"`
	BankName      string `json:"bank_name"`
	BankAddress   string `json:"bank_address,omitempty"`
	BankCity      string `json:"bank_city,omitempty"`
	BankCountry   string `json:"bank_country,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	AccountType   string `json:"account_type"`

	MaxValue decimal.Decimal `json:"max_value"`
}

// ScheduleE is one rental real estate property from Schedule E.
type ScheduleE struct {
	Owner               Owner  `json:"owner"`
	PropertyDescription string `json:"property_description"`
	PropertyAddress     string `json:"property_address,omitempty"`
	PropertyType        string `json:"property_type"`

	RentsReceived decimal.Decimal `json:"rents_received"`

	Insurance        decimal.Decimal `json:"insurance"`
	MortgageInterest decimal.Decimal `json:"mortgage_interest"`
	Repairs          decimal.Decimal `json:"repairs"`
	Taxes            decimal.Decimal `json:"taxes"`
	Utilities        decimal.Decimal `json:"utilities"`
	Depreciation     decimal.Decimal `json:"depreciation"`
	OtherExpenses    decimal.Decimal `json:"other_expenses"`

	// Always computed from the itemized slots above; the export's own
	// total slot is not reliably populated.
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetIncomeLoss decimal.Decimal `json:"net_income_loss"`
}
