package records

import (
	"github.com/shopspring/decimal"
)

// Form1098 is a mortgage interest statement from one lender.
type Form1098 struct {
	Owner      Owner  `json:"owner"`
	LenderName string `json:"lender_name"`
	LenderTIN  string `json:"lender_tin,omitempty"`

	MortgageInterest     decimal.Decimal `json:"mortgage_interest"`          // box 1
	OutstandingPrincipal decimal.Decimal `json:"outstanding_principal"`      // box 2
	PointsPaid           decimal.Decimal `json:"points_paid"`                // box 6
	PropertyAddress      string          `json:"property_address,omitempty"` // box 8
}

// Form1095A is a health insurance marketplace statement.
type Form1095A struct {
	MarketplaceState  string `json:"marketplace_state"`
	PolicyNumber      string `json:"policy_number"`
	PlanName          string `json:"plan_name,omitempty"`
	CoveredIndividual string `json:"covered_individual,omitempty"`

	AnnualPremium decimal.Decimal `json:"annual_premium"`
	AnnualSLCSP   decimal.Decimal `json:"annual_slcsp"` // second lowest cost silver plan
	AnnualAPTC    decimal.Decimal `json:"annual_aptc"`  // advance premium tax credit
}

// Form1095C is an employer-provided health insurance offer statement.
type Form1095C struct {
	Owner           Owner  `json:"owner"`
	EmployerName    string `json:"employer_name"`
	EmployerEIN     string `json:"employer_ein,omitempty"`
	EmployerAddress string `json:"employer_address,omitempty"`
	EmployerCity    string `json:"employer_city,omitempty"`
	EmployerState   string `json:"employer_state,omitempty"`
	EmployerZip     string `json:"employer_zip,omitempty"`

	EmployeeName string `json:"employee_name,omitempty"`
	EmployeeSSN  string `json:"employee_ssn,omitempty"`

	OfferOfCoverage string          `json:"offer_of_coverage,omitempty"` // line 14
	EmployeeShare   decimal.Decimal `json:"employee_share"`              // line 15
}
