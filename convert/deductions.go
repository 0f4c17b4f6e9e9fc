package convert

import (
	"taxtape/records"
	"taxtape/tape"
)

func (c *Converter) convertDeductions(doc *tape.Document, ret *records.Return) {
	for _, e := range doc.Entries("206") {
		ret.Deductions.MortgageInterest = append(ret.Deductions.MortgageInterest, c.mortgage1098(e))
	}

	for _, e := range doc.Entries("624") {
		ret.Deductions.HealthInsurance = append(ret.Deductions.HealthInsurance, c.marketplace1095A(e))
	}

	for _, e := range doc.Entries("641") {
		if !admitted("641", e) {
			continue
		}
		ret.Deductions.Form1095C = append(ret.Deductions.Form1095C, c.coverage1095C(e))
	}
}

func (c *Converter) mortgage1098(e *tape.Entry) records.Form1098 {
	v := c.view("206", e)

	return records.Form1098{
		Owner:      v.owner(),
		LenderName: v.text("lender_name"),
		LenderTIN:  v.text("lender_tin"),

		MortgageInterest:     v.amount("box1_mortgage_interest"),
		OutstandingPrincipal: v.firstAmount(outstandingPrincipalSlot),
		PointsPaid:           v.amount("box6_points"),
		PropertyAddress:      v.text("property_address"),
	}
}

// marketplace1095A has no owner slot: the marketplace statement covers
// the household.
func (c *Converter) marketplace1095A(e *tape.Entry) records.Form1095A {
	v := c.view("624", e)

	return records.Form1095A{
		MarketplaceState:  v.text("marketplace_state"),
		PolicyNumber:      v.text("policy_number"),
		PlanName:          v.text("plan_name"),
		CoveredIndividual: v.text("covered_individual_name"),

		AnnualPremium: v.amount("annual_premium"),
		AnnualSLCSP:   v.amount("annual_slcsp"),
		AnnualAPTC:    v.amount("annual_aptc"),
	}
}

func (c *Converter) coverage1095C(e *tape.Entry) records.Form1095C {
	v := c.view("641", e)

	return records.Form1095C{
		Owner:           v.owner(),
		EmployerName:    v.text("employer_name"),
		EmployerEIN:     v.text("employer_ein"),
		EmployerAddress: v.text("employer_address"),
		EmployerCity:    v.text("employer_city"),
		EmployerState:   v.text("employer_state"),
		EmployerZip:     v.text("employer_zip"),

		EmployeeName: v.text("employee_name"),
		EmployeeSSN:  v.first(healthCoverageChains.employeeSSN),

		OfferOfCoverage: v.first(healthCoverageChains.offerOfCoverage),
		EmployeeShare:   v.firstAmount(healthCoverageChains.employeeShare),
	}
}
