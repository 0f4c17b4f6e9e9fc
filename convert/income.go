package convert

import (
	"github.com/shopspring/decimal"

	"taxtape/diag"
	"taxtape/records"
	"taxtape/tape"
)

// convertIncome walks every income form in a fixed order. The order is
// part of the contract: consolidated brokerage statements are folded
// in between the standalone 1099-INT and 1099-DIV passes, so interest
// slips read standalone-first and dividend slips consolidated-first.
func (c *Converter) convertIncome(doc *tape.Document, ret *records.Return, ds *diag.Diagnostics) {
	for _, e := range doc.Entries("180") {
		if !admitted("180", e) {
			continue
		}
		ret.Income.W2s = append(ret.Income.W2s, c.w2(e))
	}

	for _, e := range doc.Entries("181") {
		ret.Income.Form1099INT = append(ret.Income.Form1099INT, c.interest1099(e))
	}

	c.consolidated1099(doc, ret)

	for _, e := range doc.Entries("182") {
		if !admitted("182", e) {
			continue
		}
		ret.Income.Form1099DIV = append(ret.Income.Form1099DIV, c.dividend1099(e))
	}

	for _, e := range doc.Entries("184") {
		ret.Income.Form1099R = append(ret.Income.Form1099R, c.retirement1099(e))
	}

	for _, e := range doc.Entries("267") {
		ret.Income.Form1099NEC = append(ret.Income.Form1099NEC, c.nec1099(e))
	}

	for _, e := range doc.Entries("209") {
		ret.Income.Form1099G = append(ret.Income.Form1099G, c.government1099(e))
	}

	for _, e := range doc.Entries("185") {
		if !admitted("185", e) {
			continue
		}
		ret.Income.PartnershipK1s = append(ret.Income.PartnershipK1s, c.partnershipK1(e))
	}

	for _, e := range doc.Entries("120") {
		if !admitted("120", e) {
			continue
		}
		ret.Income.SCorpK1s = append(ret.Income.SCorpK1s, c.sCorpK1(e))
	}

	for _, e := range doc.Entries("190") {
		ret.Income.SSA1099s = append(ret.Income.SSA1099s, c.ssa1099(e))
	}

	for _, e := range doc.Entries("925") {
		if !admitted("925", e) {
			continue
		}
		ret.Income.FBARAccounts = append(ret.Income.FBARAccounts, c.fbarAccount(e))
	}

	for _, e := range doc.Entries("183") {
		ret.Income.Form1099MISC = append(ret.Income.Form1099MISC, c.misc1099(e))
	}

	for _, e := range doc.Entries("211") {
		if !scheduleEWanted(e) {
			continue
		}
		ret.Income.ScheduleE = append(ret.Income.ScheduleE, c.scheduleE(e, ds))
	}
}

func (c *Converter) w2(e *tape.Entry) records.W2 {
	v := c.view("180", e)

	return records.W2{
		Owner:           v.owner(),
		EmployerName:    v.text("employer_name"),
		EmployerEIN:     v.text("employer_ein"),
		EmployerAddress: v.text("employer_address"),
		EmployerCity:    v.text("employer_city"),
		EmployerState:   v.text("employer_state"),
		EmployerZip:     v.text("employer_zip"),

		Wages:               v.amount("box1_wages"),
		FedTaxWithheld:      v.amount("box2_fed_withheld"),
		SSWages:             v.amount("box3_ss_wages"),
		SSTaxWithheld:       v.amount("box4_ss_withheld"),
		MedicareWages:       v.amount("box5_medicare_wages"),
		MedicareTaxWithheld: v.amount("box6_medicare_withheld"),

		SSTips:            v.amount("box7_ss_tips"),
		AllocatedTips:     v.amount("box8_allocated_tips"),
		DependentCare:     v.amount("box10_dependent_care"),
		NonqualifiedPlans: v.amount("box11_nonqualified_plans"),

		StatutoryEmployee: v.flag("box13_statutory"),
		RetirementPlan:    v.flag("box13_retirement"),

		State:      v.text("box15_state"),
		StateEIN:   v.text("box15_state_ein"),
		StateWages: v.amount("box16_state_wages"),
		StateTax:   v.amount("box17_state_tax"),
		LocalWages: v.amount("box18_local_wages"),
		LocalTax:   v.amount("box19_local_tax"),
	}
}

func (c *Converter) interest1099(e *tape.Entry) records.Form1099INT {
	v := c.view("181", e)

	return records.Form1099INT{
		Owner:         v.owner(),
		PayerName:     v.text("payer_name"),
		PayerTIN:      v.text("payer_tin"),
		AccountNumber: v.text("account_number"),

		InterestIncome:         v.amount("box1_interest"),
		PriorYearInterest:      v.amount("box1_interest_prior"),
		EarlyWithdrawalPenalty: v.amount("box2_early_withdrawal"),
		USSavingsBondInterest:  v.amount("box3_savings_bond"),
		FedTaxWithheld:         v.amount("box4_fed_withheld"),
	}
}

func (c *Converter) dividend1099(e *tape.Entry) records.Form1099DIV {
	v := c.view("182", e)

	return records.Form1099DIV{
		Owner:         v.owner(),
		PayerName:     v.text("payer_name"),
		PayerTIN:      v.text("payer_tin"),
		AccountNumber: v.text("account_number"),

		OrdinaryDividends:  v.amount("box1a_ordinary_div"),
		PriorYearDividends: v.amount("box1a_ordinary_div_prior"),
		QualifiedDividends: v.amount("box1b_qualified_div"),
		CapitalGainDist:    v.amount("box2a_cap_gain_dist"),
		FedTaxWithheld:     v.amount("box4_fed_withheld"),
	}
}

func (c *Converter) retirement1099(e *tape.Entry) records.Form1099R {
	v := c.view("184", e)

	return records.Form1099R{
		Owner:         v.owner(),
		PayerName:     v.text("payer_name"),
		PayerTIN:      v.text("payer_ein"),
		AccountNumber: v.first(retirementAccountChain),

		GrossDistribution: v.amount("box1_gross_dist"),
		TaxableAmount:     v.amount("box2a_taxable"),
		FedTaxWithheld:    v.amount("box4_fed_withheld"),
		DistributionCode:  v.text("box7_dist_code"),
	}
}

func (c *Converter) nec1099(e *tape.Entry) records.Form1099NEC {
	v := c.view("267", e)

	return records.Form1099NEC{
		Owner:     v.owner(),
		PayerName: v.text("payer_name"),
		PayerTIN:  v.text("payer_tin"),

		NonemployeeCompensation: v.amount("box1_nec"),
		FedTaxWithheld:          v.amount("box4_fed_withheld"),
	}
}

func (c *Converter) government1099(e *tape.Entry) records.Form1099G {
	v := c.view("209", e)

	// StateLocalRefund stays zero: the export never populates a refund
	// slot on this form.
	return records.Form1099G{
		Owner:     v.owner(),
		PayerName: v.text("payer_name"),
		State:     v.text("state"),

		UnemploymentCompensation: v.amount("box1_unemployment"),
		FedTaxWithheld:           v.amount("box4_fed_withheld"),
	}
}

func (c *Converter) misc1099(e *tape.Entry) records.Form1099MISC {
	v := c.view("183", e)

	// Fishing, medical, and deferred compensation slots are unmapped;
	// they stay zero until an export that populates them shows up.
	return records.Form1099MISC{
		Owner:     v.owner(),
		PayerName: v.text("payer_name"),
		PayerTIN:  v.text("payer_tin"),

		Rents:       v.amount("box1_rents"),
		Royalties:   v.amount("box2_royalties"),
		OtherIncome: v.amount("box3_other_income"),

		State:       v.text("state"),
		StateIncome: v.amount("state_income"),
	}
}

func (c *Converter) partnershipK1(e *tape.Entry) records.PartnershipK1 {
	v := c.view("185", e)

	// Box 4c is the stated total; older layouts only carry the 4a/4b
	// components.
	guaranteed := v.amount("box4c_total_guaranteed")
	if guaranteed.IsZero() {
		guaranteed = v.amount("box4a_guaranteed_services").Add(v.amount("box4b_guaranteed_capital"))
	}

	return records.PartnershipK1{
		Owner:              v.owner(),
		PartnershipName:    v.first(partnershipNameChain),
		PartnershipEIN:     v.text("partnership_ein"),
		PartnershipAddress: v.text("partnership_address"),
		PartnershipCity:    v.text("partnership_city"),
		PartnershipState:   v.text("partnership_state"),
		PartnershipZip:     v.text("partnership_zip"),
		PartnerType:        v.text("partner_type"),

		OrdinaryIncome:     v.amount("box1_ordinary_income"),
		NetRentalREIncome:  v.amount("box2_net_rental_re"),
		OtherRentalIncome:  v.amount("box3_other_rental"),
		GuaranteedPayments: guaranteed,
		InterestIncome:     v.amount("box5_interest"),
		OrdinaryDividends:  v.amount("box6a_ordinary_div"),
		QualifiedDividends: v.amount("box6b_qualified_div"),
		Royalties:          v.amount("box7_royalties"),
		NetSTCG:            v.amount("box8_net_stcg"),
		NetLTCG:            v.amount("box9a_net_ltcg"),
	}
}

func (c *Converter) sCorpK1(e *tape.Entry) records.SCorpK1 {
	v := c.view("120", e)

	// Two layouts report ordinary income in different slots. Keep the
	// larger magnitude; the other is a stale or rounded duplicate.
	income := v.amount("box1_ordinary_income")
	if alt := v.amount("ordinary_income_alt"); alt.Abs().GreaterThan(income.Abs()) {
		income = alt
	}

	return records.SCorpK1{
		Owner:           v.owner(),
		CorporationName: v.first(corporationNameChain),
		CorporationEIN:  v.text("corporation_ein"),
		OrdinaryIncome:  income,
	}
}

func (c *Converter) ssa1099(e *tape.Entry) records.SSA1099 {
	v := c.view("190", e)

	return records.SSA1099{
		Owner:           v.owner(),
		BeneficiaryName: v.text("beneficiary_name"),
		ClaimNumber:     v.text("claim_number"),

		BenefitsPaid: v.amount("box3_benefits_paid"),
		NetBenefits:  v.amount("box5_net_benefits"),
	}
}

func (c *Converter) fbarAccount(e *tape.Entry) records.FBARAccount {
	v := c.view("925", e)

	accountType := v.text("account_type")
	if accountType == "" {
		accountType = defaultAccountType
	}

	return records.FBARAccount{
		Owner:         v.owner(),
		BankName:      v.text("bank_name"),
		BankAddress:   v.text("bank_address"),
		BankCity:      v.text("bank_city"),
		BankCountry:   v.text("bank_country"),
		AccountNumber: v.text("account_number"),
		AccountType:   accountType,

		MaxValue: v.amount("max_value"),
	}
}

// scheduleEWanted admits rental entries that identify a property or
// carry rents; everything else on this code is a carryover stub.
func scheduleEWanted(e *tape.Entry) bool {
	disc := e.Get(scheduleEPresence.discriminator)
	_, isOwnerCode := records.ParseOwner(disc)
	hasPropertyType := disc != "" && !isOwnerCode

	return hasPropertyType ||
		e.Get(scheduleEPresence.name) != "" ||
		e.Get(scheduleEPresence.address) != "" ||
		e.Decimal(scheduleEPresence.rents).IsPositive()
}

func (c *Converter) scheduleE(e *tape.Entry, ds *diag.Diagnostics) records.ScheduleE {
	v := c.view("211", e)

	// The discriminator slot is dual-use: an owner code moves rents to
	// the total_expenses slot, a property type keeps them in
	// rents_received.
	disc := v.first(scheduleEChains.discriminator)
	owner, isOwnerCode := records.ParseOwner(disc)

	propertyType := ""
	if !isOwnerCode {
		propertyType = disc
	}

	if disc == "" &&
		!v.amount("rents_received").IsZero() && !v.amount("total_expenses").IsZero() {
		ds.AddWarning("unknown_variant",
			"no discriminator but amounts in both candidate rent slots, reading rents_received",
			"211", scheduleEPresence.discriminator)
	}

	rents := v.amount("rents_received")
	if isOwnerCode {
		rents = v.amount("total_expenses")
	}
	if rents.IsZero() {
		rents = v.firstAmount(scheduleEChains.rentsRetry)
	}

	name := v.first(scheduleEChains.propertyName)
	if name == "" {
		name = propertyType
	}

	address := joinAddress(
		v.first(scheduleEChains.addressLine),
		v.text("city"),
		v.text("state_code"),
		v.text("zip"),
	)

	insurance := v.amount("insurance")
	mortgageInterest := v.amount("mortgage_interest")
	repairs := v.amount("repairs")
	taxes := v.amount("taxes")
	utilities := v.amount("utilities")
	depreciation := v.amount("depreciation")
	other := v.amount("other_expenses").Add(v.amount("other_expenses_2"))

	total := decimal.Sum(insurance, mortgageInterest, repairs, taxes, utilities, depreciation, other)

	kind := propertyType
	if kind == "" {
		kind = defaultPropertyType
	}

	return records.ScheduleE{
		Owner:               owner,
		PropertyDescription: name,
		PropertyAddress:     address,
		PropertyType:        kind,

		RentsReceived: rents,

		Insurance:        insurance,
		MortgageInterest: mortgageInterest,
		Repairs:          repairs,
		Taxes:            taxes,
		Utilities:        utilities,
		Depreciation:     depreciation,
		OtherExpenses:    other,

		TotalExpenses: total,
		NetIncomeLoss: rents.Sub(total),
	}
}

// joinAddress assembles "street, city, state zip" from whatever parts
// are present.
func joinAddress(street, city, state, zip string) string {
	full := street
	if city != "" {
		if full != "" {
			full += ", " + city
		} else {
			full = city
		}
	}
	if state != "" {
		if full != "" {
			full += ", " + state
		} else {
			full = state
		}
	}
	if zip != "" {
		if full != "" {
			full += " " + zip
		} else {
			full = zip
		}
	}

	return full
}

// consolidated1099 folds brokerage statements into the 1099-INT and
// 1099-DIV slices. Broker entries (form 881) and summary entries
// (form 882) pair by section number; a summary with no matching broker
// gets a generic payer.
func (c *Converter) consolidated1099(doc *tape.Document, ret *records.Return) {
	summaries := doc.Entries("882")
	if len(summaries) == 0 {
		return
	}

	type brokerInfo struct {
		payer   string
		account string
		owner   records.Owner
	}

	bySection := make(map[int]brokerInfo)
	for _, e := range doc.Entries("881") {
		v := c.view("881", e)

		payer := v.first(brokerChains.name)
		if payer == "" {
			continue
		}

		owner, _ := records.ParseOwner(v.first(brokerChains.owner))
		bySection[e.Section] = brokerInfo{
			payer:   payer,
			account: v.first(brokerChains.account),
			owner:   owner,
		}
	}

	for _, e := range summaries {
		v := c.view("882", e)

		info, ok := bySection[e.Section]
		if !ok {
			info = brokerInfo{payer: consolidatedPayer, owner: records.OwnerTaxpayer}
		}

		if interest := v.amount("interest_income"); interest.IsPositive() {
			ret.Income.Form1099INT = append(ret.Income.Form1099INT, records.Form1099INT{
				Owner:          info.owner,
				PayerName:      info.payer,
				AccountNumber:  info.account,
				InterestIncome: interest,
				FedTaxWithheld: v.amount("federal_withholding"),
			})
		}

		if ordinary := v.amount("ordinary_dividends"); ordinary.IsPositive() {
			ret.Income.Form1099DIV = append(ret.Income.Form1099DIV, records.Form1099DIV{
				Owner:              info.owner,
				PayerName:          info.payer,
				AccountNumber:      info.account,
				OrdinaryDividends:  ordinary,
				QualifiedDividends: v.amount("qualified_dividends"),
				CapitalGainDist:    v.amount("total_capital_gain"),
				FedTaxWithheld:     v.amount("federal_withholding"),
			})
		}
	}
}
