package convert

// chain is one ordered lookup rule: semantic names resolved through
// the mapping table first, then documented literal fallback slots.
// The first slot holding a non-empty value wins.
type chain struct {
	names []string
	slots []string
}

// named resolves through the table only.
func named(names ...string) chain { return chain{names: names} }

// literal skips the table entirely.
func literal(slots ...string) chain { return chain{slots: slots} }

// mapped resolves one table name, then one literal fallback slot.
func mapped(name, slot string) chain {
	return chain{names: []string{name}, slots: []string{slot}}
}

// primarySlot is the first literal slot of a chain, for diagnostics.
func (ch chain) primarySlot() string {
	if len(ch.slots) == 0 {
		return ""
	}
	return ch.slots[0]
}

// presenceRules gate which entries count as real instances of a form.
// Exports reuse form codes for placeholder and state-only entries, and
// code 641 doubles as an unrelated e-file authorization form. An entry
// passes when any listed slot carries a value; forms without a rule
// admit every entry.
var presenceRules = map[string][]string{
	"180": {"41"},       // employer name
	"182": {"40"},       // payer name
	"185": {"46"},       // partnership name
	"120": {"45", "34"}, // corporation name, either layout
	"925": {"45"},       // bank name
	"641": {"46"},       // employer name
}

// Identity chains for forms whose identifying field moved between
// slots across export configurations.
var (
	partnershipNameChain = chain{
		names: []string{"partnership_name"},
		slots: []string{"956", "90"},
	}
	corporationNameChain = chain{
		names: []string{"corporation_name", "corporation_name_alt"},
		slots: []string{"45", "34"},
	}
	retirementAccountChain   = mapped("account_number", "84")
	outstandingPrincipalSlot = literal("59")
)

// healthCoverageChains holds the literal slots of the employer health
// coverage form. The code collision with the e-file form makes the
// layout configuration-dependent, so the table does not map them.
var healthCoverageChains = struct {
	employeeSSN     chain
	offerOfCoverage chain
	employeeShare   chain
}{
	employeeSSN:     literal("115"),
	offerOfCoverage: literal("118"),
	employeeShare:   literal("119"),
}

// clientChains is the shared slot layout of the two client information
// forms. Which of the two carries the data depends on the export
// configuration, so both resolve through the same chains.
var clientChains = struct {
	firstName, middleInitial, lastName, ssn          chain
	spouseFirst, spouseMiddle, spouseLast, spouseSSN chain
	occupation, dob, spouseOccupation, spouseDOB     chain
	phone, email, spouseEmail                        chain
	street, city, state, zip                         chain
	filingStatus                                     chain
}{
	firstName:     mapped("first_name", "40"),
	middleInitial: mapped("middle_initial", "41"),
	lastName:      mapped("last_name", "42"),
	ssn:           mapped("ssn", "44"),

	spouseFirst:  mapped("spouse_first_name", "45"),
	spouseMiddle: mapped("spouse_middle_initial", "46"),
	spouseLast:   mapped("spouse_last_name", "47"),
	spouseSSN:    mapped("spouse_ssn", "49"),

	occupation:       mapped("occupation", "60"),
	dob:              mapped("dob", "61"),
	spouseOccupation: mapped("spouse_occupation", "67"),
	spouseDOB:        mapped("spouse_dob", "68"),

	phone:       mapped("phone", "65"),
	email:       mapped("email", "75"),
	spouseEmail: mapped("spouse_email", "76"),

	street: mapped("street", "80"),
	city:   mapped("city", "82"),
	state:  mapped("state", "83"),
	zip:    mapped("zip", "84"),

	filingStatus: mapped("filing_status", "90"),
}

// dependentRows lists the four fixed dependent blocks on the client
// information forms. A row is kept when its first name slot is set.
var dependentRows = []struct {
	first, last, ssn, relationship, dob chain
}{
	{
		first:        mapped("dependent1_first_name", "110"),
		last:         mapped("dependent1_last_name", "112"),
		ssn:          mapped("dependent1_ssn", "114"),
		relationship: mapped("dependent1_relationship", "115"),
		dob:          mapped("dependent1_dob", "140"),
	},
	{
		first:        mapped("dependent2_first_name", "117"),
		last:         mapped("dependent2_last_name", "119"),
		ssn:          mapped("dependent2_ssn", "121"),
		relationship: mapped("dependent2_relationship", "122"),
		dob:          mapped("dependent2_dob", "152"),
	},
	{
		first:        mapped("dependent3_first_name", "124"),
		last:         mapped("dependent3_last_name", "126"),
		ssn:          mapped("dependent3_ssn", "128"),
		relationship: mapped("dependent3_relationship", "129"),
		dob:          mapped("dependent3_dob", "164"),
	},
	{
		first:        mapped("dependent4_first_name", "131"),
		last:         mapped("dependent4_last_name", "133"),
		ssn:          mapped("dependent4_ssn", "135"),
		relationship: mapped("dependent4_relationship", "136"),
		dob:          mapped("dependent4_dob", "176"),
	},
}

// brokerChains resolves the consolidated statement's broker entries
// (form 881), whose slots predate the mapping table.
var brokerChains = struct {
	name, account, owner chain
}{
	name:    mapped("broker_name", "34"),
	account: mapped("account_number", "46"),
	owner:   mapped("taxpayer_or_spouse", "30"),
}

// scheduleEPresence holds the literal slots of the rental real estate
// admission check: a property type, a name, an address, or positive
// rents marks a real entry.
var scheduleEPresence = struct {
	discriminator, name, address, rents string
}{"30", "41", "42", "54"}

// scheduleEChains drives the rental real estate form. Slot 30
// discriminates two layouts: an owner code (T, S, J) means rents were
// exported in the total_expenses slot, anything else is a property
// type string and rents sit in rents_received.
var scheduleEChains = struct {
	discriminator chain
	propertyName  chain
	addressLine   chain
	rentsRetry    chain
}{
	discriminator: named("owner_or_property_type"),
	propertyName:  named("property_name"),
	addressLine:   named("property_address", "address_line_1"),
	rentsRetry:    named("rents_received", "total_expenses"),
}

const (
	// consolidatedPayer labels summary entries with no matching broker
	// entry in their section.
	consolidatedPayer = "Consolidated 1099"

	// defaultPropertyType fills rental entries that never state one.
	defaultPropertyType = "Rental"

	// defaultAccountType fills foreign account entries that never
	// state one.
	defaultAccountType = "Bank"

	// balanceSheetGap is the slot distance from a label to its amount
	// on the positional balance sheet form.
	balanceSheetGap = 2
)
