package convert

import (
	"fmt"
	"strings"

	"taxtape/diag"
	"taxtape/internal/common"
	"taxtape/records"
	"taxtape/tape"
)

// clientFormCodes are the two client information forms, in lookup
// order. Which one carries the data depends on the export
// configuration.
var clientFormCodes = []string{"101", "151"}

// convertClient fills identity, contact, filing status, and
// dependents from whichever client information form carries data.
// With no usable client entry the taxpayer is reconstructed from the
// document header alone.
func (c *Converter) convertClient(doc *tape.Document, ret *records.Return, ds *diag.Diagnostics) {
	ret.FilingStatus = records.FilingSingle

	entry, code := c.clientEntry(doc)
	if entry == nil {
		ret.Taxpayer = records.Person{
			FirstName: doc.Header.ClientID,
			SSN:       doc.Header.IDNumber,
		}
		return
	}

	v := c.view(code, entry)

	firstName := v.first(clientChains.firstName)
	if firstName == "" {
		firstName = doc.Header.ClientID
	}
	ssn := v.first(clientChains.ssn)
	if ssn == "" {
		ssn = doc.Header.IDNumber
	}
	dob, _ := v.firstDate(clientChains.dob)

	ret.Taxpayer = records.Person{
		FirstName:     firstName,
		MiddleInitial: v.first(clientChains.middleInitial),
		LastName:      v.first(clientChains.lastName),
		SSN:           ssn,
		DOB:           dob,
		Occupation:    v.first(clientChains.occupation),
	}

	if spouseFirst := v.first(clientChains.spouseFirst); spouseFirst != "" {
		spouseDOB, _ := v.firstDate(clientChains.spouseDOB)
		ret.Spouse = &records.Person{
			FirstName:     spouseFirst,
			MiddleInitial: v.first(clientChains.spouseMiddle),
			LastName:      v.first(clientChains.spouseLast),
			SSN:           v.first(clientChains.spouseSSN),
			DOB:           spouseDOB,
			Occupation:    v.first(clientChains.spouseOccupation),
		}
	}

	ret.Address = records.Address{
		Street: v.first(clientChains.street),
		City:   v.first(clientChains.city),
		State:  v.first(clientChains.state),
		Zip:    v.first(clientChains.zip),
	}

	c.fillContact(doc, ret, v)

	if statusCode := v.first(clientChains.filingStatus); statusCode != "" {
		status, ok := records.ParseFilingStatus(statusCode)
		if ok {
			ret.FilingStatus = status
		} else {
			ds.AddWarning("unknown_variant",
				fmt.Sprintf("filing status code %q is not a documented status, keeping single", statusCode),
				code, clientChains.filingStatus.primarySlot())
		}
	}

	convertDependents(v, ret)
}

// clientEntry picks the first entry of the first client information
// form that carries a first name.
func (c *Converter) clientEntry(doc *tape.Document) (*tape.Entry, string) {
	for _, code := range clientFormCodes {
		entry, ok := common.First(doc.Entries(code))
		if !ok {
			continue
		}
		if v := c.view(code, entry); v.first(clientChains.firstName) != "" {
			return entry, code
		}
	}

	return nil, ""
}

// fillContact reads phone and email, preferring the contact variant of
// the client form and falling back to the chosen entry for whatever
// the variant leaves blank.
func (c *Converter) fillContact(doc *tape.Document, ret *records.Return, chosen formView) {
	var phone, email, spouseEmail string

	if entry, ok := common.First(doc.Entries("151")); ok {
		v := c.view("151", entry)
		phone = v.first(clientChains.phone)
		email = v.first(clientChains.email)
		spouseEmail = v.first(clientChains.spouseEmail)
	}

	if phone == "" {
		phone = chosen.first(clientChains.phone)
	}
	if email == "" {
		email = chosen.first(clientChains.email)
	}
	if spouseEmail == "" {
		spouseEmail = chosen.first(clientChains.spouseEmail)
	}

	ret.Taxpayer.Phone = phone
	ret.Taxpayer.Email = keepEmail(email)

	if ret.Spouse != nil {
		ret.Spouse.Email = keepEmail(spouseEmail)
	}
}

// keepEmail keeps only values that plausibly are an email address; the
// slot is free text and sometimes carries preparer notes instead.
func keepEmail(s string) string {
	if strings.Contains(s, "@") {
		return s
	}

	return ""
}

// convertDependents scans the fixed dependent blocks of the client
// form, keeping rows that name a dependent.
func convertDependents(v formView, ret *records.Return) {
	for _, row := range dependentRows {
		first := v.first(row.first)
		if first == "" {
			continue
		}

		dob, _ := v.firstDate(row.dob)

		ret.Dependents = append(ret.Dependents, records.Dependent{
			FirstName:    first,
			LastName:     v.first(row.last),
			SSN:          v.first(row.ssn),
			Relationship: v.first(row.relationship),
			DOB:          dob,
		})
	}
}
