package records

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"taxtape/internal/common"
)

//go:generate go tool stringer -type=Owner -output=owner_string.go

// Owner indicates whose slip a record is: the primary filer, the
// secondary filer, or both jointly. The zero value is the taxpayer,
// matching the engine's default when the owner slot is absent.
type Owner int

const (
	OwnerTaxpayer Owner = iota
	OwnerSpouse
	OwnerJoint
)

// Code returns the single-letter owner code used by the export format.
func (o Owner) Code() string {
	switch o {
	case OwnerSpouse:
		return "S"
	case OwnerJoint:
		return "J"
	default:
		return "T"
	}
}

// ParseOwner parses a single-letter owner code, case-insensitively.
// Unrecognized codes return (OwnerTaxpayer, false) so callers keep the
// engine default.
func ParseOwner(code string) (Owner, bool) {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "T":
		return OwnerTaxpayer, true
	case "S":
		return OwnerSpouse, true
	case "J":
		return OwnerJoint, true
	}

	return OwnerTaxpayer, false
}

// MarshalText encodes the owner as its single-letter export code.
func (o Owner) MarshalText() ([]byte, error) {
	return []byte(o.Code()), nil
}

// UnmarshalText decodes a single-letter owner code.
func (o *Owner) UnmarshalText(text []byte) error {
	owner, ok := ParseOwner(string(text))
	if !ok {
		return fmt.Errorf("unknown owner code %q", text)
	}
	*o = owner

	return nil
}

// FilingStatus is the IRS filing status, numbered as the export format
// numbers them (codes "1" through "5").
type FilingStatus int

const (
	FilingSingle FilingStatus = iota + 1
	FilingMarriedJointly
	FilingMarriedSeparately
	FilingHeadOfHousehold
	FilingQualifyingWidow
)

// ParseFilingStatus parses an export status code. Unrecognized codes
// return (FilingSingle, false) so callers can keep their default.
func ParseFilingStatus(code string) (FilingStatus, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(code))
	if err != nil || !common.IsInRange(int(FilingSingle), n, int(FilingQualifyingWidow)) {
		return FilingSingle, false
	}

	return FilingStatus(n), true
}

// String returns a human-readable filing status name.
func (s FilingStatus) String() string {
	switch s {
	case FilingSingle:
		return "single"
	case FilingMarriedJointly:
		return "married filing jointly"
	case FilingMarriedSeparately:
		return "married filing separately"
	case FilingHeadOfHousehold:
		return "head of household"
	case FilingQualifyingWidow:
		return "qualifying widow(er)"
	default:
		return common.UnknownStr
	}
}

// Person holds identity data for the taxpayer or spouse.
type Person struct {
	FirstName     string    `json:"first_name"`
	MiddleInitial string    `json:"middle_initial,omitempty"`
	LastName      string    `json:"last_name"`
	SSN           string    `json:"ssn"`
	DOB           time.Time `json:"dob,omitzero"`
	Occupation    string    `json:"occupation,omitempty"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
}

// FullName joins the name parts, skipping an empty middle initial.
func (p Person) FullName() string {
	parts := []string{p.FirstName}
	if p.MiddleInitial != "" {
		parts = append(parts, p.MiddleInitial)
	}

	parts = append(parts, p.LastName)

	return strings.Join(parts, " ")
}

// Address is a mailing address.
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip_code"`
}

// String formats the address on one line.
func (a Address) String() string {
	var parts []string
	if a.Street != "" {
		parts = append(parts, a.Street)
	}

	if locality := strings.Trim(a.City+", "+a.State+" "+a.Zip, ", "); locality != "" {
		parts = append(parts, locality)
	}

	return strings.Join(parts, ", ")
}

// Dependent holds one dependent row from the client information form.
type Dependent struct {
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	SSN          string    `json:"ssn"`
	Relationship string    `json:"relationship"`
	DOB          time.Time `json:"dob,omitzero"`
}

// FullName joins first and last name.
func (d Dependent) FullName() string {
	return strings.TrimSpace(d.FirstName + " " + d.LastName)
}
