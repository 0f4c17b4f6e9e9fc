package taxtape_test

import (
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxtape"
	"taxtape/records"
)

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestReturnsTwoClientFile(t *testing.T) {
	returns, ds, err := taxtape.Returns(filepath.Join("testdata", "two_clients.exp"))
	require.NoError(t, err)
	require.Empty(t, ds.Errors)
	require.Len(t, returns, 2)

	alice, bob := returns[0], returns[1]

	assert.Equal(t, "ALICE", alice.ClientID)
	assert.Equal(t, 2024, alice.Year)
	assert.Equal(t, "ALICE", alice.Taxpayer.FirstName)
	assert.Equal(t, "EXAMPLE", alice.Taxpayer.LastName)
	assert.Equal(t, "DENVER", alice.Address.City)
	assert.Equal(t, records.FilingSingle, alice.FilingStatus)

	require.Len(t, alice.Income.W2s, 1)
	assert.Equal(t, "ACME ROBOTICS LLC", alice.Income.W2s[0].EmployerName)
	assert.True(t, alice.Income.TotalWages().Equal(amt("84500")))

	require.Len(t, alice.Income.Form1099INT, 1)
	assert.True(t, alice.Income.Form1099INT[0].InterestIncome.Equal(amt("812")))
	assert.True(t, alice.Income.Form1099INT[0].PriorYearInterest.Equal(amt("650")))

	// BOB's two W-2s arrive as separate boundary blocks for the same
	// form code; they accumulate into one form and both convert.
	assert.Equal(t, "BOB", bob.ClientID)
	require.Len(t, bob.Income.W2s, 2)
	assert.Equal(t, "RIVERSIDE CLINIC", bob.Income.W2s[0].EmployerName)
	assert.Equal(t, "GIG PLATFORM INC", bob.Income.W2s[1].EmployerName)
	assert.True(t, bob.Income.TotalWages().Equal(amt("69650")))

	// Every raw form entry stays reachable for traceability.
	require.Len(t, bob.RawForms["180"], 2)
	assert.Equal(t, "61,250.00", bob.RawForms["180"][0]["54"])

	spew.Dump(alice.Income)
}

func TestParseFileStreamsLazily(t *testing.T) {
	stream, err := taxtape.ParseFile(filepath.Join("testdata", "two_clients.exp"))
	require.NoError(t, err)

	doc, ok := stream.Next()
	require.True(t, ok)
	assert.Equal(t, "ALICE", doc.Header.ClientID)

	// Abandoning the stream mid-file is always safe.
}

func TestReturnsMissingFile(t *testing.T) {
	_, _, err := taxtape.Returns(filepath.Join("testdata", "nope.exp"))
	assert.Error(t, err)
}
