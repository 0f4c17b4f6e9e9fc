package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertBankAccount(t *testing.T) {
	t.Parallel()

	const text = `**BEGIN,2024:I:ALICE:1,123-45-6789,,,
\@921 \ Direct Deposit
\&1
.40 FIRST NATIONAL BANK
.41 102000021
.42 8847120
.43 X
\&2
.40 STALE BANK
.41 000000000
`

	ret := convertText(t, text)

	// Only the first entry counts; repeats carry stale data.
	require.NotNil(t, ret.BankAccount)
	assert.Equal(t, "FIRST NATIONAL BANK", ret.BankAccount.BankName)
	assert.Equal(t, "102000021", ret.BankAccount.RoutingNumber)
	assert.Equal(t, "8847120", ret.BankAccount.AccountNumber)
	assert.True(t, ret.BankAccount.IsChecking)
}

func TestConvertBalanceSheet(t *testing.T) {
	t.Parallel()

	// Positional layout: a label at slot N pairs with the amount two
	// slots up.
	const text = `**BEGIN,2024:P:CAROL LLC:1,84-1234567,,,
\@291 \ Balance Sheet
\&1
.40 Cash
.42 52,300.00
.44 Accounts receivable
.46 18,750.00
.48 Equipment
.50 0.00
.52 1,200.00
`

	ret := convertText(t, text)

	require.NotNil(t, ret.BalanceSheet)
	require.Len(t, ret.BalanceSheet.Items, 2)

	assert.Equal(t, "Cash", ret.BalanceSheet.Items[0].Description)
	assertAmount(t, "52300", ret.BalanceSheet.Items[0].Amount)
	assert.Equal(t, "Accounts receivable", ret.BalanceSheet.Items[1].Description)
	assertAmount(t, "18750", ret.BalanceSheet.Items[1].Amount)

	assertAmount(t, "71050", ret.BalanceSheet.Total())
}

func TestBalanceSheetOmittedWhenEmpty(t *testing.T) {
	t.Parallel()

	// Labels without amounts, and amounts without labels, pair with
	// nothing.
	const text = `**BEGIN,2024:P:CAROL LLC:1,84-1234567,,,
\@291 \ Balance Sheet
\&1
.40 Cash
.44 9,999.00
`

	ret := convertText(t, text)
	assert.Nil(t, ret.BalanceSheet)
}
