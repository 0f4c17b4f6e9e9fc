package convert

import (
	"regexp"
	"slices"
	"strconv"

	"taxtape/internal/common"
	"taxtape/records"
	"taxtape/tape"
)

// convertBankAccount reads the direct deposit form. Only the first
// entry counts; exports occasionally repeat the form with stale data.
func (c *Converter) convertBankAccount(doc *tape.Document, ret *records.Return) {
	entry, ok := common.First(doc.Entries("921"))
	if !ok {
		return
	}

	v := c.view("921", entry)

	ret.BankAccount = &records.BankAccount{
		BankName:      v.text("bank_name"),
		RoutingNumber: v.text("routing_number"),
		AccountNumber: v.text("account_number"),
		IsChecking:    v.flag("is_checking"),
	}
}

// labelPattern marks a slot value as a statement label rather than an
// amount or an id.
var labelPattern = regexp.MustCompile(`[a-zA-Z]`)

// convertBalanceSheet recovers labeled amounts from the balance sheet
// form's positional layout: a label at slot N pairs with an amount at
// slot N+2. Pairs whose amount is zero or unparsable are dropped, and
// the sheet is attached only when at least one item survives.
func (c *Converter) convertBalanceSheet(doc *tape.Document, ret *records.Return) {
	form := doc.Form("291")
	if form == nil {
		return
	}

	var bs records.BalanceSheet

	for _, e := range form.Entries {
		for _, n := range numericSlots(e) {
			label, _ := e.Lookup(strconv.Itoa(n))
			if label.Text == "" || !labelPattern.MatchString(label.Text) {
				continue
			}

			amountField, ok := e.Lookup(strconv.Itoa(n + balanceSheetGap))
			if !ok {
				continue
			}

			if amount := amountField.Decimal(); !amount.IsZero() {
				bs.Items = append(bs.Items, records.StatementItem{
					Description: label.Text,
					Amount:      amount,
				})
			}
		}
	}

	if len(bs.Items) > 0 {
		ret.BalanceSheet = &bs
	}
}

// numericSlots returns an entry's plain numeric slot ids in ascending
// order. Memo ids do not pair positionally and are skipped.
func numericSlots(e *tape.Entry) []int {
	nums := make([]int, 0, len(e.Fields))
	for slot := range e.Fields {
		if n, err := strconv.Atoi(slot); err == nil {
			nums = append(nums, n)
		}
	}
	slices.Sort(nums)

	return nums
}
