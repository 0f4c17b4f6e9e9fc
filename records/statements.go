package records

import (
	"github.com/shopspring/decimal"
)

// BankAccount is the direct deposit account on file for the return.
type BankAccount struct {
	BankName      string `json:"bank_name"`
	RoutingNumber string `json:"routing_number"`
	AccountNumber string `json:"account_number"`
	IsChecking    bool   `json:"is_checking"`
}

// StatementItem is one labeled amount recovered from a financial
// statement form.
type StatementItem struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	YearLabel   string          `json:"year_label,omitempty"`
}

// BalanceSheet holds the labeled amounts of a balance sheet form. The
// export's layout is positional, so items keep input order rather than
// any assets/liabilities grouping.
type BalanceSheet struct {
	Items []StatementItem `json:"items"`
}

// Total sums every recovered item.
func (b BalanceSheet) Total() decimal.Decimal {
	return sumBy(b.Items, func(i StatementItem) decimal.Decimal { return i.Amount })
}
