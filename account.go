package bank

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/etnz/bank/date"
	"github.com/shopspring/decimal"
)

// Amount is a decimal number encoded as a plain JSON number.
//
// decimal.Decimal encodes itself as a quoted string by default, the account
// API uses numbers, so does the saved account slot.
type Amount struct {
	decimal.Decimal
}

// A returns a new Amount from a constant.
func A[T float64 | int | int64](v T) Amount {
	switch v := any(v).(type) {
	case float64:
		return Amount{decimal.NewFromFloat(v)}
	case int:
		return Amount{decimal.NewFromInt(int64(v))}
	case int64:
		return Amount{decimal.NewFromInt(v)}
	}
	return Amount{}
}

// Fixed2 formats the amount with exactly two decimals, "3.5" gives "3.50".
func (a Amount) Fixed2() string { return a.StringFixed(2) }

func (a Amount) MarshalJSON() ([]byte, error) { return []byte(a.String()), nil }

// check that Amount keeps the decimal unmarshaller and its own marshaller.
var _ json.Marshaler = Amount{}
var _ json.Unmarshaler = (*Amount)(nil)

// Transaction is a single line of an account history.
type Transaction struct {
	Date   date.Date `json:"date"`
	Object string    `json:"object"`
	Amount Amount    `json:"amount"`
}

// Account is the server side representation of a bank account.
//
// Account values are replaced wholesale by the Session, they must not be
// modified once installed.
type Account struct {
	User         string        `json:"user"`
	Description  string        `json:"description"`
	Balance      Amount        `json:"balance"`
	Currency     string        `json:"currency"`
	Transactions []Transaction `json:"transactions"`
}

// Clone returns a deep copy of the account.
func (a *Account) Clone() *Account {
	if a == nil {
		return nil
	}
	c := *a
	c.Transactions = slices.Clone(a.Transactions)
	return &c
}

// DecodeAccount parses a JSON encoded account.
func DecodeAccount(data []byte) (*Account, error) {
	var a Account
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("cannot decode account: %w", err)
	}
	if a.Transactions == nil {
		a.Transactions = []Transaction{}
	}
	return &a, nil
}

// EncodeAccount serializes an account in JSON, the way DecodeAccount reads it.
func EncodeAccount(a *Account) ([]byte, error) {
	if a == nil {
		return nil, fmt.Errorf("cannot encode a nil account")
	}
	data, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("cannot encode account %q: %w", a.User, err)
	}
	return data, nil
}
