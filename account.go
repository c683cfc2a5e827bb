package drip

import (
	"encoding/json"
	"fmt"
	"strings"
)

type accountKind int

const (
	unknownAccount accountKind = iota
	bankAccount
	cashAccount
	mainSavingsAccount
	allowancesAccount
	bucketAccount
)

const bucketPrefix = "Bucket:"

// Account names where money is taken from or credited to.
//
// It is a closed set: Bank, Cash, MainSavings, Allowances, or a custom bucket
// by name. Values read from older data that match none of them are kept
// verbatim and are never acted upon.
type Account struct {
	kind accountKind
	name string // bucket name, or the raw text of an unknown account.
}

var (
	Bank        = Account{kind: bankAccount}
	Cash        = Account{kind: cashAccount}
	MainSavings = Account{kind: mainSavingsAccount}
	Allowances  = Account{kind: allowancesAccount}
)

// Bucket returns the account of the custom bucket with that name.
func Bucket(name string) Account { return Account{kind: bucketAccount, name: name} }

// BucketName returns the bucket name and true if a is a custom bucket account.
func (a Account) BucketName() (string, bool) { return a.name, a.kind == bucketAccount }

// IsKnown reports whether a is one of the closed set of accounts.
func (a Account) IsKnown() bool { return a.kind != unknownAccount }

func (a Account) String() string {
	switch a.kind {
	case bankAccount:
		return "Bank"
	case cashAccount:
		return "Cash"
	case mainSavingsAccount:
		return "MainSavings"
	case allowancesAccount:
		return "Allowances"
	case bucketAccount:
		return bucketPrefix + a.name
	default:
		return a.name
	}
}

// ParseAccount parses the textual form of an account. Matching is case
// insensitive for the fixed accounts; "Bucket:<name>" keeps the name as is.
func ParseAccount(s string) (Account, error) {
	if name, ok := strings.CutPrefix(s, bucketPrefix); ok {
		if name == "" {
			return Account{}, fmt.Errorf("%w: empty bucket name", ErrInvalidAccount)
		}
		return Bucket(name), nil
	}
	switch strings.ToLower(s) {
	case "bank":
		return Bank, nil
	case "cash":
		return Cash, nil
	case "mainsavings", "main-savings", "savings":
		return MainSavings, nil
	case "allowances":
		return Allowances, nil
	}
	return Account{}, fmt.Errorf("%w: %q", ErrInvalidAccount, s)
}

func (a Account) MarshalJSON() ([]byte, error) { return json.Marshal(a.String()) }

// UnmarshalJSON never fails on unknown names, they are preserved as unknown accounts.
func (a *Account) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if parsed, err := ParseAccount(s); err == nil {
		*a = parsed
		return nil
	}
	*a = Account{name: s}
	return nil
}
