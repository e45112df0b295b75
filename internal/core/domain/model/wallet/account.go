package wallet

import (
	"errors"
	"fmt"
	"time"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/pkg/errs"
)

var (
	// ErrAccountIsNotConstructed is returned when an Account instance was not
	// created through the NewAccount or RestoreAccount factory methods.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount or RestoreAccount")

	// ErrInsufficientFunds is the sentinel error for debits the balance
	// cannot satisfy. Use errors.Is with this sentinel to classify
	// InsufficientFundsError values.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// InsufficientFundsError reports a rejected debit with the amounts involved,
// so the caller can show the merchant how much to top up before retrying.
type InsufficientFundsError struct {
	Balance   kernel.Money
	Requested kernel.Money
}

// Error formats the rejected debit with balance and requested amount.
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("%s: balance is %s, requested debit is %s",
		ErrInsufficientFunds, e.Balance, e.Requested)
}

// Unwrap returns the sentinel error for errors.Is support.
func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}

// Account is the prepaid wallet of a merchant. It is the aggregate root that
// owns the committed balance and produces the ledger entries that mutate it.
//
// Account follows these invariants:
//   - The balance equals the sum of all committed transaction amounts
//   - The committed balance is never negative; a debit that would overdraw
//     fails with InsufficientFundsError and mutates nothing
//   - Every Debit/Credit call returns the single Transaction representing the
//     mutation; the caller persists both in one transactional boundary
type Account struct {
	id      kernel.UUID
	balance kernel.Money

	isConstructed bool
}

// NewAccount creates a wallet account with the given opening balance.
// The opening balance is recorded by the returned opening Transaction so the
// ledger law holds from the very first entry. A zero opening balance returns
// no opening transaction.
func NewAccount(id kernel.UUID, openingBalance kernel.Money, now time.Time) (*Account, *Transaction, error) {
	if err := id.Validate(); err != nil {
		return nil, nil, err
	}
	if err := openingBalance.ValidateNonNegative("opening balance"); err != nil {
		return nil, nil, err
	}

	account := &Account{
		id:            id,
		balance:       kernel.ZeroMoney(),
		isConstructed: true,
	}

	if openingBalance.IsZero() {
		return account, nil, nil
	}

	tx, err := account.Credit(openingBalance, "Opening balance", "", now)
	if err != nil {
		return nil, nil, err
	}
	return account, tx, nil
}

// RestoreAccount reconstructs an Account from persistence.
func RestoreAccount(id kernel.UUID, balance kernel.Money) (*Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := balance.ValidateNonNegative("balance"); err != nil {
		return nil, err
	}
	return &Account{
		id:            id,
		balance:       balance,
		isConstructed: true,
	}, nil
}

// Validate ensures the Account instance was properly constructed.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// ID returns the wallet account id.
func (a *Account) ID() kernel.UUID { return a.id }

// Balance returns the committed balance.
func (a *Account) Balance() kernel.Money { return a.balance }

// Credit adds funds to the wallet and returns the CREDIT ledger entry.
// The amount must be positive.
func (a *Account) Credit(amount kernel.Money, description, reference string, now time.Time) (*Transaction, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, errs.NewValueIsInvalidErrorWithCause("credit amount",
			fmt.Errorf("%s is not greater than 0", amount.String()))
	}

	tx, err := newTransaction(kernel.NewUUID(), a.id, amount, Credit, description, reference, now)
	if err != nil {
		return nil, err
	}

	a.balance = a.balance.Add(amount)
	return &tx, nil
}

// Debit removes funds from the wallet and returns the DEBIT ledger entry,
// whose amount carries a negative sign.
//
// Business rules:
//   - The amount must be positive (it is the magnitude of the charge)
//   - The debit fails with InsufficientFundsError when the balance cannot
//     cover it; the account is left untouched and no entry is produced
func (a *Account) Debit(amount kernel.Money, description, reference string, now time.Time) (*Transaction, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, errs.NewValueIsInvalidErrorWithCause("debit amount",
			fmt.Errorf("%s is not greater than 0", amount.String()))
	}
	if a.balance.LessThan(amount) {
		return nil, &InsufficientFundsError{Balance: a.balance, Requested: amount}
	}

	tx, err := newTransaction(kernel.NewUUID(), a.id, amount.Neg(), Debit, description, reference, now)
	if err != nil {
		return nil, err
	}

	a.balance = a.balance.Sub(amount)
	return &tx, nil
}
