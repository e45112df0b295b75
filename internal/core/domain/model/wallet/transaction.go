package wallet

import (
	"fmt"
	"strings"
	"time"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/pkg/errs"
	"shipdesk/internal/pkg/guard"
)

// TransactionType classifies a ledger entry.
type TransactionType int

const (
	// TransactionUnknown represents an invalid or undefined transaction type.
	TransactionUnknown TransactionType = iota

	// Credit is a top-up or refund; the amount is positive.
	Credit

	// Debit is a charge against the wallet; the amount is negative.
	Debit
)

// TransactionTypeFromString parses a transaction type from its ledger label.
func TransactionTypeFromString(s string) (TransactionType, error) {
	switch s {
	case "CREDIT":
		return Credit, nil
	case "DEBIT":
		return Debit, nil
	default:
		return TransactionUnknown, errs.NewValueIsInvalidErrorWithCause("transaction type",
			fmt.Errorf("%q is not a valid transaction type", s))
	}
}

// Validate checks the transaction type is one of the defined values.
func (t TransactionType) Validate() error {
	if t != Credit && t != Debit {
		return errs.NewValueIsInvalidErrorWithCause("transaction type",
			fmt.Errorf("%d is not a valid transaction type", int(t)))
	}
	return nil
}

// String implements fmt.Stringer using the ledger labels.
func (t TransactionType) String() string {
	switch t {
	case Credit:
		return "CREDIT"
	case Debit:
		return "DEBIT"
	default:
		return "UNKNOWN"
	}
}

// ErrTransactionIsNotConstructed is returned when validating a zero-value Transaction.
var ErrTransactionIsNotConstructed = errs.NewValueIsRequiredError(
	"transaction must be created via the wallet account or RestoreTransaction")

// Transaction is an immutable, append-only ledger entry. The signed amount
// carries the entry's effect on the balance: positive for credits, negative
// for debits. Reference optionally links the entry to the order or dispute
// that caused it.
type Transaction struct {
	id          kernel.UUID
	accountID   kernel.UUID
	amount      kernel.Money
	txType      TransactionType
	description string
	reference   string
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// RestoreTransaction reconstructs a ledger entry from persistence.
// The sign of the amount must match the transaction type.
func RestoreTransaction(
	id kernel.UUID,
	accountID kernel.UUID,
	amount kernel.Money,
	txType TransactionType,
	description string,
	reference string,
	createdAt time.Time,
) (Transaction, error) {
	return newTransaction(id, accountID, amount, txType, description, reference, createdAt)
}

func newTransaction(
	id kernel.UUID,
	accountID kernel.UUID,
	amount kernel.Money,
	txType TransactionType,
	description string,
	reference string,
	createdAt time.Time,
) (Transaction, error) {
	if err := id.Validate(); err != nil {
		return Transaction{}, err
	}
	if err := accountID.Validate(); err != nil {
		return Transaction{}, err
	}
	if err := txType.Validate(); err != nil {
		return Transaction{}, err
	}
	if strings.TrimSpace(description) == "" {
		return Transaction{}, errs.NewValueIsRequiredError("transaction description")
	}
	if txType == Credit && !amount.IsPositive() {
		return Transaction{}, errs.NewValueIsInvalidErrorWithCause("transaction amount",
			fmt.Errorf("credit amount %s is not positive", amount.String()))
	}
	if txType == Debit && !amount.IsNegative() {
		return Transaction{}, errs.NewValueIsInvalidErrorWithCause("transaction amount",
			fmt.Errorf("debit amount %s is not negative", amount.String()))
	}

	return Transaction{
		id:          id,
		accountID:   accountID,
		amount:      amount,
		txType:      txType,
		description: description,
		reference:   reference,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate checks the Transaction was properly constructed.
func (t Transaction) Validate() error {
	return t.guard.Validate(ErrTransactionIsNotConstructed)
}

// ID returns the ledger entry id.
func (t Transaction) ID() kernel.UUID { return t.id }

// AccountID returns the owning wallet account id.
func (t Transaction) AccountID() kernel.UUID { return t.accountID }

// Amount returns the signed effect on the balance.
func (t Transaction) Amount() kernel.Money { return t.amount }

// Type returns the ledger entry classification.
func (t Transaction) Type() TransactionType { return t.txType }

// Description returns the human-readable entry description.
func (t Transaction) Description() string { return t.description }

// Reference returns the order reference or dispute id that caused the entry,
// empty for plain top-ups.
func (t Transaction) Reference() string { return t.reference }

// CreatedAt returns the entry timestamp.
func (t Transaction) CreatedAt() time.Time { return t.createdAt }
