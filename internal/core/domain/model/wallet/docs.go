// Package wallet provides the prepaid wallet ledger of a merchant account.
//
// The package includes:
//   - Account: The aggregate root owning the committed balance
//   - Transaction: An immutable, append-only ledger entry
//
// Key business rules:
//   - Every balance mutation produces exactly one transaction, created
//     atomically with the mutation it represents
//   - The balance always equals the sum of all committed transaction amounts
//   - Debits that would drive the balance negative fail with
//     ErrInsufficientFunds and leave the account untouched
//   - Transactions are never updated or deleted; corrections are new
//     offsetting transactions
package wallet
