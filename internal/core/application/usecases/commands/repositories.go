// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"shipdesk/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// WalletRepoFactory provides access to the wallet repository within a transaction.
	WalletRepoFactory interface {
		WalletRepository() ports.WalletRepository
	}

	// IncidentRepoFactory provides access to the incident repository within a transaction.
	IncidentRepoFactory interface {
		IncidentRepository() ports.IncidentRepository
	}

	// DisputeRepoFactory provides access to the dispute repository within a transaction.
	DisputeRepoFactory interface {
		DisputeRepository() ports.DisputeRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// WalletUoW manages transactions for wallet-only operations.
	WalletUoW interface {
		TxManager
		WalletRepoFactory
	}

	// WalletUoWFactory creates new wallet unit of work instances.
	WalletUoWFactory interface {
		Create() WalletUoW
	}

	// SettlementUoW manages transactions that touch an order and the merchant
	// wallet as one atomic unit: dispatch debits the wallet while moving the
	// order out of its initial status.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   walletRepo := uow.WalletRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	SettlementUoW interface {
		TxManager
		OrderRepoFactory
		WalletRepoFactory
	}

	// SettlementUoWFactory creates new settlement unit of work instances.
	SettlementUoWFactory interface {
		Create() SettlementUoW
	}

	// IncidentUoW manages transactions for the non-delivery workflow, which
	// reads and writes incidents and requests order status changes.
	IncidentUoW interface {
		TxManager
		OrderRepoFactory
		IncidentRepoFactory
	}

	// IncidentUoWFactory creates new incident unit of work instances.
	IncidentUoWFactory interface {
		Create() IncidentUoW
	}

	// DisputeUoW manages transactions for the weight-dispute workflow, which
	// coordinates disputes, orders and wallet debits.
	DisputeUoW interface {
		TxManager
		OrderRepoFactory
		WalletRepoFactory
		DisputeRepoFactory
	}

	// DisputeUoWFactory creates new dispute unit of work instances.
	DisputeUoWFactory interface {
		Create() DisputeUoW
	}
)
