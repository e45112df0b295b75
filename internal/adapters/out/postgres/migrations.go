package postgres

import (
	"shipdesk/internal/adapters/out/postgres/disputerepo"
	"shipdesk/internal/adapters/out/postgres/ndrrepo"
	"shipdesk/internal/adapters/out/postgres/orderrepo"
	"shipdesk/internal/adapters/out/postgres/walletrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the database schema for every aggregate the
// service persists.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ProductDTO{},
		&walletrepo.AccountDTO{},
		&walletrepo.TransactionDTO{},
		&ndrrepo.IncidentDTO{},
		&disputerepo.DisputeDTO{},
	)
}
