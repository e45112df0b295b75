package commands

import (
	"context"
	"errors"
	"time"

	"shipdesk/internal/core/domain/model/order"
	"shipdesk/internal/pkg/errs"
)

// ErrOrderAlreadyExists is returned when the order reference is already taken.
var ErrOrderAlreadyExists = errors.New("order already exists")

// CreateOrderCommandHandler handles the business logic for order creation.
// New orders start without a courier assignment and wait for dispatch.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Rejects duplicate references; uses a transaction to ensure the order is
// properly persisted or rolled back on error.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	_, err := orderRepo.Get(ctx, cmd.Ref())
	if err == nil {
		return ErrOrderAlreadyExists
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.Ref(),
		cmd.MerchantID(),
		cmd.DeclaredValue(),
		cmd.Payment(),
		cmd.Insured(),
		cmd.Parcel(),
		cmd.Products(),
		cmd.PickupLocation(),
		cmd.Destination(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
