package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shipdesk/internal/core/application/usecases/commands"
	"shipdesk/internal/core/domain/model/dispute"
	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/ndr"
	"shipdesk/internal/core/domain/model/order"
	"shipdesk/internal/core/domain/model/wallet"
	"shipdesk/internal/core/domain/services"
	"shipdesk/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, ref string) (*order.Order, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, ref string) (*order.Order, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) AWBExists(ctx context.Context, awb string) (bool, error) {
	args := m.Called(ctx, awb)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, ref string) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

type MockWalletRepository struct{ mock.Mock }

func (m *MockWalletRepository) AddAccount(ctx context.Context, a *wallet.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockWalletRepository) UpdateAccount(ctx context.Context, a *wallet.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockWalletRepository) GetAccount(ctx context.Context, id kernel.UUID) (*wallet.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wallet.Account), args.Error(1)
}

func (m *MockWalletRepository) GetAccountForUpdate(ctx context.Context, id kernel.UUID) (*wallet.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wallet.Account), args.Error(1)
}

func (m *MockWalletRepository) AddTransaction(ctx context.Context, tx wallet.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

type MockIncidentRepository struct{ mock.Mock }

func (m *MockIncidentRepository) Add(ctx context.Context, i *ndr.Incident) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockIncidentRepository) Update(ctx context.Context, i *ndr.Incident) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockIncidentRepository) Get(ctx context.Context, id kernel.UUID) (*ndr.Incident, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ndr.Incident), args.Error(1)
}

func (m *MockIncidentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*ndr.Incident, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ndr.Incident), args.Error(1)
}

func (m *MockIncidentRepository) GetOpenByOrderRef(ctx context.Context, orderRef string) (*ndr.Incident, error) {
	args := m.Called(ctx, orderRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ndr.Incident), args.Error(1)
}

type MockDisputeRepository struct{ mock.Mock }

func (m *MockDisputeRepository) Add(ctx context.Context, d *dispute.Dispute) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDisputeRepository) Update(ctx context.Context, d *dispute.Dispute) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDisputeRepository) Get(ctx context.Context, id kernel.UUID) (*dispute.Dispute, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dispute.Dispute), args.Error(1)
}

func (m *MockDisputeRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*dispute.Dispute, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dispute.Dispute), args.Error(1)
}

func (m *MockDisputeRepository) GetPendingByOrderRef(ctx context.Context, orderRef string) (*dispute.Dispute, error) {
	args := m.Called(ctx, orderRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dispute.Dispute), args.Error(1)
}

func (m *MockDisputeRepository) GetAllExpired(ctx context.Context, now time.Time) ([]*dispute.Dispute, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dispute.Dispute), args.Error(1)
}

// MockUoW satisfies every unit of work shape the handlers use; tests stub
// only the repositories the handler under test asks for.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) WalletRepository() ports.WalletRepository {
	args := m.Called()
	return args.Get(0).(ports.WalletRepository)
}

func (m *MockUoW) IncidentRepository() ports.IncidentRepository {
	args := m.Called()
	return args.Get(0).(ports.IncidentRepository)
}

func (m *MockUoW) DisputeRepository() ports.DisputeRepository {
	args := m.Called()
	return args.Get(0).(ports.DisputeRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockWalletUoWFactory struct{ mock.Mock }

func (m *MockWalletUoWFactory) Create() commands.WalletUoW {
	args := m.Called()
	return args.Get(0).(commands.WalletUoW)
}

type MockSettlementUoWFactory struct{ mock.Mock }

func (m *MockSettlementUoWFactory) Create() commands.SettlementUoW {
	args := m.Called()
	return args.Get(0).(commands.SettlementUoW)
}

type MockIncidentUoWFactory struct{ mock.Mock }

func (m *MockIncidentUoWFactory) Create() commands.IncidentUoW {
	args := m.Called()
	return args.Get(0).(commands.IncidentUoW)
}

type MockDisputeUoWFactory struct{ mock.Mock }

func (m *MockDisputeUoWFactory) Create() commands.DisputeUoW {
	args := m.Called()
	return args.Get(0).(commands.DisputeUoW)
}

type MockRateCard struct{ mock.Mock }

func (m *MockRateCard) Get(courierID string) (services.CourierRate, error) {
	args := m.Called(courierID)
	return args.Get(0).(services.CourierRate), args.Error(1)
}

func (m *MockRateCard) All() []services.CourierRate {
	args := m.Called()
	return args.Get(0).([]services.CourierRate)
}

// Test fixtures shared across handler tests.

func newTestOrder(t *testing.T, ref string, merchantID kernel.UUID, method order.PaymentMethod) *order.Order {
	t.Helper()

	destination, err := order.NewDestination(
		"Rahul Kumar", "9876543210", "12 MG Road, Bengaluru", "560001", "India")
	require.NoError(t, err)
	parcel, err := order.NewPackage(decimal.NewFromFloat(0.5), 10, 10, 10)
	require.NoError(t, err)
	line, err := order.NewProductLine("Commercial Goods", "CG-01", 1, kernel.MoneyFromFloat(1000))
	require.NoError(t, err)

	o, err := order.NewOrder(
		ref, merchantID, kernel.MoneyFromFloat(1000), method, false,
		parcel, []order.ProductLine{line}, "MAIN HUB", destination, time.Now())
	require.NoError(t, err)
	return o
}

func dispatchTestOrder(t *testing.T, o *order.Order) {
	t.Helper()

	charges, err := order.NewChargeBreakdown(
		kernel.MoneyFromFloat(85), kernel.ZeroMoney(), kernel.MoneyFromFloat(50))
	require.NoError(t, err)
	assignment, err := order.NewCourierAssignment(
		"c3", "DELHIVERY EXPRESS AIR", order.ModeAir, "1123456789", charges)
	require.NoError(t, err)
	require.NoError(t, o.AssignCourier(assignment, time.Now()))
}

func moveToStatus(t *testing.T, o *order.Order, target order.Status) {
	t.Helper()

	now := time.Now()
	steps := map[order.Status]func(time.Time) error{
		order.Manifest:        o.MarkManifest,
		order.PickupScheduled: o.SchedulePickup,
		order.InTransit:       o.ConfirmPickup,
		order.OutForDelivery:  o.MarkOutForDelivery,
		order.Delivered:       o.MarkDelivered,
	}
	for _, status := range []order.Status{
		order.Manifest, order.PickupScheduled, order.InTransit, order.OutForDelivery, order.Delivered,
	} {
		if o.Status() == target {
			return
		}
		require.NoError(t, steps[status](now))
	}
	require.Equal(t, target, o.Status())
}

func newTestAccount(t *testing.T, merchantID kernel.UUID, balance float64) *wallet.Account {
	t.Helper()

	account, err := wallet.RestoreAccount(merchantID, kernel.MoneyFromFloat(balance))
	require.NoError(t, err)
	return account
}

func delhiveryAirRate() services.CourierRate {
	return services.CourierRate{
		ID:        "c3",
		Name:      "DELHIVERY EXPRESS AIR",
		Mode:      order.ModeAir,
		Rate:      kernel.MoneyFromFloat(85),
		AWBPrefix: "1",
	}
}
