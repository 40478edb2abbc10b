package purchaseservice

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ShiraazMoollatjie/goluhn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/taxipark/robocab/internal/domain"
	"github.com/taxipark/robocab/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockPlayerRepo, *MockVehicleRepo, *MockGarageRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlayerRepo := NewMockPlayerRepo(ctrl)
	mockVehicleRepo := NewMockVehicleRepo(ctrl)
	mockGarageRepo := NewMockGarageRepo(ctrl)
	mockTxManager := pg.NewMockTXManager(ctrl)
	service := New(mockPlayerRepo, mockVehicleRepo, mockGarageRepo, mockTxManager)

	return service, mockPlayerRepo, mockVehicleRepo, mockGarageRepo, mockTxManager
}

// decimalEq matches decimal arguments by value, not representation.
func decimalEq(want string) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		d, ok := x.(decimal.Decimal)
		return ok && d.Equal(decimal.RequireFromString(want))
	})
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
}

func TestService_PurchaseVehicle(t *testing.T) {
	service, mockPlayerRepo, mockVehicleRepo, mockGarageRepo, mockTxManager := NewMock(t)
	ctx := context.Background()
	passthroughTx(mockTxManager)

	purchase := VehiclePurchase{
		Type:   domain.RobocabVehicleType,
		Cost:   decimal.RequireFromString("50000.00"),
		Status: domain.OrderedVehicleStatus,
		Lat:    55.75,
		Lng:    37.62,
	}

	tests := []struct {
		name      string
		mockSetup func()
		wantErr   error
	}{
		{
			name: "Successful purchase debits cost",
			mockSetup: func() {
				mockPlayerRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).
					Return(&domain.Player{ID: 1, Balance: decimal.RequireFromString("60000.00")}, nil)
				mockGarageRepo.EXPECT().SumCapacityByPlayerID(gomock.Any(), 1).Return(1, nil)
				mockVehicleRepo.EXPECT().CountByPlayerID(gomock.Any(), 1).Return(0, nil)
				mockVehicleRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, vehicle *domain.Vehicle) error {
						assert.NoError(t, goluhn.Validate(vehicle.FleetCode))
						assert.Equal(t, domain.OrderedVehicleStatus, vehicle.Status)
						assert.NotNil(t, vehicle.DeliveryAt)
						assert.Equal(t, float64(100), vehicle.Battery)
						vehicle.ID = 7
						return nil
					},
				)
				mockPlayerRepo.EXPECT().
					UpdateBalance(gomock.Any(), 1, decimalEq("10000.00")).
					Return(nil)
			},
		},
		{
			name: "Player not found",
			mockSetup: func() {
				mockPlayerRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(nil, nil)
			},
			wantErr: ErrPlayerNotFound,
		},
		{
			name: "Insufficient funds leaves balance untouched",
			mockSetup: func() {
				mockPlayerRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).
					Return(&domain.Player{ID: 1, Balance: decimal.RequireFromString("49999.99")}, nil)
			},
			wantErr: ErrInsufficientFunds,
		},
		{
			name: "No free slots",
			mockSetup: func() {
				mockPlayerRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).
					Return(&domain.Player{ID: 1, Balance: decimal.RequireFromString("60000.00")}, nil)
				mockGarageRepo.EXPECT().SumCapacityByPlayerID(gomock.Any(), 1).Return(2, nil)
				mockVehicleRepo.EXPECT().CountByPlayerID(gomock.Any(), 1).Return(2, nil)
			},
			wantErr: ErrNoFreeSlots,
		},
		{
			name: "Insufficient funds wins over missing slots",
			mockSetup: func() {
				// Both conditions fail; funds are checked first.
				mockPlayerRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).
					Return(&domain.Player{ID: 1, Balance: decimal.RequireFromString("10000.00")}, nil)
			},
			wantErr: ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			vehicle, err := service.PurchaseVehicle(ctx, 1, purchase)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, vehicle)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, vehicle)
				assert.Equal(t, 7, vehicle.ID)
			}
		})
	}
}

// fakePurchaseState backs the concurrency test with a shared balance, slot
// capacity and vehicle count guarded by the transaction mutex.
type fakePurchaseState struct {
	mu       sync.Mutex
	balance  decimal.Decimal
	capacity int
	vehicles int
}

type fakeTxManager struct {
	state *fakePurchaseState
}

func (f *fakeTxManager) Begin(ctx context.Context, fn func(ctx context.Context) error) error {
	f.state.mu.Lock()
	defer f.state.mu.Unlock()
	return fn(ctx)
}

type fakePlayerRepo struct {
	state *fakePurchaseState
}

func (f *fakePlayerRepo) FindByID(_ context.Context, playerID int) (*domain.Player, error) {
	return &domain.Player{ID: playerID, Balance: f.state.balance}, nil
}

func (f *fakePlayerRepo) FindByIDForUpdate(_ context.Context, playerID int) (*domain.Player, error) {
	return &domain.Player{ID: playerID, Balance: f.state.balance}, nil
}

func (f *fakePlayerRepo) UpdateBalance(_ context.Context, _ int, balance decimal.Decimal) error {
	f.state.balance = balance
	return nil
}

func (f *fakePlayerRepo) ListIDs(context.Context) ([]int, error) {
	return []int{1}, nil
}

type fakeVehicleRepo struct {
	state *fakePurchaseState
}

func (f *fakeVehicleRepo) Save(_ context.Context, vehicle *domain.Vehicle) error {
	f.state.vehicles++
	vehicle.ID = f.state.vehicles
	return nil
}

func (f *fakeVehicleRepo) CountByPlayerID(context.Context, int) (int, error) {
	return f.state.vehicles, nil
}

type fakeGarageRepo struct {
	state *fakePurchaseState
}

func (f *fakeGarageRepo) Save(context.Context, *domain.Garage) error { return nil }

func (f *fakeGarageRepo) FindByPlayerID(context.Context, int) ([]domain.Garage, error) {
	return nil, nil
}

func (f *fakeGarageRepo) SumCapacityByPlayerID(context.Context, int) (int, error) {
	return f.state.capacity, nil
}

func (f *fakeGarageRepo) SumMonthlyCostByPlayerID(context.Context, int) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

// Two concurrent purchases race for the last slot; the transaction serializes
// them, so exactly one succeeds and the balance is debited exactly once.
func TestService_PurchaseVehicle_ConcurrentLastSlot(t *testing.T) {
	state := &fakePurchaseState{
		balance:  decimal.RequireFromString("200000.00"),
		capacity: 1,
	}
	service := New(
		&fakePlayerRepo{state: state},
		&fakeVehicleRepo{state: state},
		&fakeGarageRepo{state: state},
		&fakeTxManager{state: state},
	)

	purchase := VehiclePurchase{
		Type:   domain.StandardVehicleType,
		Cost:   decimal.RequireFromString("50000.00"),
		Status: domain.ParkedVehicleStatus,
		Lat:    55.75,
		Lng:    37.62,
	}

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.PurchaseVehicle(context.Background(), 1, purchase)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, rejected int
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrNoFreeSlots)
			rejected++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, rejected)
	assert.Equal(t, 1, state.vehicles)
	assert.True(t, state.balance.Equal(decimal.RequireFromString("150000.00")),
		"balance must be debited exactly once, got %s", state.balance)
}

// Walks a fresh player through the opening moves: buy a one-slot lot, fill it
// with a vehicle, then fail the next vehicle on funds before slots are even
// consulted.
func TestService_Purchase_OpeningScenario(t *testing.T) {
	state := &fakePurchaseState{balance: decimal.RequireFromString("60300.00")}
	service := New(
		&fakePlayerRepo{state: state},
		&fakeVehicleRepo{state: state},
		&fakeGarageRepo{state: state},
		&fakeTxManager{state: state},
	)
	ctx := context.Background()

	garage, err := service.PurchaseGarage(ctx, 1, GaragePurchase{
		Name:        "Стоянка у вокзала",
		Lat:         55.77,
		Lng:         37.65,
		Capacity:    1,
		Kind:        domain.LotKind,
		CostMonthly: decimal.RequireFromString("300.00"),
	})
	assert.NoError(t, err)
	assert.NotNil(t, garage)
	state.capacity = 1
	assert.True(t, state.balance.Equal(decimal.RequireFromString("60000.00")))

	vehicle, err := service.PurchaseVehicle(ctx, 1, VehiclePurchase{
		Type:   domain.StandardVehicleType,
		Cost:   decimal.RequireFromString("50000.00"),
		Status: domain.ParkedVehicleStatus,
		Lat:    55.75,
		Lng:    37.62,
	})
	assert.NoError(t, err)
	assert.NotNil(t, vehicle)
	assert.True(t, state.balance.Equal(decimal.RequireFromString("10000.00")))

	summary, err := service.GetSlotSummary(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, 0, summary.AvailableSlots)

	_, err = service.PurchaseVehicle(ctx, 1, VehiclePurchase{
		Type:   domain.StandardVehicleType,
		Cost:   decimal.RequireFromString("35000.00"),
		Status: domain.ParkedVehicleStatus,
		Lat:    55.75,
		Lng:    37.62,
	})
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.True(t, state.balance.Equal(decimal.RequireFromString("10000.00")))
	assert.Equal(t, 1, state.vehicles)
}

func TestService_PurchaseGarage(t *testing.T) {
	service, mockPlayerRepo, _, mockGarageRepo, mockTxManager := NewMock(t)
	ctx := context.Background()
	passthroughTx(mockTxManager)

	purchase := GaragePurchase{
		Name:        "Центральный гараж",
		Lat:         55.75,
		Lng:         37.62,
		Capacity:    4,
		Kind:        domain.GarageKind,
		CostMonthly: decimal.RequireFromString("1200.00"),
	}

	tests := []struct {
		name      string
		mockSetup func()
		wantErr   error
	}{
		{
			name: "Successful purchase debits first month",
			mockSetup: func() {
				mockPlayerRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).
					Return(&domain.Player{ID: 1, Balance: decimal.RequireFromString("5000.00")}, nil)
				mockGarageRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, garage *domain.Garage) error {
						assert.Equal(t, 4, garage.Capacity)
						assert.Equal(t, domain.GarageKind, garage.Kind)
						garage.ID = 3
						return nil
					},
				)
				mockPlayerRepo.EXPECT().
					UpdateBalance(gomock.Any(), 1, decimalEq("3800.00")).
					Return(nil)
			},
		},
		{
			name: "Insufficient funds",
			mockSetup: func() {
				mockPlayerRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).
					Return(&domain.Player{ID: 1, Balance: decimal.RequireFromString("1000.00")}, nil)
			},
			wantErr: ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			garage, err := service.PurchaseGarage(ctx, 1, purchase)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, garage)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 3, garage.ID)
			}
		})
	}
}

func TestService_GetPlayer(t *testing.T) {
	service, mockPlayerRepo, _, _, _ := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		mockSetup func()
		wantErr   error
	}{
		{
			name: "Returns player",
			mockSetup: func() {
				mockPlayerRepo.EXPECT().FindByID(ctx, 1).
					Return(&domain.Player{ID: 1, Username: "fleetboss"}, nil)
			},
		},
		{
			name: "Missing player",
			mockSetup: func() {
				mockPlayerRepo.EXPECT().FindByID(ctx, 1).Return(nil, nil)
			},
			wantErr: ErrPlayerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			player, err := service.GetPlayer(ctx, 1)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, player)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "fleetboss", player.Username)
			}
		})
	}
}

func TestService_GetSlotSummary(t *testing.T) {
	service, mockPlayerRepo, mockVehicleRepo, mockGarageRepo, _ := NewMock(t)
	ctx := context.Background()

	mockPlayerRepo.EXPECT().FindByID(ctx, 1).Return(&domain.Player{ID: 1}, nil)
	mockGarageRepo.EXPECT().SumCapacityByPlayerID(ctx, 1).Return(5, nil)
	mockVehicleRepo.EXPECT().CountByPlayerID(ctx, 1).Return(3, nil)

	summary, err := service.GetSlotSummary(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, &domain.SlotSummary{TotalSlots: 5, UsedSlots: 3, AvailableSlots: 2}, summary)
}

func TestService_AssessUpkeep(t *testing.T) {
	service, mockPlayerRepo, _, mockGarageRepo, mockTxManager := NewMock(t)
	ctx := context.Background()
	passthroughTx(mockTxManager)

	tests := []struct {
		name      string
		mockSetup func()
	}{
		{
			name: "Debits summed upkeep",
			mockSetup: func() {
				mockPlayerRepo.EXPECT().ListIDs(ctx).Return([]int{1}, nil)
				mockPlayerRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).
					Return(&domain.Player{ID: 1, Balance: decimal.RequireFromString("10000.00")}, nil)
				mockGarageRepo.EXPECT().SumMonthlyCostByPlayerID(gomock.Any(), 1).
					Return(decimal.RequireFromString("1500.00"), nil)
				mockPlayerRepo.EXPECT().
					UpdateBalance(gomock.Any(), 1, decimalEq("8500.00")).
					Return(nil)
			},
		},
		{
			name: "Caps debit at balance",
			mockSetup: func() {
				mockPlayerRepo.EXPECT().ListIDs(ctx).Return([]int{1}, nil)
				mockPlayerRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).
					Return(&domain.Player{ID: 1, Balance: decimal.RequireFromString("200.00")}, nil)
				mockGarageRepo.EXPECT().SumMonthlyCostByPlayerID(gomock.Any(), 1).
					Return(decimal.RequireFromString("1500.00"), nil)
				mockPlayerRepo.EXPECT().
					UpdateBalance(gomock.Any(), 1, decimalEq("0.00")).
					Return(nil)
			},
		},
		{
			name: "Skips players without garages",
			mockSetup: func() {
				mockPlayerRepo.EXPECT().ListIDs(ctx).Return([]int{1}, nil)
				mockPlayerRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).
					Return(&domain.Player{ID: 1, Balance: decimal.RequireFromString("10000.00")}, nil)
				mockGarageRepo.EXPECT().SumMonthlyCostByPlayerID(gomock.Any(), 1).
					Return(decimal.Zero, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := service.AssessUpkeep(ctx)
			assert.NoError(t, err)
		})
	}
}

func TestService_AssessUpkeep_ListError(t *testing.T) {
	service, mockPlayerRepo, _, _, _ := NewMock(t)
	ctx := context.Background()

	mockPlayerRepo.EXPECT().ListIDs(ctx).Return(nil, errors.New("database error"))

	err := service.AssessUpkeep(ctx)
	assert.Error(t, err)
}
