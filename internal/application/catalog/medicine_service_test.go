package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/openpharm/backend/internal/domain/catalog"
	"github.com/openpharm/backend/internal/domain/shared"
)

// MockMedicineRepository is a mock implementation of MedicineRepository
type MockMedicineRepository struct {
	mock.Mock
}

func (m *MockMedicineRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*catalog.Medicine, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Medicine), args.Error(1)
}

func (m *MockMedicineRepository) FindByBarcode(ctx context.Context, ownerID uuid.UUID, barcode string) (*catalog.Medicine, error) {
	args := m.Called(ctx, ownerID, barcode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Medicine), args.Error(1)
}

func (m *MockMedicineRepository) FindAll(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]catalog.Medicine, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).([]catalog.Medicine), args.Error(1)
}

func (m *MockMedicineRepository) FindLowStock(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]catalog.Medicine, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).([]catalog.Medicine), args.Error(1)
}

func (m *MockMedicineRepository) Save(ctx context.Context, medicine *catalog.Medicine) error {
	args := m.Called(ctx, medicine)
	return args.Error(0)
}

func (m *MockMedicineRepository) DeductStock(ctx context.Context, ownerID, id uuid.UUID, quantity int) error {
	args := m.Called(ctx, ownerID, id, quantity)
	return args.Error(0)
}

func (m *MockMedicineRepository) AddStock(ctx context.Context, ownerID, id uuid.UUID, quantity int) error {
	args := m.Called(ctx, ownerID, id, quantity)
	return args.Error(0)
}

func (m *MockMedicineRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *MockMedicineRepository) Count(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func TestMedicineServiceAdd(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("creates new medicine when barcode is unknown", func(t *testing.T) {
		repo := new(MockMedicineRepository)
		service := NewMedicineService(repo)

		repo.On("FindByBarcode", ctx, ownerID, "P001").Return(nil, shared.ErrNotFound)
		repo.On("Save", ctx, mock.AnythingOfType("*catalog.Medicine")).Return(nil)

		resp, err := service.Add(ctx, ownerID, AddMedicineRequest{
			BrandName:    "Paracetamol",
			GenericName:  "Acetaminophen",
			Unit:         "tablet",
			Barcode:      "P001",
			Stock:        20,
			SalePrice:    decimal.NewFromInt(5),
			ReorderLevel: 10,
		})
		require.NoError(t, err)

		assert.Equal(t, "Paracetamol", resp.BrandName)
		assert.Equal(t, 20, resp.Stock)
		assert.True(t, resp.SalePrice.Equal(decimal.NewFromInt(5)))
		repo.AssertExpectations(t)
	})

	t.Run("merges stock when barcode exists", func(t *testing.T) {
		repo := new(MockMedicineRepository)
		service := NewMedicineService(repo)

		existing, err := catalog.NewMedicine(ownerID, "Paracetamol", "P001", catalog.UnitTablet)
		require.NoError(t, err)
		require.NoError(t, existing.AddStock(10))
		require.NoError(t, existing.SetSalePrice(decimal.NewFromInt(5)))

		repo.On("FindByBarcode", ctx, ownerID, "P001").Return(existing, nil)
		repo.On("Save", ctx, existing).Return(nil)

		// submitted fields other than stock must be discarded
		resp, err := service.Add(ctx, ownerID, AddMedicineRequest{
			BrandName: "Completely Different Name",
			Unit:      "syrup",
			Barcode:   "P001",
			Stock:     15,
			SalePrice: decimal.NewFromInt(99),
		})
		require.NoError(t, err)

		assert.Equal(t, 25, resp.Stock)
		assert.Equal(t, "Paracetamol", resp.BrandName)
		assert.Equal(t, "tablet", resp.Unit)
		assert.True(t, resp.SalePrice.Equal(decimal.NewFromInt(5)))
		repo.AssertExpectations(t)
	})

	t.Run("merge is additive across repeated adds", func(t *testing.T) {
		repo := new(MockMedicineRepository)
		service := NewMedicineService(repo)

		existing, err := catalog.NewMedicine(ownerID, "Paracetamol", "P001", catalog.UnitTablet)
		require.NoError(t, err)

		repo.On("FindByBarcode", ctx, ownerID, "P001").Return(existing, nil)
		repo.On("Save", ctx, existing).Return(nil)

		for i := 0; i < 2; i++ {
			_, err = service.Add(ctx, ownerID, AddMedicineRequest{
				BrandName: "Paracetamol", Unit: "tablet", Barcode: "P001", Stock: 10,
			})
			require.NoError(t, err)
		}

		assert.Equal(t, 20, existing.Stock)
	})
}

func TestMedicineServiceGetByBarcode(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("empty barcode rejected without store access", func(t *testing.T) {
		repo := new(MockMedicineRepository)
		service := NewMedicineService(repo)

		_, err := service.GetByBarcode(ctx, ownerID, "")
		require.Error(t, err)
		repo.AssertNotCalled(t, "FindByBarcode", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown barcode surfaces not found", func(t *testing.T) {
		repo := new(MockMedicineRepository)
		service := NewMedicineService(repo)

		repo.On("FindByBarcode", ctx, ownerID, "NOPE").Return(nil, shared.ErrNotFound)

		_, err := service.GetByBarcode(ctx, ownerID, "NOPE")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestMedicineServiceUpdate(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	repo := new(MockMedicineRepository)
	service := NewMedicineService(repo)

	medicine, err := catalog.NewMedicine(ownerID, "Paracetamol", "P001", catalog.UnitTablet)
	require.NoError(t, err)
	require.NoError(t, medicine.AddStock(30))

	repo.On("FindByID", ctx, ownerID, medicine.ID).Return(medicine, nil)
	repo.On("Save", ctx, medicine).Return(nil)

	strength := "500mg"
	price := decimal.NewFromFloat(5.5)
	resp, err := service.Update(ctx, ownerID, medicine.ID, UpdateMedicineRequest{
		Strength:  &strength,
		SalePrice: &price,
	})
	require.NoError(t, err)

	assert.Equal(t, "500mg", resp.Strength)
	assert.True(t, resp.SalePrice.Equal(price))
	// stock never moves through update
	assert.Equal(t, 30, resp.Stock)
}
