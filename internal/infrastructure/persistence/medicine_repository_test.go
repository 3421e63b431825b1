package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/openpharm/backend/internal/domain/catalog"
	"github.com/openpharm/backend/internal/domain/shared"
)

// setupMedicineTestDB creates an in-memory SQLite database for testing
func setupMedicineTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&catalog.Medicine{})
	require.NoError(t, err)

	return db
}

func newTestMedicine(t *testing.T, ownerID uuid.UUID, brandName, barcode string, stock int) *catalog.Medicine {
	t.Helper()
	medicine, err := catalog.NewMedicine(ownerID, brandName, barcode, catalog.UnitTablet)
	require.NoError(t, err)
	medicine.Stock = stock
	return medicine
}

func TestGormMedicineRepository_FindByBarcode(t *testing.T) {
	db := setupMedicineTestDB(t)
	repo := NewGormMedicineRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()
	medicine := newTestMedicine(t, ownerID, "Paracetamol", "PARA-500", 20)
	require.NoError(t, repo.Save(ctx, medicine))

	t.Run("finds medicine by barcode", func(t *testing.T) {
		found, err := repo.FindByBarcode(ctx, ownerID, "PARA-500")

		require.NoError(t, err)
		assert.Equal(t, medicine.ID, found.ID)
		assert.Equal(t, "Paracetamol", found.BrandName)
	})

	t.Run("returns not found for unknown barcode", func(t *testing.T) {
		_, err := repo.FindByBarcode(ctx, ownerID, "NOPE-000")

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("hides another owner's barcode", func(t *testing.T) {
		_, err := repo.FindByBarcode(ctx, uuid.New(), "PARA-500")

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormMedicineRepository_BarcodeScopedPerOwner(t *testing.T) {
	db := setupMedicineTestDB(t)
	repo := NewGormMedicineRepository(db)
	ctx := context.Background()

	firstOwner := uuid.New()
	secondOwner := uuid.New()
	require.NoError(t, repo.Save(ctx, newTestMedicine(t, firstOwner, "Paracetamol", "P001", 10)))

	t.Run("allows the same barcode under another owner", func(t *testing.T) {
		err := repo.Save(ctx, newTestMedicine(t, secondOwner, "Paracetamol", "P001", 10))

		assert.NoError(t, err)
	})

	t.Run("rejects a duplicate barcode for the same owner", func(t *testing.T) {
		err := repo.Save(ctx, newTestMedicine(t, firstOwner, "Paracetamol XR", "P001", 10))

		assert.Error(t, err)
	})
}

func TestGormMedicineRepository_DeductStock(t *testing.T) {
	db := setupMedicineTestDB(t)
	repo := NewGormMedicineRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()

	t.Run("deducts when stock covers the request", func(t *testing.T) {
		medicine := newTestMedicine(t, ownerID, "Amoxicillin", "AMOX-250", 10)
		require.NoError(t, repo.Save(ctx, medicine))

		err := repo.DeductStock(ctx, ownerID, medicine.ID, 7)

		require.NoError(t, err)
		reloaded, err := repo.FindByID(ctx, ownerID, medicine.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, reloaded.Stock)
	})

	t.Run("rejects deduction exceeding stock", func(t *testing.T) {
		medicine := newTestMedicine(t, ownerID, "Cetirizine", "CET-10", 2)
		require.NoError(t, repo.Save(ctx, medicine))

		err := repo.DeductStock(ctx, ownerID, medicine.ID, 3)

		assert.ErrorIs(t, err, shared.ErrInsufficientStock)
		reloaded, findErr := repo.FindByID(ctx, ownerID, medicine.ID)
		require.NoError(t, findErr)
		assert.Equal(t, 2, reloaded.Stock)
	})

	t.Run("reports missing medicine as not found", func(t *testing.T) {
		err := repo.DeductStock(ctx, ownerID, uuid.New(), 1)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormMedicineRepository_AddStock(t *testing.T) {
	db := setupMedicineTestDB(t)
	repo := NewGormMedicineRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()

	t.Run("increments stock", func(t *testing.T) {
		medicine := newTestMedicine(t, ownerID, "Ibuprofen", "IBU-400", 5)
		require.NoError(t, repo.Save(ctx, medicine))

		err := repo.AddStock(ctx, ownerID, medicine.ID, 12)

		require.NoError(t, err)
		reloaded, err := repo.FindByID(ctx, ownerID, medicine.ID)
		require.NoError(t, err)
		assert.Equal(t, 17, reloaded.Stock)
	})

	t.Run("reports missing medicine as not found", func(t *testing.T) {
		err := repo.AddStock(ctx, ownerID, uuid.New(), 1)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormMedicineRepository_FindLowStock(t *testing.T) {
	db := setupMedicineTestDB(t)
	repo := NewGormMedicineRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()

	low := newTestMedicine(t, ownerID, "Azithromycin", "AZI-500", 3)
	low.ReorderLevel = 5
	healthy := newTestMedicine(t, ownerID, "Omeprazole", "OME-20", 50)
	healthy.ReorderLevel = 5
	untracked := newTestMedicine(t, ownerID, "Vitamin C", "VITC-500", 0)

	require.NoError(t, repo.Save(ctx, low))
	require.NoError(t, repo.Save(ctx, healthy))
	require.NoError(t, repo.Save(ctx, untracked))

	medicines, err := repo.FindLowStock(ctx, ownerID, shared.Filter{})

	require.NoError(t, err)
	require.Len(t, medicines, 1)
	assert.Equal(t, low.ID, medicines[0].ID)
}

func TestGormMedicineRepository_FindAll(t *testing.T) {
	db := setupMedicineTestDB(t)
	repo := NewGormMedicineRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()
	require.NoError(t, repo.Save(ctx, newTestMedicine(t, ownerID, "Zincovit", "ZIN-1", 1)))
	require.NoError(t, repo.Save(ctx, newTestMedicine(t, ownerID, "Aspirin", "ASP-75", 1)))
	require.NoError(t, repo.Save(ctx, newTestMedicine(t, uuid.New(), "Foreign", "FOR-1", 1)))

	t.Run("lists owned medicines ordered by brand name", func(t *testing.T) {
		medicines, err := repo.FindAll(ctx, ownerID, shared.Filter{})

		require.NoError(t, err)
		require.Len(t, medicines, 2)
		assert.Equal(t, "Aspirin", medicines[0].BrandName)
		assert.Equal(t, "Zincovit", medicines[1].BrandName)
	})

	t.Run("paginates results", func(t *testing.T) {
		medicines, err := repo.FindAll(ctx, ownerID, shared.Filter{Page: 2, PageSize: 1})

		require.NoError(t, err)
		require.Len(t, medicines, 1)
		assert.Equal(t, "Zincovit", medicines[0].BrandName)
	})

	t.Run("counts owned medicines", func(t *testing.T) {
		count, err := repo.Count(ctx, ownerID, shared.Filter{})

		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}
