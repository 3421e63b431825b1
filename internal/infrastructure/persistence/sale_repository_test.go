package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/openpharm/backend/internal/domain/shared"
	"github.com/openpharm/backend/internal/domain/trade"
)

// setupSaleTestDB creates an in-memory SQLite database for testing
func setupSaleTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&trade.Sale{}, &trade.SaleItem{})
	require.NoError(t, err)

	return db
}

func newTestSale(t *testing.T, ownerID uuid.UUID, customerName string, itemCount int) *trade.Sale {
	t.Helper()
	sale := trade.NewSale(ownerID, customerName)
	sale.SoldByID = ownerID
	for i := 0; i < itemCount; i++ {
		batchID := uuid.New()
		err := sale.AddItem(uuid.New(), &batchID, i+1, decimal.NewFromInt(10))
		require.NoError(t, err)
	}
	return sale
}

func TestGormSaleRepository_SaveAndFindByID(t *testing.T) {
	db := setupSaleTestDB(t)
	repo := NewGormSaleRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()

	t.Run("round-trips a sale with its line items", func(t *testing.T) {
		sale := newTestSale(t, ownerID, "Walk-in", 2)
		require.NoError(t, repo.Save(ctx, sale))

		found, err := repo.FindByID(ctx, ownerID, sale.ID)

		require.NoError(t, err)
		assert.Equal(t, "Walk-in", found.CustomerName)
		require.Len(t, found.Items, 2)
		assert.True(t, sale.GrandTotal.Equal(found.GrandTotal))
	})

	t.Run("hides another owner's sale", func(t *testing.T) {
		sale := newTestSale(t, ownerID, "Walk-in", 1)
		require.NoError(t, repo.Save(ctx, sale))

		_, err := repo.FindByID(ctx, uuid.New(), sale.ID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormSaleRepository_FindAll(t *testing.T) {
	db := setupSaleTestDB(t)
	repo := NewGormSaleRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()
	require.NoError(t, repo.Save(ctx, newTestSale(t, ownerID, "Alice", 1)))
	require.NoError(t, repo.Save(ctx, newTestSale(t, ownerID, "Bob", 2)))
	require.NoError(t, repo.Save(ctx, newTestSale(t, uuid.New(), "Foreign", 1)))

	sales, err := repo.FindAll(ctx, ownerID, shared.Filter{})

	require.NoError(t, err)
	require.Len(t, sales, 2)
	for _, sale := range sales {
		assert.NotEmpty(t, sale.Items)
	}

	count, err := repo.Count(ctx, ownerID, shared.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestGormSaleRepository_Delete(t *testing.T) {
	db := setupSaleTestDB(t)
	repo := NewGormSaleRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()

	t.Run("deletes the sale and its line items", func(t *testing.T) {
		sale := newTestSale(t, ownerID, "Walk-in", 2)
		require.NoError(t, repo.Save(ctx, sale))

		require.NoError(t, repo.Delete(ctx, ownerID, sale.ID))

		_, err := repo.FindByID(ctx, ownerID, sale.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		var orphaned int64
		require.NoError(t, db.Model(&trade.SaleItem{}).Where("sale_id = ?", sale.ID).Count(&orphaned).Error)
		assert.Zero(t, orphaned)
	})

	t.Run("reports missing sale as not found", func(t *testing.T) {
		err := repo.Delete(ctx, ownerID, uuid.New())

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("refuses to delete another owner's sale", func(t *testing.T) {
		sale := newTestSale(t, uuid.New(), "Foreign", 1)
		require.NoError(t, repo.Save(ctx, sale))

		err := repo.Delete(ctx, ownerID, sale.ID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
