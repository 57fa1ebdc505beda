//go:build integration
// +build integration

// To enable gopls support for this file, add the following to your VSCode settings.json:
// "gopls": {
//   "buildFlags": ["-tags=integration"]
// }

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/retaildesk/storefront-api/internal/domains/orders/domain"
	"github.com/retaildesk/storefront-api/internal/domains/orders/ports"
	"github.com/retaildesk/storefront-api/internal/platform/migrations"
)

func setupPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("storefront_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func seedInventory(t *testing.T, db *gorm.DB, levels map[int64]int64) {
	t.Helper()
	for variantID, quantity := range levels {
		require.NoError(t, db.Create(&inventoryRecord{VariantID: variantID, Quantity: quantity}).Error)
	}
}

func quantityOf(t *testing.T, db *gorm.DB, variantID int64) int64 {
	t.Helper()
	var level inventoryRecord
	require.NoError(t, db.First(&level, "variant_id = ?", variantID).Error)
	return level.Quantity
}

func testOrder(number string, lines ...domain.Line) *domain.Order {
	return &domain.Order{
		Number:        number,
		CustomerName:  "Alex",
		CustomerPhone: "555-0100",
		Status:        domain.StatusPending,
		CreatedAt:     time.Now(),
		Lines:         lines,
	}
}

func TestPostgresRepository_PlaceDecrementsInventory(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()
	seedInventory(t, db, map[int64]int64{1: 10, 2: 4})

	order := testOrder("ORD-20260828-AAAAAA",
		domain.Line{VariantID: 1, SKU: "HB-250", Name: "250g", Quantity: 3, UnitPrice: 12},
		domain.Line{VariantID: 2, SKU: "HB-1000", Name: "1kg", Quantity: 2, UnitPrice: 40},
	)
	order.ComputeTotal()

	placed, err := repo.Place(ctx, order)
	require.NoError(t, err)
	assert.NotZero(t, placed.ID)
	assert.Equal(t, "ORD-20260828-AAAAAA", placed.Number)
	assert.Len(t, placed.Lines, 2)
	assert.EqualValues(t, 116, placed.Total)

	assert.EqualValues(t, 7, quantityOf(t, db, 1))
	assert.EqualValues(t, 2, quantityOf(t, db, 2))
}

func TestPostgresRepository_PlaceRejectsInsufficientStock(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()
	seedInventory(t, db, map[int64]int64{1: 10, 2: 1})

	order := testOrder("ORD-20260828-BBBBBB",
		domain.Line{VariantID: 1, SKU: "HB-250", Quantity: 3, UnitPrice: 12},
		domain.Line{VariantID: 2, SKU: "HB-1000", Quantity: 2, UnitPrice: 40},
	)

	_, err := repo.Place(ctx, order)
	require.ErrorIs(t, err, ports.ErrInsufficientStock)

	// The transaction rolled back, so the first variant is untouched too.
	assert.EqualValues(t, 10, quantityOf(t, db, 1))
	assert.EqualValues(t, 1, quantityOf(t, db, 2))

	_, err = repo.GetByNumber(ctx, "ORD-20260828-BBBBBB")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestPostgresRepository_PlaceRejectsMissingInventoryRow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	order := testOrder("ORD-20260828-CCCCCC",
		domain.Line{VariantID: 42, SKU: "GHOST", Quantity: 1, UnitPrice: 5},
	)

	_, err := repo.Place(ctx, order)
	require.ErrorIs(t, err, ports.ErrInsufficientStock)
}

func TestPostgresRepository_PlaceRejectsDuplicateNumber(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()
	seedInventory(t, db, map[int64]int64{1: 10})

	first := testOrder("ORD-20260828-DDDDDD",
		domain.Line{VariantID: 1, SKU: "HB-250", Quantity: 1, UnitPrice: 12},
	)
	_, err := repo.Place(ctx, first)
	require.NoError(t, err)

	second := testOrder("ORD-20260828-DDDDDD",
		domain.Line{VariantID: 1, SKU: "HB-250", Quantity: 1, UnitPrice: 12},
	)
	_, err = repo.Place(ctx, second)
	require.ErrorIs(t, err, ports.ErrDuplicateNumber)

	// The duplicate rolled back its decrement.
	assert.EqualValues(t, 9, quantityOf(t, db, 1))
}

func TestPostgresRepository_GetByNumberLoadsLines(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()
	seedInventory(t, db, map[int64]int64{1: 10, 2: 10})

	order := testOrder("ORD-20260828-EEEEEE",
		domain.Line{VariantID: 1, SKU: "HB-250", Name: "250g", Quantity: 2, UnitPrice: 12},
		domain.Line{VariantID: 2, SKU: "HB-1000", Name: "1kg", Quantity: 1, UnitPrice: 40},
	)
	order.ComputeTotal()
	_, err := repo.Place(ctx, order)
	require.NoError(t, err)

	fetched, err := repo.GetByNumber(ctx, "ORD-20260828-EEEEEE")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, fetched.Status)
	require.Len(t, fetched.Lines, 2)
	assert.Equal(t, "HB-250", fetched.Lines[0].SKU)
	assert.EqualValues(t, 64, fetched.Total)
}
