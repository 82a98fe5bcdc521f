package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/storefront/internal/config"
	"github.com/Skotchmaster/storefront/internal/models"
)

func TestOpen_SQLiteMemoryAndMigrate(t *testing.T) {
	cfg := config.Config{DBDriver: config.DriverSQLite, DatabaseURL: "file::memory:"}

	gdb, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(gdb) })

	require.NoError(t, Migrate(gdb))

	for _, table := range []string{"users", "products", "carts", "cart_items", "orders", "order_items", "reviews"} {
		assert.True(t, gdb.Migrator().HasTable(table), "table %s", table)
	}

	require.NoError(t, gdb.Create(&models.Product{Name: "Shoe", Price: 10, Stock: 5}).Error)
	var count int64
	require.NoError(t, gdb.Model(&models.Product{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestOpen_Errors(t *testing.T) {
	_, err := Open(context.Background(), config.Config{DBDriver: config.DriverSQLite})
	require.Error(t, err)

	_, err = Open(context.Background(), config.Config{DBDriver: "mysql", DatabaseURL: "x"})
	require.Error(t, err)
}
