package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"SERVICE_NAME", "SERVER_PORT", "DB_DRIVER", "PG_DRIVER", "BCRYPT_COST", "KAFKA_BROKERS", "AUTO_MIGRATE", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/shop")

	cfg := Load()

	assert.Equal(t, "storefront", cfg.ServiceName)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, PGDriverPgx, cfg.PGDriver)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
	assert.True(t, cfg.AutoMigrate)
	assert.Nil(t, cfg.KafkaBrokers)
	assert.Equal(t, "postgres://u:p@localhost:5432/shop", cfg.DatabaseURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVICE_NAME", "shop")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("PG_DRIVER", "pq")
	t.Setenv("BCRYPT_COST", "1")
	t.Setenv("KAFKA_BROKERS", " kafka:9092, ,kafka2:9092")
	t.Setenv("AUTO_MIGRATE", "false")

	cfg := Load()

	assert.Equal(t, "shop", cfg.ServiceName)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, PGDriverPq, cfg.PGDriver)
	assert.Equal(t, bcrypt.MinCost, cfg.BcryptCost)
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, []string{"kafka:9092", "kafka2:9092"}, cfg.KafkaBrokers)
}

func TestEnvHelpers_FallBackOnGarbage(t *testing.T) {
	t.Setenv("X_INT", "abc")
	t.Setenv("X_BOOL", "maybe")

	assert.Equal(t, 7, EnvIntDefault("X_INT", 7))
	assert.True(t, EnvBoolDefault("X_BOOL", true))
	assert.Equal(t, "def", EnvDefault("X_MISSING", "def"))
}
