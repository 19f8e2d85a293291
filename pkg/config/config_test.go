package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-de-prueba")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 240, cfg.JWT.Expiration)
	assert.Equal(t, 4*time.Hour, cfg.JWT.Lifetime())
	assert.Equal(t, "admin", cfg.JWT.ClaimRole)
	assert.False(t, cfg.JWT.ClaimsFromUser)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 15*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, int32(25), cfg.DB.MaxConns)
	assert.True(t, cfg.DB.AutoMigrate)
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-de-prueba")
	t.Setenv("JWT_EXPIRATION_MINUTES", "30")
	t.Setenv("JWT_CLAIMS_FROM_USER", "true")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_AUTO_MIGRATE", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, cfg.JWT.Lifetime())
	assert.True(t, cfg.JWT.ClaimsFromUser)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.False(t, cfg.DB.AutoMigrate)
}

func TestLoad_SinSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestValidate_AcumulaErrores(t *testing.T) {
	cfg := &Config{
		JWT:  JWTConfig{Secret: "x", Expiration: 0, CustomValue: "v"},
		HTTP: HTTPConfig{Port: 70000},
		DB:   DBConfig{MinConns: 5, MaxConns: 1},
	}
	err := cfg.Validate()
	require.Error(t, err)
	for _, s := range []string{"JWT_EXPIRATION_MINUTES", "JWT_CUSTOM_CLAIM_KEY", "HTTP_PORT", "DB_MIN_CONNS"} {
		assert.Contains(t, err.Error(), s)
	}
}

func TestDBConfig_DSN(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "blog", Password: "p@ss:w", DBName: "blog", SSLMode: "disable"}
	assert.Equal(t, "postgres://blog:p%40ss%3Aw@db:5432/blog?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
