package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/candyycode/pet-store-api/pkg/config"
)

// setBaseEnv deja el mínimo de env vars para que Load pase.
func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "un-secreto-de-test")
	t.Setenv("JWT_EXPIRATION_MINUTES", "60")
}

func TestLoad_ConSecretoYDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "un-secreto-de-test", cfg.JWT.Secret)
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "0.0.0.0:3000", cfg.HTTP.Addr())
}

func TestLoad_SinSecreto_Falla(t *testing.T) {
	// Sin JWT_SECRET no hay fallback: arrancar sin secreto es arrancar sin auth.
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_ExpiracionCero_Falla(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("JWT_EXPIRATION_MINUTES", "0")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_PuertoNoNumerico_Falla(t *testing.T) {
	// Un valor malformado debe detener el arranque, no convertirse en 0.
	setBaseEnv(t)
	t.Setenv("DB_PORT", "abc")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PORT")
}

func TestLoad_DatabaseURLTienePrioridad(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/store?sslmode=disable")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/store?sslmode=disable", cfg.DB.ConnectionString())
}
