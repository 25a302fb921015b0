package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestDummyPasswordHash_EsBcryptValido(t *testing.T) {
	// Si el hash de relleno no parsea, CompareHashAndPassword retorna de
	// inmediato y la rama de email desconocido vuelve a ser más rápida.
	cost, err := bcrypt.Cost([]byte(dummyPasswordHash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost, "mismo costo que los hashes reales")
}
