package auth

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "segredo-de-teste")
	os.Exit(m.Run())
}

func TestGerarEValidarToken(t *testing.T) {
	token, err := GerarToken(42, true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidarToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.True(t, claims.IsAdmin)
}

func TestValidarTokenInvalido(t *testing.T) {
	_, err := ValidarToken("token.qualquer.coisa")
	assert.Error(t, err)
}

func TestValidarTokenAssinaturaErrada(t *testing.T) {
	token, err := GerarToken(7, false)
	require.NoError(t, err)

	// corrompe a assinatura
	_, err = ValidarToken(token + "x")
	assert.Error(t, err)
}
