package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/blog-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func sampleClaims(issued time.Time) pkgjwt.Claims {
	return pkgjwt.Claims{
		ID:        "6f1d1f0e-0000-4000-8000-000000000001",
		Name:      "editor",
		Role:      "admin",
		Custom:    map[string]string{"team": "blog"},
		IssuedAt:  issued,
		ExpiresAt: issued.Add(4 * time.Hour),
	}
}

func TestGenerateAndParse_RoundTrip(t *testing.T) {
	issued := time.Now().Truncate(time.Second)
	tok, err := pkgjwt.Generate(testSecret, sampleClaims(issued))
	require.NoError(t, err)

	c, err := pkgjwt.Parse(testSecret, tok, nil)
	require.NoError(t, err)
	assert.Equal(t, "editor", c.Name)
	assert.Equal(t, "admin", c.Role)
	assert.Equal(t, map[string]string{"team": "blog"}, c.Custom)
	assert.Equal(t, "6f1d1f0e-0000-4000-8000-000000000001", c.ID)
	assert.True(t, c.IssuedAt.Equal(issued))
	assert.True(t, c.ExpiresAt.Equal(issued.Add(4*time.Hour)))
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, sampleClaims(time.Now()))
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok, nil)
	assert.ErrorIs(t, err, gojwt.ErrTokenSignatureInvalid)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, sampleClaims(time.Now().Add(-5*time.Hour)))
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok, nil)
	assert.ErrorIs(t, err, gojwt.ErrTokenExpired)
}

func TestParse_RelojInyectado(t *testing.T) {
	issued := time.Date(2024, 2, 20, 12, 0, 0, 0, time.UTC)
	tok, err := pkgjwt.Generate(testSecret, sampleClaims(issued))
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok, func() time.Time { return issued.Add(time.Hour) })
	assert.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok, func() time.Time { return issued.Add(4*time.Hour + time.Minute) })
	assert.Error(t, err)
}

func TestParse_RechazaAlgoritmoNone(t *testing.T) {
	unsigned := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.MapClaims{
		"unique_name": "x",
		"exp":         gojwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tok, err := unsigned.SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok, nil)
	assert.Error(t, err)
}

func TestGenerate_CustomNoPisaClaimsRegistrados(t *testing.T) {
	c := sampleClaims(time.Now())
	c.Custom = map[string]string{"role": "root", "exp": "0", "extra": "ok"}
	tok, err := pkgjwt.Generate(testSecret, c)
	require.NoError(t, err)

	parsed, err := pkgjwt.Parse(testSecret, tok, nil)
	require.NoError(t, err)
	assert.Equal(t, "admin", parsed.Role)
	assert.Equal(t, map[string]string{"extra": "ok"}, parsed.Custom)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", sampleClaims(time.Now()))
	assert.Error(t, err)
}

func TestGenerate_ExpiracionInvalida(t *testing.T) {
	now := time.Now()
	c := sampleClaims(now)
	c.ExpiresAt = now
	_, err := pkgjwt.Generate(testSecret, c)
	assert.Error(t, err)
}
