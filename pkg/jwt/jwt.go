package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Nombres de los claims registrados que emite Generate.
const (
	ClaimName = "unique_name"
	ClaimRole = "role"
)

var reserved = map[string]bool{
	ClaimName: true, ClaimRole: true,
	"iss": true, "sub": true, "aud": true, "exp": true, "nbf": true, "iat": true, "jti": true,
}

// Claims conjunto de claims que lleva el token: nombre, rol y claims propios de texto.
type Claims struct {
	ID        string
	Name      string
	Role      string
	Custom    map[string]string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Generate firma con HS256 un token con los claims indicados.
// Las claves de Custom que coinciden con un claim registrado se ignoran.
func Generate(secret string, c Claims) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	if !c.ExpiresAt.After(c.IssuedAt) {
		return "", fmt.Errorf("jwt: la expiración debe ser posterior a la emisión")
	}
	mc := jwt.MapClaims{
		ClaimName: c.Name,
		ClaimRole: c.Role,
		"iat":     jwt.NewNumericDate(c.IssuedAt),
		"nbf":     jwt.NewNumericDate(c.IssuedAt),
		"exp":     jwt.NewNumericDate(c.ExpiresAt),
	}
	if c.ID != "" {
		mc["jti"] = c.ID
	}
	for k, v := range c.Custom {
		if reserved[k] {
			continue
		}
		mc[k] = v
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mc)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración del token y devuelve sus claims.
// now permite fijar el reloj de validación; si es nil se usa time.Now.
func Parse(secret, tokenString string, now func() time.Time) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if now != nil {
		opts = append(opts, jwt.WithTimeFunc(now))
	}
	mc := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, mc, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}

	out := &Claims{Custom: map[string]string{}}
	out.Name, _ = mc[ClaimName].(string)
	out.Role, _ = mc[ClaimRole].(string)
	out.ID, _ = mc["jti"].(string)
	if iat, err := mc.GetIssuedAt(); err == nil && iat != nil {
		out.IssuedAt = iat.Time
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	for k, v := range mc {
		if reserved[k] {
			continue
		}
		if s, ok := v.(string); ok {
			out.Custom[k] = s
		}
	}
	return out, nil
}
