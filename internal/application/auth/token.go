package auth

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/blog-api/internal/domain/entity"
	"github.com/jhoicas/blog-api/pkg/jwt"
)

// DefaultTokenLifetime vigencia de un token emitido.
const DefaultTokenLifetime = 4 * time.Hour

// TokenConfig configuración del emisor de tokens. La clave se carga una vez al arrancar.
// Name, Role y el claim propio son valores fijos; con ClaimsFromUser el nombre y el rol
// se toman del usuario recibido.
type TokenConfig struct {
	Secret         string
	Lifetime       time.Duration
	Name           string
	Role           string
	CustomKey      string
	CustomValue    string
	ClaimsFromUser bool
}

// TokenService emite y valida tokens HMAC-SHA256. No guarda estado entre llamadas.
type TokenService struct {
	cfg TokenConfig
	now func() time.Time
}

// NewTokenService construye el emisor. Lifetime <= 0 usa DefaultTokenLifetime.
func NewTokenService(cfg TokenConfig) (*TokenService, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("token: secret vacío")
	}
	if cfg.Lifetime <= 0 {
		cfg.Lifetime = DefaultTokenLifetime
	}
	return &TokenService{cfg: cfg, now: time.Now}, nil
}

// WithClock reemplaza el reloj usado para emitir y validar (tests).
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

// GenerateToken firma un token para user con expiración absoluta now + Lifetime.
func (s *TokenService) GenerateToken(user *entity.User) (string, error) {
	issued := s.now()
	claims := jwt.Claims{
		ID:        uuid.NewString(),
		Name:      s.cfg.Name,
		Role:      s.cfg.Role,
		IssuedAt:  issued,
		ExpiresAt: issued.Add(s.cfg.Lifetime),
	}
	if s.cfg.ClaimsFromUser && user != nil {
		claims.Name = user.Name
		claims.Role = user.Role
	}
	if s.cfg.CustomKey != "" {
		claims.Custom = map[string]string{s.cfg.CustomKey: s.cfg.CustomValue}
	}
	return jwt.Generate(s.cfg.Secret, claims)
}

// Parse valida el token con la clave configurada.
func (s *TokenService) Parse(token string) (*jwt.Claims, error) {
	return jwt.Parse(s.cfg.Secret, token, s.now)
}
