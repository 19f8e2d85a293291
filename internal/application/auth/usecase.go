package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/jhoicas/blog-api/internal/application/dto"
	"github.com/jhoicas/blog-api/internal/domain"
	"github.com/jhoicas/blog-api/internal/domain/repository"
	"github.com/jhoicas/blog-api/internal/domain/validation"
	"golang.org/x/crypto/bcrypt"
)

// AuthUseCase login de usuarios: verifica credenciales y emite el token.
type AuthUseCase struct {
	userRepo repository.UserRepository
	tokens   *TokenService
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, tokens *TokenService) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tokens: tokens}
}

// Tokens expone el emisor para el middleware de autenticación.
func (uc *AuthUseCase) Tokens() *TokenService {
	return uc.tokens
}

// Login verifica email/password y devuelve un token firmado.
// Usuario inexistente y contraseña incorrecta responden igual (ERR-06).
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if msgs := validation.Validate(in, dto.LoginConstraints); msgs != nil {
		return nil, domain.NewValidation(msgs)
	}
	user, err := uc.userRepo.GetByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		return nil, domain.NewInternal(err)
	}
	if user == nil {
		return nil, domain.NewUnauthorized(domain.ErrUserNotFound)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) || errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, domain.NewUnauthorized(domain.ErrInvalidPassword)
		}
		return nil, domain.NewInternal(err)
	}
	token, err := uc.tokens.GenerateToken(user)
	if err != nil {
		return nil, domain.NewInternal(err)
	}
	return &dto.LoginResponse{Token: token}, nil
}
