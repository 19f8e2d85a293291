package usecase

import (
	"strings"

	"github.com/jhoicas/blog-api/internal/application/dto"
	"github.com/jhoicas/blog-api/internal/domain/entity"
	"github.com/jhoicas/blog-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase casos de uso CRUD para usuarios.
type UserUseCase = ResourceUseCase[entity.User, dto.CreateUserRequest, dto.UpdateUserRequest, dto.UserResponse]

// NewUserUseCase construye el caso de uso. cost es el costo de bcrypt (0 = bcrypt.DefaultCost).
func NewUserUseCase(repo repository.UserRepository, cost int) *UserUseCase {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return NewResourceUseCase(repository.Repository[entity.User](repo), ResourceSpec[entity.User, dto.CreateUserRequest, dto.UpdateUserRequest, dto.UserResponse]{
		Label:       "el usuario",
		CreateRules: dto.CreateUserConstraints,
		UpdateRules: dto.UpdateUserConstraints,
		New: func(in dto.CreateUserRequest) (*entity.User, error) {
			hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), cost)
			if err != nil {
				return nil, err
			}
			role := in.Role
			if role == "" {
				role = entity.RoleAuthor
			}
			return &entity.User{
				Name:         in.Name,
				Email:        strings.TrimSpace(in.Email),
				PasswordHash: string(hash),
				Bio:          in.Bio,
				Image:        in.Image,
				Slug:         in.Slug,
				Role:         role,
			}, nil
		},
		Apply: func(u *entity.User, in dto.UpdateUserRequest) {
			u.Name = in.Name
			u.Email = strings.TrimSpace(in.Email)
			u.Bio = in.Bio
			u.Image = in.Image
			u.Slug = in.Slug
			if in.Role != "" {
				u.Role = in.Role
			}
		},
		ID:   func(u *entity.User) int { return u.ID },
		View: toUserResponse,
	})
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Bio:   u.Bio,
		Image: u.Image,
		Slug:  u.Slug,
		Role:  u.Role,
	}
}
