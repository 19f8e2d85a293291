package usecase

import (
	"github.com/jhoicas/blog-api/internal/application/dto"
	"github.com/jhoicas/blog-api/internal/domain/entity"
	"github.com/jhoicas/blog-api/internal/domain/repository"
)

// PostUseCase casos de uso CRUD para posts. La existencia de categoría y autor la garantizan
// las llaves foráneas: una referencia inválida termina en el código de la operación.
type PostUseCase = ResourceUseCase[entity.Post, dto.EditorPostRequest, dto.EditorPostRequest, dto.PostResponse]

// NewPostUseCase construye el caso de uso.
func NewPostUseCase(repo repository.PostRepository) *PostUseCase {
	return NewResourceUseCase(repository.Repository[entity.Post](repo), ResourceSpec[entity.Post, dto.EditorPostRequest, dto.EditorPostRequest, dto.PostResponse]{
		Label:       "el post",
		CreateRules: dto.CreatePostConstraints,
		UpdateRules: dto.UpdatePostConstraints,
		New: func(in dto.EditorPostRequest) (*entity.Post, error) {
			return &entity.Post{
				Title:      in.Title,
				Summary:    in.Summary,
				Body:       in.Body,
				Slug:       in.Slug,
				CategoryID: in.CategoryID,
				AuthorID:   in.AuthorID,
			}, nil
		},
		Apply: func(p *entity.Post, in dto.EditorPostRequest) {
			p.Title = in.Title
			p.Summary = in.Summary
			p.Body = in.Body
			p.Slug = in.Slug
			p.CategoryID = in.CategoryID
		},
		ID: func(p *entity.Post) int { return p.ID },
		View: func(p *entity.Post) dto.PostResponse {
			return toPostResponse(p)
		},
	})
}

func toPostResponse(p *entity.Post) dto.PostResponse {
	return dto.PostResponse{
		ID:             p.ID,
		Title:          p.Title,
		Summary:        p.Summary,
		Body:           p.Body,
		Slug:           p.Slug,
		CategoryID:     p.CategoryID,
		AuthorID:       p.AuthorID,
		CreateDate:     p.CreateDate,
		LastUpdateDate: p.LastUpdateDate,
	}
}
