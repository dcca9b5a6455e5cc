package contract

import (
	"context"

	"bizhub-be/internal/entity"
	"bizhub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CompanyNewsRepository interface {
	Create(ctx context.Context, news *entity.CompanyNews) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CompanyNews, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CompanyNews, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// ExistsForDay reports whether a digest is already stored for the
	// company on the given day.
	ExistsForDay(ctx context.Context, companyId uuid.UUID, newsDate string) (bool, error)
}
