package contract

import (
	"context"

	"bizhub-be/internal/entity"
	"bizhub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type StrategyNoteRepository interface {
	Create(ctx context.Context, note *entity.StrategyNote) error
	Update(ctx context.Context, note *entity.StrategyNote) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StrategyNote, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StrategyNote, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
