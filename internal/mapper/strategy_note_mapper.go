package mapper

import (
	"time"

	"bizhub-be/internal/entity"
	"bizhub-be/internal/model"

	"gorm.io/gorm"
)

type StrategyNoteMapper struct{}

func NewStrategyNoteMapper() *StrategyNoteMapper {
	return &StrategyNoteMapper{}
}

func (m *StrategyNoteMapper) ToEntity(n *model.StrategyNote) *entity.StrategyNote {
	if n == nil {
		return nil
	}

	var deletedAt *time.Time
	if n.DeletedAt.Valid {
		t := n.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !n.UpdatedAt.IsZero() {
		t := n.UpdatedAt
		updatedAt = &t
	}

	return &entity.StrategyNote{
		Id:        n.Id,
		CompanyId: n.CompanyId,
		AuthorId:  n.AuthorId,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
	}
}

func (m *StrategyNoteMapper) ToModel(n *entity.StrategyNote) *model.StrategyNote {
	if n == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if n.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *n.DeletedAt, Valid: true}
	}

	var updatedAt time.Time
	if n.UpdatedAt != nil {
		updatedAt = *n.UpdatedAt
	}

	return &model.StrategyNote{
		Id:        n.Id,
		CompanyId: n.CompanyId,
		AuthorId:  n.AuthorId,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
	}
}

func (m *StrategyNoteMapper) ToEntities(notes []*model.StrategyNote) []*entity.StrategyNote {
	entities := make([]*entity.StrategyNote, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
