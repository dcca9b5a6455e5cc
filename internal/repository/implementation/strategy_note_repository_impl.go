package implementation

import (
	"context"
	"errors"

	"bizhub-be/internal/entity"
	"bizhub-be/internal/mapper"
	"bizhub-be/internal/model"
	"bizhub-be/internal/repository/contract"
	"bizhub-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StrategyNoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StrategyNoteMapper
}

func NewStrategyNoteRepository(db *gorm.DB) contract.StrategyNoteRepository {
	return &StrategyNoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewStrategyNoteMapper(),
	}
}

func (r *StrategyNoteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *StrategyNoteRepositoryImpl) Create(ctx context.Context, note *entity.StrategyNote) error {
	m := r.mapper.ToModel(note)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

func (r *StrategyNoteRepositoryImpl) Update(ctx context.Context, note *entity.StrategyNote) error {
	m := r.mapper.ToModel(note)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

func (r *StrategyNoteRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.StrategyNote{}, id).Error
}

func (r *StrategyNoteRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StrategyNote, error) {
	var m model.StrategyNote
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *StrategyNoteRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StrategyNote, error) {
	var models []*model.StrategyNote
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *StrategyNoteRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.StrategyNote{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
