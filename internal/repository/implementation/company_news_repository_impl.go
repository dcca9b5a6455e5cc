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

type CompanyNewsRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CompanyNewsMapper
}

func NewCompanyNewsRepository(db *gorm.DB) contract.CompanyNewsRepository {
	return &CompanyNewsRepositoryImpl{
		db:     db,
		mapper: mapper.NewCompanyNewsMapper(),
	}
}

func (r *CompanyNewsRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CompanyNewsRepositoryImpl) Create(ctx context.Context, news *entity.CompanyNews) error {
	m := r.mapper.ToModel(news)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*news = *r.mapper.ToEntity(m)
	return nil
}

func (r *CompanyNewsRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CompanyNews{}, id).Error
}

func (r *CompanyNewsRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CompanyNews, error) {
	var m model.CompanyNews
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CompanyNewsRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CompanyNews, error) {
	var models []*model.CompanyNews
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CompanyNewsRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.CompanyNews{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CompanyNewsRepositoryImpl) ExistsForDay(ctx context.Context, companyId uuid.UUID, newsDate string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CompanyNews{}).
		Where("company_id = ? AND news_date = ?", companyId, newsDate).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
