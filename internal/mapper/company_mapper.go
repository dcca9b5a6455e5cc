package mapper

import (
	"time"

	"bizhub-be/internal/entity"
	"bizhub-be/internal/model"

	"gorm.io/gorm"
)

type CompanyMapper struct{}

func NewCompanyMapper() *CompanyMapper {
	return &CompanyMapper{}
}

func (m *CompanyMapper) ToEntity(c *model.Company) *entity.Company {
	if c == nil {
		return nil
	}

	var deletedAt *time.Time
	if c.DeletedAt.Valid {
		t := c.DeletedAt.Time
		deletedAt = &t
	}

	return &entity.Company{
		Id:        c.Id,
		Name:      c.Name,
		Industry:  c.Industry,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

func (m *CompanyMapper) ToModel(c *entity.Company) *model.Company {
	if c == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if c.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *c.DeletedAt, Valid: true}
	}

	return &model.Company{
		Id:        c.Id,
		Name:      c.Name,
		Industry:  c.Industry,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

func (m *CompanyMapper) ToEntities(companies []*model.Company) []*entity.Company {
	entities := make([]*entity.Company, len(companies))
	for i, c := range companies {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
