package mapper

import (
	"bizhub-be/internal/entity"
	"bizhub-be/internal/model"
)

type CompanyNewsMapper struct{}

func NewCompanyNewsMapper() *CompanyNewsMapper {
	return &CompanyNewsMapper{}
}

func (m *CompanyNewsMapper) ToEntity(n *model.CompanyNews) *entity.CompanyNews {
	if n == nil {
		return nil
	}
	return &entity.CompanyNews{
		Id:        n.Id,
		CompanyId: n.CompanyId,
		NewsDate:  n.NewsDate,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
	}
}

func (m *CompanyNewsMapper) ToModel(n *entity.CompanyNews) *model.CompanyNews {
	if n == nil {
		return nil
	}
	return &model.CompanyNews{
		Id:        n.Id,
		CompanyId: n.CompanyId,
		NewsDate:  n.NewsDate,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
	}
}

func (m *CompanyNewsMapper) ToEntities(news []*model.CompanyNews) []*entity.CompanyNews {
	entities := make([]*entity.CompanyNews, len(news))
	for i, n := range news {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
