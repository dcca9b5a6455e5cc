package mapper

import (
	"encoding/json"
	"time"

	"bizhub-be/internal/entity"
	"bizhub-be/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

func (m *DocumentMapper) ToEntity(d *model.Document) *entity.Document {
	if d == nil {
		return nil
	}

	var deletedAt *time.Time
	if d.DeletedAt.Valid {
		t := d.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	var sharedWith []uuid.UUID
	if len(d.SharedWith) > 0 {
		// A corrupt share list is treated as empty rather than failing the read.
		_ = json.Unmarshal(d.SharedWith, &sharedWith)
	}

	return &entity.Document{
		Id:            d.Id,
		CompanyId:     d.CompanyId,
		OwnerId:       d.OwnerId,
		FileName:      d.FileName,
		StoragePath:   d.StoragePath,
		MimeType:      d.MimeType,
		FileSize:      d.FileSize,
		ParsedContent: d.ParsedContent,
		ParseMethod:   d.ParseMethod,
		SharedWith:    sharedWith,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
	}
}

func (m *DocumentMapper) ToModel(d *entity.Document) *model.Document {
	if d == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if d.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *d.DeletedAt, Valid: true}
	}

	var updatedAt time.Time
	if d.UpdatedAt != nil {
		updatedAt = *d.UpdatedAt
	}

	sharedWith := d.SharedWith
	if sharedWith == nil {
		sharedWith = []uuid.UUID{}
	}
	sharedJSON, _ := json.Marshal(sharedWith)

	return &model.Document{
		Id:            d.Id,
		CompanyId:     d.CompanyId,
		OwnerId:       d.OwnerId,
		FileName:      d.FileName,
		StoragePath:   d.StoragePath,
		MimeType:      d.MimeType,
		FileSize:      d.FileSize,
		ParsedContent: d.ParsedContent,
		ParseMethod:   d.ParseMethod,
		SharedWith:    datatypes.JSON(sharedJSON),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
	}
}

func (m *DocumentMapper) ToEntities(docs []*model.Document) []*entity.Document {
	entities := make([]*entity.Document, len(docs))
	for i, d := range docs {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
