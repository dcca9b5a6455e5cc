package service

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"bizhub-be/internal/dto"
	"bizhub-be/internal/entity"
	"bizhub-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDocumentFixture(t *testing.T) (*fakeDocumentRepo, *fakeUserRepo, *fakePublisher, IDocumentService) {
	t.Helper()
	docRepo := &fakeDocumentRepo{}
	userRepo := &fakeUserRepo{}
	pub := &fakePublisher{}
	factory := &fakeFactory{uow: &fakeUnitOfWork{documents: docRepo, users: userRepo}}
	svc := NewDocumentService(factory, pub, nil, t.TempDir(), nopLogger{})
	return docRepo, userRepo, pub, svc
}

func TestDocumentShowAccess(t *testing.T) {
	companyA := uuid.New()
	companyB := uuid.New()
	owner := uuid.New()
	sharee := uuid.New()

	doc := &entity.Document{
		Id:         uuid.New(),
		CompanyId:  companyA,
		OwnerId:    owner,
		FileName:   "q3-plan.pdf",
		SharedWith: []uuid.UUID{sharee},
	}

	tests := []struct {
		name      string
		principal entity.Principal
		wantErr   error
	}{
		{
			name:      "owner",
			principal: entity.Principal{UserId: owner, CompanyId: companyA, Role: entity.UserRoleUser},
		},
		{
			name:      "shared colleague",
			principal: entity.Principal{UserId: sharee, CompanyId: companyA, Role: entity.UserRoleUser},
		},
		{
			name:      "unshared colleague",
			principal: entity.Principal{UserId: uuid.New(), CompanyId: companyA, Role: entity.UserRoleUser},
			wantErr:   ErrForbidden,
		},
		{
			name:      "company admin",
			principal: entity.Principal{UserId: uuid.New(), CompanyId: companyA, Role: entity.UserRoleAdmin},
		},
		{
			name:      "admin of another company",
			principal: entity.Principal{UserId: uuid.New(), CompanyId: companyB, Role: entity.UserRoleAdmin},
			wantErr:   ErrForbidden,
		},
		{
			name:      "member of another company",
			principal: entity.Principal{UserId: uuid.New(), CompanyId: companyB, Role: entity.UserRoleUser},
			wantErr:   ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docRepo, _, _, svc := newDocumentFixture(t)
			docRepo.doc = doc

			res, err := svc.Show(context.Background(), tt.principal, doc.Id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, doc.Id, res.Id)
			assert.Equal(t, doc.FileName, res.FileName)
		})
	}
}

func TestDocumentShowNotFound(t *testing.T) {
	_, _, _, svc := newDocumentFixture(t)

	principal := entity.Principal{UserId: uuid.New(), CompanyId: uuid.New(), Role: entity.UserRoleUser}
	_, err := svc.Show(context.Background(), principal, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDocumentUpload(t *testing.T) {
	docRepo := &fakeDocumentRepo{}
	pub := &fakePublisher{}
	factory := &fakeFactory{uow: &fakeUnitOfWork{documents: docRepo}}
	storageDir := t.TempDir()
	svc := NewDocumentService(factory, pub, nil, storageDir, nopLogger{})

	principal := entity.Principal{UserId: uuid.New(), CompanyId: uuid.New(), Role: entity.UserRoleUser}
	content := []byte("hello world")

	res, err := svc.Upload(context.Background(), principal, "notes.txt", "text/plain", content)
	require.NoError(t, err)

	require.Len(t, docRepo.created, 1)
	created := docRepo.created[0]
	assert.Equal(t, res.Id, created.Id)
	assert.Equal(t, principal.UserId, created.OwnerId)
	assert.Equal(t, principal.CompanyId, created.CompanyId)
	assert.Empty(t, created.SharedWith)

	stored, err := os.ReadFile(created.StoragePath)
	require.NoError(t, err)
	assert.Equal(t, content, stored)
	assert.Equal(t, filepath.Join(storageDir, principal.CompanyId.String()), filepath.Dir(created.StoragePath))

	// Upload enqueues exactly one extraction job for the new document.
	require.Len(t, pub.payloads, 1)
	var msg dto.ParseDocumentMessage
	require.NoError(t, json.Unmarshal(pub.payloads[0], &msg))
	assert.Equal(t, created.Id, msg.DocumentId)
}

func TestDocumentListScopesNonAdmins(t *testing.T) {
	principal := entity.Principal{UserId: uuid.New(), CompanyId: uuid.New(), Role: entity.UserRoleUser}

	docRepo, _, _, svc := newDocumentFixture(t)
	_, err := svc.List(context.Background(), principal)
	require.NoError(t, err)
	assert.True(t, hasAccessibleBySpec(docRepo.findAllSpecs))

	adminRepo, _, _, adminSvc := newDocumentFixture(t)
	principal.Role = entity.UserRoleAdmin
	_, err = adminSvc.List(context.Background(), principal)
	require.NoError(t, err)
	assert.False(t, hasAccessibleBySpec(adminRepo.findAllSpecs))
}

func hasAccessibleBySpec(specs []specification.Specification) bool {
	for _, s := range specs {
		if _, ok := s.(specification.AccessibleBy); ok {
			return true
		}
	}
	return false
}

func TestDocumentShare(t *testing.T) {
	companyId := uuid.New()
	owner := uuid.New()
	already := uuid.New()
	fresh := uuid.New()

	docRepo, userRepo, _, svc := newDocumentFixture(t)
	docRepo.doc = &entity.Document{
		Id:         uuid.New(),
		CompanyId:  companyId,
		OwnerId:    owner,
		FileName:   "roadmap.docx",
		SharedWith: []uuid.UUID{already},
	}
	userRepo.users = []*entity.User{
		{Id: already, CompanyId: companyId},
		{Id: fresh, CompanyId: companyId},
	}

	principal := entity.Principal{UserId: owner, CompanyId: companyId, Role: entity.UserRoleUser}
	err := svc.Share(context.Background(), principal, &dto.ShareDocumentRequest{
		Id:      docRepo.doc.Id,
		UserIds: []uuid.UUID{already, fresh},
	})
	require.NoError(t, err)

	require.True(t, docRepo.sharedWithSet)
	assert.ElementsMatch(t, []uuid.UUID{already, fresh}, docRepo.sharedWith)
}

func TestDocumentShareNeverAddsOwner(t *testing.T) {
	companyId := uuid.New()
	owner := uuid.New()
	colleague := uuid.New()

	docRepo, userRepo, _, svc := newDocumentFixture(t)
	docRepo.doc = &entity.Document{
		Id:         uuid.New(),
		CompanyId:  companyId,
		OwnerId:    owner,
		FileName:   "forecast.xlsx",
		SharedWith: []uuid.UUID{},
	}
	userRepo.users = []*entity.User{
		{Id: owner, CompanyId: companyId},
		{Id: colleague, CompanyId: companyId},
	}

	// The owner lists themselves as a target; the share list must stay
	// owner-free since ownership already grants full access.
	principal := entity.Principal{UserId: owner, CompanyId: companyId, Role: entity.UserRoleUser}
	err := svc.Share(context.Background(), principal, &dto.ShareDocumentRequest{
		Id:      docRepo.doc.Id,
		UserIds: []uuid.UUID{owner, colleague},
	})
	require.NoError(t, err)

	require.True(t, docRepo.sharedWithSet)
	assert.Equal(t, []uuid.UUID{colleague}, docRepo.sharedWith)
	assert.NotContains(t, docRepo.sharedWith, owner)
}

func TestDocumentShareOnlyOwner(t *testing.T) {
	companyId := uuid.New()

	docRepo, userRepo, _, svc := newDocumentFixture(t)
	docRepo.doc = &entity.Document{
		Id:        uuid.New(),
		CompanyId: companyId,
		OwnerId:   uuid.New(),
	}
	target := uuid.New()
	userRepo.users = []*entity.User{{Id: target, CompanyId: companyId}}

	// Even a company admin cannot share someone else's document.
	principal := entity.Principal{UserId: uuid.New(), CompanyId: companyId, Role: entity.UserRoleAdmin}
	err := svc.Share(context.Background(), principal, &dto.ShareDocumentRequest{
		Id:      docRepo.doc.Id,
		UserIds: []uuid.UUID{target},
	})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.False(t, docRepo.sharedWithSet)
}

func TestDocumentShareRejectsOutsiders(t *testing.T) {
	companyId := uuid.New()
	owner := uuid.New()

	docRepo, userRepo, _, svc := newDocumentFixture(t)
	docRepo.doc = &entity.Document{
		Id:        uuid.New(),
		CompanyId: companyId,
		OwnerId:   owner,
	}

	inside := uuid.New()
	outside := uuid.New()
	// The company-scoped lookup only resolves the in-company target.
	userRepo.users = []*entity.User{{Id: inside, CompanyId: companyId}}

	principal := entity.Principal{UserId: owner, CompanyId: companyId, Role: entity.UserRoleUser}
	err := svc.Share(context.Background(), principal, &dto.ShareDocumentRequest{
		Id:      docRepo.doc.Id,
		UserIds: []uuid.UUID{inside, outside},
	})
	assert.Error(t, err)
	assert.False(t, docRepo.sharedWithSet)
}

func TestDocumentUnshare(t *testing.T) {
	companyId := uuid.New()
	owner := uuid.New()
	keep := uuid.New()
	drop := uuid.New()

	docRepo, _, _, svc := newDocumentFixture(t)
	docRepo.doc = &entity.Document{
		Id:         uuid.New(),
		CompanyId:  companyId,
		OwnerId:    owner,
		SharedWith: []uuid.UUID{keep, drop},
	}

	principal := entity.Principal{UserId: owner, CompanyId: companyId, Role: entity.UserRoleUser}
	err := svc.Unshare(context.Background(), principal, &dto.UnshareDocumentRequest{
		Id:      docRepo.doc.Id,
		UserIds: []uuid.UUID{drop},
	})
	require.NoError(t, err)

	require.True(t, docRepo.sharedWithSet)
	assert.Equal(t, []uuid.UUID{keep}, docRepo.sharedWith)
}

func TestDocumentDelete(t *testing.T) {
	companyA := uuid.New()
	companyB := uuid.New()
	owner := uuid.New()

	tests := []struct {
		name      string
		principal entity.Principal
		wantErr   error
	}{
		{
			name:      "owner",
			principal: entity.Principal{UserId: owner, CompanyId: companyA, Role: entity.UserRoleUser},
		},
		{
			name:      "admin of same company",
			principal: entity.Principal{UserId: uuid.New(), CompanyId: companyA, Role: entity.UserRoleAdmin},
		},
		{
			name:      "admin of another company",
			principal: entity.Principal{UserId: uuid.New(), CompanyId: companyB, Role: entity.UserRoleAdmin},
			wantErr:   ErrForbidden,
		},
		{
			name:      "non-owner member",
			principal: entity.Principal{UserId: uuid.New(), CompanyId: companyA, Role: entity.UserRoleUser},
			wantErr:   ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docRepo, _, _, svc := newDocumentFixture(t)
			docRepo.doc = &entity.Document{
				Id:          uuid.New(),
				CompanyId:   companyA,
				OwnerId:     owner,
				StoragePath: filepath.Join(t.TempDir(), "gone.bin"),
			}

			err := svc.Delete(context.Background(), tt.principal, docRepo.doc.Id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, docRepo.deleted)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []uuid.UUID{docRepo.doc.Id}, docRepo.deleted)
		})
	}
}
