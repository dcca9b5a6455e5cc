package service

import (
	"context"
	"sync"

	"bizhub-be/internal/entity"
	"bizhub-be/internal/pkg/logger"
	"bizhub-be/internal/repository/contract"
	"bizhub-be/internal/repository/specification"
	"bizhub-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
func (nopLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return nil, nil
}
func (nopLogger) GetLogById(id string) (*logger.LogEntry, error) { return nil, nil }

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakeUnitOfWork struct {
	users     *fakeUserRepo
	companies *fakeCompanyRepo
	documents *fakeDocumentRepo
	news      *fakeCompanyNewsRepo
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository         { return u.users }
func (u *fakeUnitOfWork) CompanyRepository() contract.CompanyRepository   { return u.companies }
func (u *fakeUnitOfWork) DocumentRepository() contract.DocumentRepository { return u.documents }
func (u *fakeUnitOfWork) StrategyNoteRepository() contract.StrategyNoteRepository {
	return nil
}
func (u *fakeUnitOfWork) ChatSessionRepository() contract.ChatSessionRepository { return nil }
func (u *fakeUnitOfWork) ChatMessageRepository() contract.ChatMessageRepository { return nil }
func (u *fakeUnitOfWork) CompanyNewsRepository() contract.CompanyNewsRepository { return u.news }

type fakeUserRepo struct {
	user  *entity.User
	users []*entity.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }
func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }
func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }
func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	return r.user, nil
}
func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	return r.users, nil
}
func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.users)), nil
}
func (r *fakeUserRepo) ActivateUser(ctx context.Context, userId uuid.UUID) error { return nil }
func (r *fakeUserRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return nil
}
func (r *fakeUserRepo) UpdatePassword(ctx context.Context, userId uuid.UUID, hash string) error {
	return nil
}
func (r *fakeUserRepo) CreateEmailVerificationToken(ctx context.Context, token *entity.EmailVerificationToken) error {
	return nil
}
func (r *fakeUserRepo) FindEmailVerificationToken(ctx context.Context, specs ...specification.Specification) (*entity.EmailVerificationToken, error) {
	return nil, nil
}
func (r *fakeUserRepo) DeleteEmailVerificationToken(ctx context.Context, id uuid.UUID) error {
	return nil
}

type fakeCompanyRepo struct {
	companies []*entity.Company
}

func (r *fakeCompanyRepo) Create(ctx context.Context, company *entity.Company) error { return nil }
func (r *fakeCompanyRepo) Update(ctx context.Context, company *entity.Company) error { return nil }
func (r *fakeCompanyRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }
func (r *fakeCompanyRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Company, error) {
	return nil, nil
}
func (r *fakeCompanyRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Company, error) {
	return r.companies, nil
}
func (r *fakeCompanyRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.companies)), nil
}

type fakeDocumentRepo struct {
	doc     *entity.Document
	docs    []*entity.Document
	created []*entity.Document

	findAllSpecs []specification.Specification

	sharedWithSet bool
	sharedWith    []uuid.UUID

	deleted []uuid.UUID
}

func (r *fakeDocumentRepo) Create(ctx context.Context, doc *entity.Document) error {
	r.created = append(r.created, doc)
	return nil
}
func (r *fakeDocumentRepo) Update(ctx context.Context, doc *entity.Document) error { return nil }
func (r *fakeDocumentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.deleted = append(r.deleted, id)
	return nil
}
func (r *fakeDocumentRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Document, error) {
	return r.doc, nil
}
func (r *fakeDocumentRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Document, error) {
	r.findAllSpecs = specs
	return r.docs, nil
}
func (r *fakeDocumentRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.docs)), nil
}
func (r *fakeDocumentRepo) UpdateParsedContent(ctx context.Context, id uuid.UUID, content string, method string) error {
	return nil
}
func (r *fakeDocumentRepo) UpdateSharedWith(ctx context.Context, id uuid.UUID, userIds []uuid.UUID) error {
	r.sharedWithSet = true
	r.sharedWith = userIds
	return nil
}

type fakeCompanyNewsRepo struct {
	mu       sync.Mutex
	existing map[uuid.UUID]bool
	created  []*entity.CompanyNews
}

func (r *fakeCompanyNewsRepo) Create(ctx context.Context, news *entity.CompanyNews) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, news)
	return nil
}
func (r *fakeCompanyNewsRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (r *fakeCompanyNewsRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CompanyNews, error) {
	return nil, nil
}
func (r *fakeCompanyNewsRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CompanyNews, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.created, nil
}
func (r *fakeCompanyNewsRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.created)), nil
}
func (r *fakeCompanyNewsRepo) ExistsForDay(ctx context.Context, companyId uuid.UUID, newsDate string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.existing[companyId], nil
}

type fakePublisher struct {
	payloads [][]byte
}

func (p *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}
