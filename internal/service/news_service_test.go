package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"bizhub-be/internal/entity"
	"bizhub-be/pkg/batch"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock string

func (c fixedClock) Today() string { return string(c) }

type fakeResearcher struct {
	mu      sync.Mutex
	calls   []string
	failFor map[string]error
}

func (r *fakeResearcher) ResearchCompanyNews(ctx context.Context, companyName, industry, date string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, companyName)
	if err := r.failFor[companyName]; err != nil {
		return "", err
	}
	return "digest for " + companyName, nil
}

func (r *fakeResearcher) called(companyName string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, name := range r.calls {
		if name == companyName {
			return true
		}
	}
	return false
}

func newNewsFixture(companies []*entity.Company, researcher *fakeResearcher) (*fakeCompanyNewsRepo, INewsService) {
	newsRepo := &fakeCompanyNewsRepo{existing: map[uuid.UUID]bool{}}
	factory := &fakeFactory{uow: &fakeUnitOfWork{
		companies: &fakeCompanyRepo{companies: companies},
		news:      newsRepo,
	}}
	orchestrator := batch.NewOrchestrator(fixedClock("2025-06-01"), 2, time.Second)
	svc := NewNewsService(factory, researcher, orchestrator, nil, nil, "", nopLogger{})
	return newsRepo, svc
}

func TestRunDailySkipsCoveredCompanies(t *testing.T) {
	acme := &entity.Company{Id: uuid.New(), Name: "Acme", Industry: "manufacturing"}
	globex := &entity.Company{Id: uuid.New(), Name: "Globex", Industry: "energy"}

	researcher := &fakeResearcher{}
	newsRepo, svc := newNewsFixture([]*entity.Company{acme, globex}, researcher)
	newsRepo.existing[acme.Id] = true

	summary, err := svc.RunDaily(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2025-06-01", summary.Date)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 0, summary.Failed)

	// A skip costs nothing, the researcher is never consulted.
	assert.False(t, researcher.called("Acme"))
	assert.True(t, researcher.called("Globex"))

	require.Len(t, newsRepo.created, 1)
	stored := newsRepo.created[0]
	assert.Equal(t, globex.Id, stored.CompanyId)
	assert.Equal(t, "2025-06-01", stored.NewsDate)
	assert.Equal(t, "digest for Globex", stored.Content)
}

func TestRunDailyFailureDoesNotAbortRun(t *testing.T) {
	companies := []*entity.Company{
		{Id: uuid.New(), Name: "Acme", Industry: "manufacturing"},
		{Id: uuid.New(), Name: "Globex", Industry: "energy"},
		{Id: uuid.New(), Name: "Initech", Industry: "software"},
	}

	researcher := &fakeResearcher{failFor: map[string]error{
		"Globex": errors.New("upstream timeout"),
	}}
	newsRepo, svc := newNewsFixture(companies, researcher)

	summary, err := svc.RunDaily(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 0, summary.Skipped)

	require.Len(t, newsRepo.created, 2)
	for _, stored := range newsRepo.created {
		assert.NotEqual(t, "digest for Globex", stored.Content)
		assert.Equal(t, summary.Date, stored.NewsDate)
	}
}

func TestRunDailyEmptyTenantList(t *testing.T) {
	researcher := &fakeResearcher{}
	newsRepo, svc := newNewsFixture(nil, researcher)

	summary, err := svc.RunDaily(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Total)
	assert.Empty(t, researcher.calls)
	assert.Empty(t, newsRepo.created)
}

func TestListForCompany(t *testing.T) {
	companyId := uuid.New()
	newsRepo, svc := newNewsFixture(nil, &fakeResearcher{})
	newsRepo.created = []*entity.CompanyNews{
		{Id: uuid.New(), CompanyId: companyId, NewsDate: "2025-05-31", Content: "older"},
		{Id: uuid.New(), CompanyId: companyId, NewsDate: "2025-06-01", Content: "newer"},
	}

	principal := entity.Principal{UserId: uuid.New(), CompanyId: companyId, Role: entity.UserRoleUser}
	items, err := svc.ListForCompany(context.Background(), principal)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "older", items[0].Content)
}
