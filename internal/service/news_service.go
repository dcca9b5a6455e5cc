package service

import (
	"context"
	"time"

	"bizhub-be/internal/dto"
	"bizhub-be/internal/entity"
	"bizhub-be/internal/pkg/logger"
	"bizhub-be/internal/pkg/mailer"
	"bizhub-be/internal/repository/specification"
	"bizhub-be/internal/repository/unitofwork"
	"bizhub-be/pkg/batch"
	"bizhub-be/pkg/events"
	pktNats "bizhub-be/pkg/nats"

	"github.com/google/uuid"
)

// NewsResearcher produces one day's digest text for a company.
type NewsResearcher interface {
	ResearchCompanyNews(ctx context.Context, companyName, industry, date string) (string, error)
}

type INewsService interface {
	RunDaily(ctx context.Context) (*dto.NewsRunSummaryResponse, error)
	ListForCompany(ctx context.Context, principal entity.Principal) ([]*dto.CompanyNewsItem, error)
	StartScheduler(ctx context.Context)
}

type newsService struct {
	uowFactory     unitofwork.RepositoryFactory
	researcher     NewsResearcher
	orchestrator   *batch.Orchestrator
	eventPublisher *pktNats.Publisher
	emailService   mailer.IEmailService
	summaryEmail   string
	log            logger.ILogger
}

func NewNewsService(
	uowFactory unitofwork.RepositoryFactory,
	researcher NewsResearcher,
	orchestrator *batch.Orchestrator,
	eventPublisher *pktNats.Publisher,
	emailService mailer.IEmailService,
	summaryEmail string,
	log logger.ILogger,
) INewsService {
	return &newsService{
		uowFactory:     uowFactory,
		researcher:     researcher,
		orchestrator:   orchestrator,
		eventPublisher: eventPublisher,
		emailService:   emailService,
		summaryEmail:   summaryEmail,
		log:            log,
	}
}

func (s *newsService) RunDaily(ctx context.Context) (*dto.NewsRunSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	companies, err := uow.CompanyRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	refs := make([]batch.EntityRef, 0, len(companies))
	industries := make(map[uuid.UUID]string, len(companies))
	for _, company := range companies {
		refs = append(refs, batch.EntityRef{Id: company.Id, Name: company.Name})
		industries[company.Id] = company.Industry
	}

	task := func(ctx context.Context, ref batch.EntityRef, date string) error {
		content, err := s.researcher.ResearchCompanyNews(ctx, ref.Name, industries[ref.Id], date)
		if err != nil {
			return err
		}

		news := &entity.CompanyNews{
			Id:        uuid.New(),
			CompanyId: ref.Id,
			NewsDate:  date,
			Content:   content,
			CreatedAt: time.Now(),
		}
		return s.uowFactory.NewUnitOfWork(ctx).CompanyNewsRepository().Create(ctx, news)
	}

	alreadyRan := func(ctx context.Context, ref batch.EntityRef, date string) (bool, error) {
		return s.uowFactory.NewUnitOfWork(ctx).CompanyNewsRepository().ExistsForDay(ctx, ref.Id, date)
	}

	run := s.orchestrator.RunDaily(ctx, refs, task, alreadyRan)
	summary := run.Summary()

	for id, outcome := range run.Outcomes {
		if outcome.Status == batch.OutcomeFailed {
			s.log.Warn("news", "Company digest failed", map[string]interface{}{
				"company_id": id,
				"date":       run.Date,
				"error":      outcome.Detail,
			})
		}
		if s.eventPublisher != nil && outcome.Status != batch.OutcomeSkipped {
			evt := events.NewsRefreshed(id, run.Date, outcome.Status == batch.OutcomeSucceeded)
			if err := s.eventPublisher.Publish(ctx, evt); err != nil {
				s.log.Warn("news", "Failed to publish refresh event", map[string]interface{}{
					"company_id": id,
					"error":      err.Error(),
				})
			}
		}
	}

	s.log.Info("news", "Daily run finished", map[string]interface{}{
		"date":      run.Date,
		"total":     summary.Processed,
		"succeeded": summary.Succeeded,
		"skipped":   summary.Skipped,
		"failed":    summary.Failed,
	})

	if s.emailService != nil && s.summaryEmail != "" {
		go func() {
			err := s.emailService.SendNewsRunSummary(s.summaryEmail, run.Date,
				summary.Processed, summary.Succeeded, summary.Skipped, summary.Failed)
			if err != nil {
				s.log.Warn("news", "Failed to send summary mail", map[string]interface{}{"error": err.Error()})
			}
		}()
	}

	return &dto.NewsRunSummaryResponse{
		Date:      run.Date,
		Total:     summary.Processed,
		Succeeded: summary.Succeeded,
		Skipped:   summary.Skipped,
		Failed:    summary.Failed,
	}, nil
}

func (s *newsService) ListForCompany(ctx context.Context, principal entity.Principal) ([]*dto.CompanyNewsItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	news, err := uow.CompanyNewsRepository().FindAll(ctx,
		specification.NewsForCompany{CompanyID: principal.CompanyId},
		specification.OrderBy{Field: "news_date", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.CompanyNewsItem, 0, len(news))
	for _, n := range news {
		items = append(items, &dto.CompanyNewsItem{
			Id:        n.Id,
			NewsDate:  n.NewsDate,
			Content:   n.Content,
			CreatedAt: n.CreatedAt,
		})
	}
	return items, nil
}

// StartScheduler fires RunDaily at every UTC midnight until ctx is cancelled.
// Dedup inside the run makes an extra manual trigger harmless.
func (s *newsService) StartScheduler(ctx context.Context) {
	go func() {
		for {
			now := time.Now().UTC()
			next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Add(24 * time.Hour)
			timer := time.NewTimer(next.Sub(now))

			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
				if _, err := s.RunDaily(ctx); err != nil {
					s.log.Error("news", "Scheduled run failed", map[string]interface{}{"error": err.Error()})
				}
			}
		}
	}()
}
