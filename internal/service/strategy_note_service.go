package service

import (
	"context"
	"time"

	"bizhub-be/internal/dto"
	"bizhub-be/internal/entity"
	"bizhub-be/internal/repository/specification"
	"bizhub-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IStrategyNoteService interface {
	Create(ctx context.Context, principal entity.Principal, req *dto.CreateStrategyNoteRequest) (*dto.CreateStrategyNoteResponse, error)
	List(ctx context.Context, principal entity.Principal) ([]*dto.ShowStrategyNoteResponse, error)
	Show(ctx context.Context, principal entity.Principal, id uuid.UUID) (*dto.ShowStrategyNoteResponse, error)
	Update(ctx context.Context, principal entity.Principal, req *dto.UpdateStrategyNoteRequest) error
	Delete(ctx context.Context, principal entity.Principal, id uuid.UUID) error
}

type strategyNoteService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewStrategyNoteService(uowFactory unitofwork.RepositoryFactory) IStrategyNoteService {
	return &strategyNoteService{
		uowFactory: uowFactory,
	}
}

func (s *strategyNoteService) Create(ctx context.Context, principal entity.Principal, req *dto.CreateStrategyNoteRequest) (*dto.CreateStrategyNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note := &entity.StrategyNote{
		Id:        uuid.New(),
		CompanyId: principal.CompanyId,
		AuthorId:  principal.UserId,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}

	if err := uow.StrategyNoteRepository().Create(ctx, note); err != nil {
		return nil, err
	}
	return &dto.CreateStrategyNoteResponse{Id: note.Id}, nil
}

// List returns all notes in the principal's company. Strategy notes are
// company-wide by design, there is no per-note sharing.
func (s *strategyNoteService) List(ctx context.Context, principal entity.Principal) ([]*dto.ShowStrategyNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.StrategyNoteRepository().FindAll(ctx,
		specification.FilterBy{Field: "company_id", Value: principal.CompanyId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ShowStrategyNoteResponse, 0, len(notes))
	for _, note := range notes {
		items = append(items, toStrategyNoteResponse(note))
	}
	return items, nil
}

func (s *strategyNoteService) Show(ctx context.Context, principal entity.Principal, id uuid.UUID) (*dto.ShowStrategyNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.StrategyNoteRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.FilterBy{Field: "company_id", Value: principal.CompanyId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNotFound
	}
	return toStrategyNoteResponse(note), nil
}

func (s *strategyNoteService) Update(ctx context.Context, principal entity.Principal, req *dto.UpdateStrategyNoteRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.StrategyNoteRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.FilterBy{Field: "company_id", Value: principal.CompanyId},
	)
	if err != nil {
		return err
	}
	if note == nil {
		return ErrNotFound
	}
	if note.AuthorId != principal.UserId && !principal.IsAdmin() {
		return ErrForbidden
	}

	now := time.Now()
	note.Title = req.Title
	note.Content = req.Content
	note.UpdatedAt = &now

	return uow.StrategyNoteRepository().Update(ctx, note)
}

func (s *strategyNoteService) Delete(ctx context.Context, principal entity.Principal, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.StrategyNoteRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.FilterBy{Field: "company_id", Value: principal.CompanyId},
	)
	if err != nil {
		return err
	}
	if note == nil {
		return ErrNotFound
	}
	if note.AuthorId != principal.UserId && !principal.IsAdmin() {
		return ErrForbidden
	}

	return uow.StrategyNoteRepository().Delete(ctx, id)
}

func toStrategyNoteResponse(note *entity.StrategyNote) *dto.ShowStrategyNoteResponse {
	return &dto.ShowStrategyNoteResponse{
		Id:        note.Id,
		AuthorId:  note.AuthorId,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}
