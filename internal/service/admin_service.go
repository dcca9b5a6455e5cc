package service

import (
	"context"

	"bizhub-be/internal/dto"
	"bizhub-be/internal/pkg/logger"
	"bizhub-be/internal/repository/specification"
	"bizhub-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IAdminService interface {
	GetLogs(ctx context.Context, level string, limit, offset int) ([]dto.LogListResponse, error)
	GetLogById(ctx context.Context, id string) (*dto.LogDetailResponse, error)
	ListCompanies(ctx context.Context) ([]*dto.AdminCompanyListItem, error)
	ListUsers(ctx context.Context, companyId uuid.UUID) ([]*dto.AdminUserListItem, error)
	UpdateUserStatus(ctx context.Context, req *dto.UpdateUserStatusRequest) error
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		log:        log,
	}
}

func (s *adminService) GetLogs(ctx context.Context, level string, limit, offset int) ([]dto.LogListResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	entries, err := s.log.GetLogs(level, limit, offset)
	if err != nil {
		return nil, err
	}

	items := make([]dto.LogListResponse, 0, len(entries))
	for _, entry := range entries {
		items = append(items, dto.LogListResponse{
			Id:        entry.Id,
			Level:     entry.Level,
			Module:    entry.Module,
			Message:   entry.Message,
			Timestamp: entry.Timestamp,
		})
	}
	return items, nil
}

func (s *adminService) GetLogById(ctx context.Context, id string) (*dto.LogDetailResponse, error) {
	entry, err := s.log.GetLogById(id)
	if err != nil {
		return nil, err
	}
	return &dto.LogDetailResponse{
		LogListResponse: dto.LogListResponse{
			Id:        entry.Id,
			Level:     entry.Level,
			Module:    entry.Module,
			Message:   entry.Message,
			Timestamp: entry.Timestamp,
		},
		Details: entry.Details,
	}, nil
}

func (s *adminService) ListCompanies(ctx context.Context) ([]*dto.AdminCompanyListItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	companies, err := uow.CompanyRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.AdminCompanyListItem, 0, len(companies))
	for _, company := range companies {
		userCount, err := uow.UserRepository().Count(ctx, specification.ByCompany{CompanyID: company.Id})
		if err != nil {
			return nil, err
		}
		items = append(items, &dto.AdminCompanyListItem{
			Id:        company.Id,
			Name:      company.Name,
			Industry:  company.Industry,
			UserCount: userCount,
			CreatedAt: company.CreatedAt,
		})
	}
	return items, nil
}

func (s *adminService) ListUsers(ctx context.Context, companyId uuid.UUID) ([]*dto.AdminUserListItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if companyId != uuid.Nil {
		specs = append(specs, specification.ByCompany{CompanyID: companyId})
	}

	users, err := uow.UserRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.AdminUserListItem, 0, len(users))
	for _, user := range users {
		items = append(items, &dto.AdminUserListItem{
			Id:        user.Id,
			Email:     user.Email,
			FullName:  user.FullName,
			Role:      string(user.Role),
			Status:    string(user.Status),
			CreatedAt: user.CreatedAt,
		})
	}
	return items, nil
}

func (s *adminService) UpdateUserStatus(ctx context.Context, req *dto.UpdateUserStatusRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}

	return uow.UserRepository().UpdateStatus(ctx, user.Id, req.Status)
}
