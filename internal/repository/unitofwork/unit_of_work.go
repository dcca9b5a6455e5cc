package unitofwork

import (
	"context"

	"bizhub-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	CompanyRepository() contract.CompanyRepository
	DocumentRepository() contract.DocumentRepository
	StrategyNoteRepository() contract.StrategyNoteRepository
	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	CompanyNewsRepository() contract.CompanyNewsRepository
}
