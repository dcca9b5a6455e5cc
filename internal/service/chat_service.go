package service

import (
	"context"
	"time"

	"bizhub-be/internal/dto"
	"bizhub-be/internal/entity"
	"bizhub-be/internal/pkg/logger"
	"bizhub-be/internal/repository/memory"
	"bizhub-be/internal/repository/specification"
	"bizhub-be/internal/repository/unitofwork"
	"bizhub-be/pkg/gemini"
	"bizhub-be/pkg/store"

	"github.com/google/uuid"
)

type IChatService interface {
	CreateSession(ctx context.Context, principal entity.Principal, req *dto.CreateChatSessionRequest) (*dto.CreateChatSessionResponse, error)
	ListSessions(ctx context.Context, principal entity.Principal) ([]*dto.ChatSessionListItem, error)
	GetMessages(ctx context.Context, principal entity.Principal, sessionId uuid.UUID) ([]*dto.ChatMessageItem, error)
	SendMessage(ctx context.Context, principal entity.Principal, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	DeleteSession(ctx context.Context, principal entity.Principal, sessionId uuid.UUID) error
}

type chatService struct {
	uowFactory  unitofwork.RepositoryFactory
	gemini      *gemini.Client
	sessionRepo *memory.SessionRepository
	log         logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	geminiClient *gemini.Client,
	sessionRepo *memory.SessionRepository,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:  uowFactory,
		gemini:      geminiClient,
		sessionRepo: sessionRepo,
		log:         log,
	}
}

func (s *chatService) CreateSession(ctx context.Context, principal entity.Principal, req *dto.CreateChatSessionRequest) (*dto.CreateChatSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	title := req.Title
	if title == "" {
		title = "New Chat"
	}

	session := &entity.ChatSession{
		Id:        uuid.New(),
		CompanyId: principal.CompanyId,
		UserId:    principal.UserId,
		Title:     title,
		CreatedAt: time.Now(),
	}

	if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}
	return &dto.CreateChatSessionResponse{Id: session.Id}, nil
}

func (s *chatService) ListSessions(ctx context.Context, principal entity.Principal) ([]*dto.ChatSessionListItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.SessionsOwnedBy{UserID: principal.UserId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ChatSessionListItem, 0, len(sessions))
	for _, session := range sessions {
		items = append(items, &dto.ChatSessionListItem{
			Id:        session.Id,
			Title:     session.Title,
			CreatedAt: session.CreatedAt,
		})
	}
	return items, nil
}

func (s *chatService) ownedSession(ctx context.Context, uow unitofwork.UnitOfWork, principal entity.Principal, sessionId uuid.UUID) (*entity.ChatSession, error) {
	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.SessionsOwnedBy{UserID: principal.UserId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNotFound
	}
	return session, nil
}

func (s *chatService) GetMessages(ctx context.Context, principal entity.Principal, sessionId uuid.UUID) ([]*dto.ChatMessageItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.ownedSession(ctx, uow, principal, sessionId); err != nil {
		return nil, err
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ChatMessageItem, 0, len(messages))
	for _, msg := range messages {
		items = append(items, &dto.ChatMessageItem{
			Id:        msg.Id,
			Role:      msg.Role,
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
		})
	}
	return items, nil
}

func (s *chatService) SendMessage(ctx context.Context, principal entity.Principal, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.ownedSession(ctx, uow, principal, req.SessionId)
	if err != nil {
		return nil, err
	}

	state, err := s.sessionState(ctx, uow, session)
	if err != nil {
		return nil, err
	}
	state.Append(entity.ChatRoleUser, req.Message)

	turns := make([]gemini.ChatTurn, 0, len(state.History))
	for _, turn := range state.History {
		turns = append(turns, gemini.ChatTurn{Role: turn.Role, Text: turn.Text})
	}

	reply, err := s.gemini.Chat(ctx, turns)
	if err != nil {
		s.log.Error("chat", "Model call failed", map[string]interface{}{
			"session_id": session.Id,
			"error":      err.Error(),
		})
		return nil, err
	}

	userMsg := &entity.ChatMessage{
		Id:        uuid.New(),
		SessionId: session.Id,
		Role:      entity.ChatRoleUser,
		Content:   req.Message,
		CreatedAt: time.Now(),
	}
	assistantMsg := &entity.ChatMessage{
		Id:        uuid.New(),
		SessionId: session.Id,
		Role:      entity.ChatRoleAssistant,
		Content:   reply,
		CreatedAt: time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().Create(ctx, userMsg); err != nil {
		return nil, err
	}
	if err := uow.ChatMessageRepository().Create(ctx, assistantMsg); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	state.Append(entity.ChatRoleAssistant, reply)
	state.LastQuery = req.Message
	s.sessionRepo.Save(state)

	return &dto.SendMessageResponse{SessionId: session.Id, Reply: reply}, nil
}

// sessionState returns the cached conversation window, rebuilding it from
// persisted messages on a cache miss.
func (s *chatService) sessionState(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.ChatSession) (*store.SessionState, error) {
	if state, ok := s.sessionRepo.Get(session.Id.String()); ok {
		return state, nil
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: session.Id},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	state := &store.SessionState{
		ID:     session.Id.String(),
		UserID: session.UserId.String(),
	}
	for _, msg := range messages {
		state.Append(msg.Role, msg.Content)
	}
	return state, nil
}

func (s *chatService) DeleteSession(ctx context.Context, principal entity.Principal, sessionId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.ownedSession(ctx, uow, principal, sessionId)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().DeleteBySessionId(ctx, session.Id); err != nil {
		return err
	}
	if err := uow.ChatSessionRepository().Delete(ctx, session.Id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.sessionRepo.Delete(session.Id.String())
	return nil
}
