package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"bizhub-be/internal/dto"
	"bizhub-be/internal/entity"
	"bizhub-be/internal/pkg/logger"
	"bizhub-be/internal/repository/specification"
	"bizhub-be/internal/repository/unitofwork"
	"bizhub-be/pkg/access"
	"bizhub-be/pkg/events"
	pktNats "bizhub-be/pkg/nats"

	"github.com/google/uuid"
)

var (
	ErrForbidden = errors.New("access denied")
	ErrNotFound  = errors.New("not found")
)

type IDocumentService interface {
	Upload(ctx context.Context, principal entity.Principal, fileName, mimeType string, content []byte) (*dto.UploadDocumentResponse, error)
	List(ctx context.Context, principal entity.Principal) ([]*dto.DocumentListItem, error)
	Show(ctx context.Context, principal entity.Principal, id uuid.UUID) (*dto.ShowDocumentResponse, error)
	Download(ctx context.Context, principal entity.Principal, id uuid.UUID) (fileName string, content []byte, err error)
	Share(ctx context.Context, principal entity.Principal, req *dto.ShareDocumentRequest) error
	Unshare(ctx context.Context, principal entity.Principal, req *dto.UnshareDocumentRequest) error
	Delete(ctx context.Context, principal entity.Principal, id uuid.UUID) error
}

type documentService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	evaluator        *access.Evaluator
	storageDir       string
	log              logger.ILogger
}

func NewDocumentService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	storageDir string,
	log logger.ILogger,
) IDocumentService {
	return &documentService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		evaluator:        access.NewEvaluator(),
		storageDir:       storageDir,
		log:              log,
	}
}

func (s *documentService) Upload(ctx context.Context, principal entity.Principal, fileName, mimeType string, content []byte) (*dto.UploadDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	docId := uuid.New()
	dir := filepath.Join(s.storageDir, principal.CompanyId.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("prepare storage dir: %w", err)
	}
	storagePath := filepath.Join(dir, fmt.Sprintf("%s_%s", docId, fileName))
	if err := os.WriteFile(storagePath, content, 0o644); err != nil {
		return nil, fmt.Errorf("store file: %w", err)
	}

	doc := &entity.Document{
		Id:          docId,
		CompanyId:   principal.CompanyId,
		OwnerId:     principal.UserId,
		FileName:    fileName,
		StoragePath: storagePath,
		MimeType:    mimeType,
		FileSize:    int64(len(content)),
		SharedWith:  []uuid.UUID{},
		CreatedAt:   time.Now(),
	}

	if err := uow.DocumentRepository().Create(ctx, doc); err != nil {
		_ = os.Remove(storagePath)
		return nil, err
	}

	// Extraction runs async; upload success never depends on it.
	msgJson, err := json.Marshal(dto.ParseDocumentMessage{DocumentId: doc.Id})
	if err != nil {
		return nil, err
	}
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		s.log.Error("document", "Failed to enqueue extraction", map[string]interface{}{
			"document_id": doc.Id,
			"error":       err.Error(),
		})
	}

	if s.eventPublisher != nil {
		evt := events.DocumentUploaded(doc.Id, doc.OwnerId, doc.FileName)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("document", "Failed to publish upload event", map[string]interface{}{
				"document_id": doc.Id,
				"error":       err.Error(),
			})
		}
	}

	return &dto.UploadDocumentResponse{Id: doc.Id, FileName: doc.FileName}, nil
}

func (s *documentService) List(ctx context.Context, principal entity.Principal) ([]*dto.DocumentListItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.DocumentsInCompany{CompanyID: principal.CompanyId},
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if !principal.IsAdmin() {
		specs = append(specs, specification.AccessibleBy{UserID: principal.UserId})
	}

	docs, err := uow.DocumentRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.DocumentListItem, 0, len(docs))
	for _, doc := range docs {
		items = append(items, &dto.DocumentListItem{
			Id:          doc.Id,
			FileName:    doc.FileName,
			MimeType:    doc.MimeType,
			FileSize:    doc.FileSize,
			OwnerId:     doc.OwnerId,
			Parsed:      doc.ParsedContent != nil,
			SharedCount: len(doc.SharedWith),
			CreatedAt:   doc.CreatedAt,
		})
	}
	return items, nil
}

// loadAuthorized fetches the document and runs the access decision for the
// principal. The document is fetched without tenant filters on purpose; the
// evaluator is the single place the cross-tenant rule lives.
func (s *documentService) loadAuthorized(ctx context.Context, uow unitofwork.UnitOfWork, principal entity.Principal, id uuid.UUID) (*entity.Document, error) {
	doc, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrNotFound
	}

	decision, err := s.evaluator.Evaluate(principal, doc)
	if err != nil {
		return nil, err
	}
	if !decision.Allow {
		s.log.Info("document", "Access denied", map[string]interface{}{
			"document_id": doc.Id,
			"user_id":     principal.UserId,
			"reason":      decision.Reason,
		})
		return nil, ErrForbidden
	}
	return doc, nil
}

func (s *documentService) Show(ctx context.Context, principal entity.Principal, id uuid.UUID) (*dto.ShowDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	doc, err := s.loadAuthorized(ctx, uow, principal, id)
	if err != nil {
		return nil, err
	}

	return &dto.ShowDocumentResponse{
		Id:            doc.Id,
		FileName:      doc.FileName,
		MimeType:      doc.MimeType,
		FileSize:      doc.FileSize,
		OwnerId:       doc.OwnerId,
		ParsedContent: doc.ParsedContent,
		ParseMethod:   doc.ParseMethod,
		SharedWith:    doc.SharedWith,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}, nil
}

func (s *documentService) Download(ctx context.Context, principal entity.Principal, id uuid.UUID) (string, []byte, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	doc, err := s.loadAuthorized(ctx, uow, principal, id)
	if err != nil {
		return "", nil, err
	}

	content, err := os.ReadFile(doc.StoragePath)
	if err != nil {
		return "", nil, fmt.Errorf("read stored file: %w", err)
	}
	return doc.FileName, content, nil
}

func (s *documentService) Share(ctx context.Context, principal entity.Principal, req *dto.ShareDocumentRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return err
	}
	if doc == nil {
		return ErrNotFound
	}
	if doc.OwnerId != principal.UserId {
		return ErrForbidden
	}

	// Targets must be active members of the same company.
	targets, err := uow.UserRepository().FindAll(ctx,
		specification.ByIDs{IDs: req.UserIds},
		specification.ByCompany{CompanyID: doc.CompanyId},
	)
	if err != nil {
		return err
	}
	if len(targets) != len(req.UserIds) {
		return errors.New("one or more target users not found in company")
	}

	updated := doc.SharedWith
	for _, target := range targets {
		if target.Id == doc.OwnerId {
			// The owner already has full access; never list them as a sharee.
			continue
		}
		if !doc.IsSharedWith(target.Id) {
			updated = append(updated, target.Id)
		}
	}

	if err := uow.DocumentRepository().UpdateSharedWith(ctx, doc.Id, updated); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		for _, target := range targets {
			if target.Id == doc.OwnerId {
				continue
			}
			evt := events.DocumentShared(doc.Id, doc.OwnerId, target.Id, doc.FileName)
			if err := s.eventPublisher.Publish(ctx, evt); err != nil {
				s.log.Warn("document", "Failed to publish share event", map[string]interface{}{
					"document_id": doc.Id,
					"error":       err.Error(),
				})
			}
		}
	}
	return nil
}

func (s *documentService) Unshare(ctx context.Context, principal entity.Principal, req *dto.UnshareDocumentRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return err
	}
	if doc == nil {
		return ErrNotFound
	}
	if doc.OwnerId != principal.UserId {
		return ErrForbidden
	}

	remove := make(map[uuid.UUID]bool, len(req.UserIds))
	for _, id := range req.UserIds {
		remove[id] = true
	}

	updated := make([]uuid.UUID, 0, len(doc.SharedWith))
	for _, id := range doc.SharedWith {
		if !remove[id] {
			updated = append(updated, id)
		}
	}

	return uow.DocumentRepository().UpdateSharedWith(ctx, doc.Id, updated)
}

func (s *documentService) Delete(ctx context.Context, principal entity.Principal, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if doc == nil {
		return ErrNotFound
	}
	if doc.OwnerId != principal.UserId {
		// Company admins can delete inside their own tenant.
		if !principal.IsAdmin() || principal.CompanyId != doc.CompanyId {
			return ErrForbidden
		}
	}

	if err := uow.DocumentRepository().Delete(ctx, doc.Id); err != nil {
		return err
	}

	if err := os.Remove(doc.StoragePath); err != nil && !os.IsNotExist(err) {
		s.log.Warn("document", "Failed to remove stored file", map[string]interface{}{
			"document_id": doc.Id,
			"path":        doc.StoragePath,
			"error":       err.Error(),
		})
	}
	return nil
}
