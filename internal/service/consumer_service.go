package service

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"bizhub-be/internal/dto"
	"bizhub-be/internal/pkg/logger"
	"bizhub-be/internal/repository/specification"
	"bizhub-be/internal/repository/unitofwork"
	"bizhub-be/pkg/events"
	"bizhub-be/pkg/extraction"
	pktNats "bizhub-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	pipeline       *extraction.Pipeline
	maxCharacters  int
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	pipeline *extraction.Pipeline,
	maxCharacters int,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		uowFactory:     uowFactory,
		pipeline:       pipeline,
		maxCharacters:  maxCharacters,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ParseDocumentMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("extraction", "Failed to unmarshal message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // invalid messages never become valid, do not retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: payload.DocumentId})
	if err != nil {
		cs.log.Error("extraction", "Failed to load document", map[string]interface{}{
			"document_id": payload.DocumentId,
			"error":       err.Error(),
		})
		msg.Nack()
		return
	}
	if doc == nil {
		// Deleted between upload and processing.
		msg.Ack()
		return
	}

	content, err := os.ReadFile(doc.StoragePath)
	if err != nil {
		cs.log.Error("extraction", "Failed to read stored file", map[string]interface{}{
			"document_id": doc.Id,
			"path":        doc.StoragePath,
			"error":       err.Error(),
		})
		msg.Nack()
		return
	}

	start := time.Now()
	result, err := cs.pipeline.Extract(ctx, content, doc.FileName, extraction.Options{
		MaxCharacters: cs.maxCharacters,
	})
	if err != nil {
		// The document stays usable without parsed text.
		cs.log.Warn("extraction", "Extraction failed, keeping document unparsed", map[string]interface{}{
			"document_id": doc.Id,
			"file_name":   doc.FileName,
			"error":       err.Error(),
		})
		cs.publishParsed(ctx, doc.Id, doc.OwnerId, "", false)
		msg.Ack()
		return
	}

	if err := uow.DocumentRepository().UpdateParsedContent(ctx, doc.Id, result.Text, string(result.Method)); err != nil {
		cs.log.Error("extraction", "Failed to persist parsed content", map[string]interface{}{
			"document_id": doc.Id,
			"error":       err.Error(),
		})
		msg.Nack()
		return
	}

	cs.log.Info("extraction", "Document parsed", map[string]interface{}{
		"document_id": doc.Id,
		"method":      string(result.Method),
		"truncated":   result.Truncated,
		"chars":       len(result.Text),
		"elapsed_ms":  time.Since(start).Milliseconds(),
	})

	cs.publishParsed(ctx, doc.Id, doc.OwnerId, string(result.Method), true)
	msg.Ack()
}

func (cs *consumerService) publishParsed(ctx context.Context, docId, ownerId uuid.UUID, method string, ok bool) {
	if cs.eventPublisher == nil {
		return
	}
	evt := events.DocumentParsed(docId, ownerId, method, ok)
	if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
		cs.log.Warn("extraction", "Failed to publish parse event", map[string]interface{}{
			"document_id": docId,
			"error":       err.Error(),
		})
	}
}
