package service

import (
	"context"
	"fmt"

	"bizhub-be/internal/pkg/logger"
	"bizhub-be/internal/repository/specification"
	"bizhub-be/internal/repository/unitofwork"
	"bizhub-be/internal/websocket"
	"bizhub-be/pkg/events"
	pktNats "bizhub-be/pkg/nats"

	"github.com/google/uuid"
)

// NotificationDelivery is how real-time pushes reach clients, implemented by
// the websocket hub.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification websocket.Notification)
	Broadcast(notification websocket.Notification)
}

type NotificationService struct {
	uowFactory unitofwork.RepositoryFactory
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(
	uowFactory unitofwork.RepositoryFactory,
	sub *pktNats.Subscriber,
	delivery NotificationDelivery,
	log logger.ILogger,
) *NotificationService {
	return &NotificationService{
		uowFactory: uowFactory,
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus with a durable consumer.
func (s *NotificationService) Start() {
	if s.subscriber == nil {
		s.logger.Warn("notification", "No event subscriber configured, real-time pushes disabled", nil)
		return
	}
	err := s.subscriber.Subscribe("bizhub.events.>", "notif-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("notification", "Failed to start event subscriber", map[string]interface{}{"error": err.Error()})
		return
	}
	s.logger.Info("notification", "Listening for domain events", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	payload := event.Payload()

	switch event.EventType() {
	case events.TypeDocumentParsed:
		userId, ok := payloadUUID(payload, "user_id")
		if !ok {
			return nil
		}
		title := "Document ready"
		message := "Your document finished processing and its text is available."
		if success, _ := payload["success"].(bool); !success {
			title = "Document processing failed"
			message = "Your document was stored but its text could not be extracted."
		}
		s.delivery.Send(userId, websocket.Notification{
			Type:      event.EventType(),
			Title:     title,
			Message:   message,
			Data:      payload,
			CreatedAt: event.Timestamp(),
		})

	case events.TypeDocumentShared:
		userId, ok := payloadUUID(payload, "user_id")
		if !ok {
			return nil
		}
		fileName, _ := payload["file_name"].(string)
		s.delivery.Send(userId, websocket.Notification{
			Type:      event.EventType(),
			Title:     "Document shared with you",
			Message:   fmt.Sprintf("%q was shared with you.", fileName),
			Data:      payload,
			CreatedAt: event.Timestamp(),
		})

	case events.TypeNewsRefreshed:
		companyId, ok := payloadUUID(payload, "company_id")
		if !ok {
			return nil
		}
		if success, _ := payload["success"].(bool); !success {
			return nil
		}
		// Deliver to the one tenant only, never across companies.
		users, err := s.uowFactory.NewUnitOfWork(ctx).UserRepository().FindAll(ctx,
			specification.ByCompany{CompanyID: companyId},
		)
		if err != nil {
			s.logger.Error("notification", "Failed to resolve news recipients", map[string]interface{}{
				"company_id": companyId,
				"error":      err.Error(),
			})
			return err
		}
		date, _ := payload["news_date"].(string)
		for _, user := range users {
			s.delivery.Send(user.Id, websocket.Notification{
				Type:      event.EventType(),
				Title:     "Company news updated",
				Message:   fmt.Sprintf("Today's news digest (%s) is ready.", date),
				Data:      payload,
				CreatedAt: event.Timestamp(),
			})
		}
	}

	return nil
}

// payloadUUID reads a uuid that crossed the bus as a JSON string.
func payloadUUID(payload map[string]interface{}, key string) (uuid.UUID, bool) {
	raw, _ := payload[key].(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
