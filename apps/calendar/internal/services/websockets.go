package services

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	wstools "github.com/xdoubleu/essentia/v2/pkg/communication/wstools"

	"github.com/dallinbsmith/tava-team-dashboard-sub001/apps/calendar/internal/dtos"
)

const (
	CalendarTopic = "calendar"
	TimeOffTopic  = "time_off"
)

// WebSocketService pushes refresh hints to open dashboards after a
// mutation so they refetch instead of showing stale data.
type WebSocketService struct {
	allowedOrigins []string
	handler        *wstools.WebSocketHandler[dtos.SubscribeMessageDto]

	mu          sync.Mutex
	topics      map[string]*wstools.Topic
	lastChanged map[string]time.Time
}

func NewWebSocketService(
	logger *slog.Logger,
	allowedOrigins []string,
) *WebSocketService {
	service := WebSocketService{
		allowedOrigins: allowedOrigins,
		handler:        nil,
		mu:             sync.Mutex{},
		topics:         make(map[string]*wstools.Topic),
		lastChanged:    make(map[string]time.Time),
	}

	handler := wstools.CreateWebSocketHandler[dtos.SubscribeMessageDto](
		logger,
		1,
		100, //nolint:mnd //no magic number
	)

	service.handler = &handler

	return &service
}

func (service *WebSocketService) Handler() http.HandlerFunc {
	return service.handler.Handler()
}

// NotifyChanged broadcasts a refresh hint on the resource's topic.
func (service *WebSocketService) NotifyChanged(resource string) {
	service.mu.Lock()
	topic, ok := service.topics[resource]
	if !ok {
		service.mu.Unlock()
		return
	}

	now := time.Now()
	service.lastChanged[resource] = now
	service.mu.Unlock()

	topic.EnqueueEvent(dtos.RefreshMessageDto{
		Resource:    resource,
		LastChanged: &now,
	})
}

func (service *WebSocketService) RegisterTopics(topics []string) {
	for _, topic := range topics {
		registeredTopic, err := service.handler.AddTopic(
			topic,
			service.allowedOrigins,
			func(_ context.Context, tp *wstools.Topic) (any, error) {
				return service.fetchState(tp), nil
			},
		)
		if err != nil {
			panic(err)
		}
		service.topics[topic] = registeredTopic
	}
}

func (service *WebSocketService) fetchState(
	topic *wstools.Topic,
) dtos.RefreshMessageDto {
	service.mu.Lock()
	defer service.mu.Unlock()

	var lastChanged *time.Time
	if changed, ok := service.lastChanged[topic.Name]; ok {
		lastChanged = &changed
	}

	return dtos.RefreshMessageDto{
		Resource:    topic.Name,
		LastChanged: lastChanged,
	}
}
