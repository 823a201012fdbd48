package ws

import (
	"net/http"

	"github.com/jaqueline-monteiro/goldencity-memo-api/internal/service/notes"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// EventsHandler транслирует события изменения заметок в WebSocket соединения.
// Каждое соединение получает собственную подписку; отстающие клиенты
// пропускают события (буфер канала ограничен).
type EventsHandler struct {
	events   *notes.EventService
	upgrader websocket.Upgrader
	log      zerolog.Logger
}

// NewEventsHandler создает новый обработчик WebSocket событий.
// allowedOrigins — список разрешенных Origin; "*" разрешает все.
func NewEventsHandler(events *notes.EventService, allowedOrigins []string, log zerolog.Logger) *EventsHandler {
	return &EventsHandler{
		events: events,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
		log: log,
	}
}

// ServeHTTP обновляет соединение до WebSocket и стримит события заметок
// до закрытия соединения клиентом или остановки сервера.
func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade сам отвечает клиенту при ошибке
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	ch := h.events.Subscribe()
	defer h.events.Unsubscribe(ch)

	h.log.Info().Str("remote", r.RemoteAddr).Msg("events subscriber connected")

	// Горутина чтения: обнаруживает закрытие соединения клиентом
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				h.log.Warn().Err(err).Msg("failed to write event, dropping subscriber")
				return
			}
		case <-done:
			h.log.Info().Str("remote", r.RemoteAddr).Msg("events subscriber disconnected")
			return
		case <-r.Context().Done():
			return
		}
	}
}

// originChecker возвращает проверку Origin по списку разрешенных значений
func originChecker(allowedOrigins []string) func(r *http.Request) bool {
	allowAll := false
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		if origin == "*" {
			allowAll = true
		}
		allowed[origin] = true
	}

	return func(r *http.Request) bool {
		if allowAll {
			return true
		}
		origin := r.Header.Get("Origin")
		// Запросы без Origin (не из браузера) пропускаем
		if origin == "" {
			return true
		}
		return allowed[origin]
	}
}
