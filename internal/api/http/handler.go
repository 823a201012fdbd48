package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/jaqueline-monteiro/goldencity-memo-api/internal/model"
	"github.com/jaqueline-monteiro/goldencity-memo-api/internal/repository"
	svc "github.com/jaqueline-monteiro/goldencity-memo-api/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// maxBodySize ограничение размера тела запроса (1 MiB)
const maxBodySize = 1 << 20

// Handler реализует HTTP обработчики Memo API
type Handler struct {
	noteService svc.NoteService
	apiTitle    string
	apiVersion  string
	log         zerolog.Logger
}

// NewHandler создает новый экземпляр HTTP хэндлера
func NewHandler(noteService svc.NoteService, apiTitle, apiVersion string, log zerolog.Logger) *Handler {
	return &Handler{
		noteService: noteService,
		apiTitle:    apiTitle,
		apiVersion:  apiVersion,
		log:         log,
	}
}

// Register регистрирует маршруты API на mux
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /notes", h.CreateNote)
	mux.HandleFunc("GET /notes", h.ListNotes)
	mux.HandleFunc("GET /notes/{id}", h.GetNote)
	mux.HandleFunc("PUT /notes/{id}", h.UpdateNote)
	mux.HandleFunc("DELETE /notes/{id}", h.DeleteNote)
	mux.HandleFunc("GET /{$}", h.Health)
}

// Health возвращает информацию об API и его состоянии
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Message: h.apiTitle,
		Version: h.apiVersion,
		Status:  "healthy",
	})
}

// CreateNote создает новую заметку
func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var req createNoteRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	note, err := h.noteService.Create(r.Context(), req.Title, req.Content)
	if err != nil {
		h.handleError(w, r, err, "Failed to create note")
		return
	}

	writeJSON(w, http.StatusCreated, note)
}

// ListNotes возвращает список всех заметок (новые первыми)
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.noteService.List(r.Context())
	if err != nil {
		h.handleError(w, r, err, "Failed to retrieve notes")
		return
	}

	writeJSON(w, http.StatusOK, notes)
}

// GetNote возвращает заметку по её UUID
func (h *Handler) GetNote(w http.ResponseWriter, r *http.Request) {
	id, ok := h.noteID(w, r)
	if !ok {
		return
	}

	note, err := h.noteService.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err, "Failed to retrieve note")
		return
	}

	writeJSON(w, http.StatusOK, note)
}

// UpdateNote применяет частичное обновление к заметке
func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	id, ok := h.noteID(w, r)
	if !ok {
		return
	}

	var req updateNoteRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	note, err := h.noteService.Update(r.Context(), id, req.toPatch())
	if err != nil {
		h.handleError(w, r, err, "Failed to update note")
		return
	}

	writeJSON(w, http.StatusOK, note)
}

// DeleteNote удаляет заметку по UUID
func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id, ok := h.noteID(w, r)
	if !ok {
		return
	}

	deleted, err := h.noteService.Delete(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err, "Failed to delete note")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Note not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// noteID извлекает и проверяет UUID заметки из пути запроса.
// Синтаксически невалидный ID — ошибка клиента (422), а не "не найдено":
// до хранилища такой запрос не доходит.
func (h *Handler) noteID(w http.ResponseWriter, r *http.Request) (string, bool) {
	raw := r.PathValue("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid note ID")
		return "", false
	}
	return id.String(), true
}

// decodeBody читает и декодирует JSON тело запроса (с лимитом размера)
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	defer r.Body.Close()
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body")
		return false
	}
	if err := json.Unmarshal(body, v); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body")
		return false
	}
	return true
}

// handleError отображает ошибки сервиса на HTTP статусы:
// валидация → 422, отсутствие заметки → 404, всё остальное → 500.
// Детали внутренних ошибок в ответ не попадают — только в лог.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error, detail string) {
	switch {
	case errors.Is(err, repository.ErrNoteNotFound):
		writeError(w, http.StatusNotFound, "Note not found")
	case isValidationError(err):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		h.log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("request failed")
		writeError(w, http.StatusInternalServerError, detail)
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, model.ErrValidation)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, detail string) {
	writeJSON(w, code, errorResponse{Detail: detail})
}
