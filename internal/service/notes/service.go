package notes

import (
	"context"

	"github.com/jaqueline-monteiro/goldencity-memo-api/internal/model"
	"github.com/jaqueline-monteiro/goldencity-memo-api/internal/repository"
	svc "github.com/jaqueline-monteiro/goldencity-memo-api/internal/service"

	"github.com/rs/zerolog"
)

var _ svc.NoteService = (*service)(nil)

type service struct {
	noteRepository repository.NoteRepository
	events         *EventService
	log            zerolog.Logger
}

// NewNoteService создает новый экземпляр сервиса для работы с заметками.
// events может быть nil, если публикация событий не нужна (например, в тестах).
func NewNoteService(noteRepository repository.NoteRepository, events *EventService, log zerolog.Logger) svc.NoteService {
	return &service{
		noteRepository: noteRepository,
		events:         events,
		log:            log,
	}
}

// Create создает новую заметку с указанными title и content.
// Валидация входных данных выполняется здесь, до обращения к хранилищу.
func (s *service) Create(ctx context.Context, title, content string) (model.Note, error) {
	if err := model.ValidateTitle(title); err != nil {
		return model.Note{}, err
	}
	if err := model.ValidateContent(content); err != nil {
		return model.Note{}, err
	}

	note := model.Note{
		Title:   title,
		Content: content,
	}

	// UUID и временные метки присваивает репозиторий
	createdNote, err := s.noteRepository.Create(ctx, note)
	if err != nil {
		return model.Note{}, err
	}

	s.log.Info().Str("id", createdNote.ID).Msg("note created")
	s.publish(EventCreated, createdNote)

	return createdNote, nil
}

// Get возвращает заметку по её ID
func (s *service) Get(ctx context.Context, id string) (model.Note, error) {
	note, err := s.noteRepository.GetByID(ctx, id)
	if err != nil {
		return model.Note{}, err
	}

	return note, nil
}

// List возвращает список всех заметок (новые первыми)
func (s *service) List(ctx context.Context) ([]model.Note, error) {
	notes, err := s.noteRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	return notes, nil
}

// Update применяет частичное обновление к заметке с указанным ID.
// Заданные поля патча должны быть валидны; незаданные остаются нетронутыми.
// Пустой патч допустим — он лишь обновляет updated_at.
func (s *service) Update(ctx context.Context, id string, patch model.NotePatch) (model.Note, error) {
	if err := patch.Validate(); err != nil {
		return model.Note{}, err
	}

	updatedNote, err := s.noteRepository.Update(ctx, id, patch)
	if err != nil {
		return model.Note{}, err
	}

	s.log.Info().Str("id", updatedNote.ID).Msg("note updated")
	s.publish(EventUpdated, updatedNote)

	return updatedNote, nil
}

// Delete удаляет заметку по ID и сообщает, была ли она удалена
func (s *service) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.noteRepository.Delete(ctx, id)
	if err != nil {
		return false, err
	}

	if deleted {
		s.log.Info().Str("id", id).Msg("note deleted")
		// Заметки больше нет, в событии доступен только её ID
		s.publish(EventDeleted, model.Note{ID: id})
	}

	return deleted, nil
}

// Clear удаляет все заметки
func (s *service) Clear(ctx context.Context) error {
	if err := s.noteRepository.Clear(ctx); err != nil {
		return err
	}

	s.log.Info().Msg("all notes cleared")

	return nil
}

func (s *service) publish(eventType EventType, note model.Note) {
	if s.events == nil {
		return
	}
	s.events.Publish(NoteEvent{Type: eventType, Note: note})
}
