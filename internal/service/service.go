package service

import (
	"context"

	"github.com/jaqueline-monteiro/goldencity-memo-api/internal/model"
)

// NoteService интерфейс для бизнес-логики работы с заметками
type NoteService interface {
	// Create создает новую заметку с указанными title и content
	Create(ctx context.Context, title, content string) (model.Note, error)

	// Get возвращает заметку по её ID
	Get(ctx context.Context, id string) (model.Note, error)

	// List возвращает список всех заметок (новые первыми)
	List(ctx context.Context) ([]model.Note, error)

	// Update применяет частичное обновление к заметке с указанным ID
	Update(ctx context.Context, id string, patch model.NotePatch) (model.Note, error)

	// Delete удаляет заметку по ID и сообщает, была ли она удалена
	Delete(ctx context.Context, id string) (bool, error)

	// Clear удаляет все заметки
	Clear(ctx context.Context) error
}
