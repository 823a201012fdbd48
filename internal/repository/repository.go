package repository

import (
	"context"
	"errors"

	"github.com/jaqueline-monteiro/goldencity-memo-api/internal/model"
)

// ErrNoteNotFound возвращается, когда заметка не найдена.
// Это штатный результат, а не сбой хранилища: вызывающие отличают его
// от прочих ошибок через errors.Is.
var ErrNoteNotFound = errors.New("note not found")

// NoteRepository интерфейс для работы с заметками в хранилище
type NoteRepository interface {
	// Create сохраняет новую заметку, присваивая ей UUID и временные метки,
	// и возвращает созданную заметку
	Create(ctx context.Context, note model.Note) (model.Note, error)

	// GetByID возвращает заметку по её ID
	GetByID(ctx context.Context, id string) (model.Note, error)

	// List возвращает снимок всех заметок, отсортированный по дате создания
	// (новые первыми)
	List(ctx context.Context) ([]model.Note, error)

	// Update применяет частичное обновление к заметке с указанным ID
	// и возвращает обновленную заметку
	Update(ctx context.Context, id string, patch model.NotePatch) (model.Note, error)

	// Delete удаляет заметку по ID и сообщает, была ли она удалена.
	// Отсутствие заметки здесь сигнализируется через false, а не через ошибку —
	// это намеренное отличие контракта от GetByID/Update.
	Delete(ctx context.Context, id string) (bool, error)

	// Clear безусловно удаляет все заметки (используется для сброса состояния)
	Clear(ctx context.Context) error
}
