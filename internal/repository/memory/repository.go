package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jaqueline-monteiro/goldencity-memo-api/internal/model"
	"github.com/jaqueline-monteiro/goldencity-memo-api/internal/repository"

	"github.com/google/uuid"
)

var _ repository.NoteRepository = (*repo)(nil)

// repo хранит заметки в срезе в порядке вставки.
// Поиск линейный: хранилище сознательно имитирует "базу данных" без индексов,
// единственный ключ поиска — ID. Один мьютекс на всю коллекцию: операции
// короткие, не блокируются на I/O, более тонкая блокировка ничего не дает.
type repo struct {
	mu    sync.RWMutex
	notes []model.Note
}

// NewRepository создает новый экземпляр in-memory репозитория
func NewRepository() repository.NoteRepository {
	return &repo{}
}

// Create сохраняет новую заметку и возвращает её с присвоенным UUID.
// CreatedAt и UpdatedAt устанавливаются в один и тот же момент времени.
func (r *repo) Create(ctx context.Context, note model.Note) (model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Генерируем UUID если не передан
	if note.ID == "" {
		note.ID = uuid.New().String()
	}

	// Устанавливаем временные метки: при создании created_at == updated_at
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now().UTC()
	}
	note.UpdatedAt = note.CreatedAt

	r.notes = append(r.notes, note)

	return note, nil
}

// GetByID возвращает заметку по её ID (линейный поиск)
func (r *repo) GetByID(ctx context.Context, id string) (model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, note := range r.notes {
		if note.ID == id {
			return note, nil
		}
	}

	return model.Note{}, repository.ErrNoteNotFound
}

// List возвращает снимок всех заметок, новые первыми.
// Сортировка стабильная: заметки с одинаковым created_at сохраняют порядок вставки.
// Снимок не разделяет память с живой коллекцией — последующие мутации
// не меняют уже возвращенный срез.
func (r *repo) List(ctx context.Context) ([]model.Note, error) {
	r.mu.RLock()
	snapshot := make([]model.Note, len(r.notes))
	copy(snapshot, r.notes)
	r.mu.RUnlock()

	sort.SliceStable(snapshot, func(i, j int) bool {
		return snapshot[i].CreatedAt.After(snapshot[j].CreatedAt)
	})

	return snapshot, nil
}

// Update применяет частичное обновление: незаданные поля патча остаются
// нетронутыми, updated_at обновляется безусловно — даже если значения
// фактически не изменились.
func (r *repo) Update(ctx context.Context, id string, patch model.NotePatch) (model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.notes {
		if r.notes[i].ID != id {
			continue
		}

		if patch.Title != nil {
			r.notes[i].Title = *patch.Title
		}
		if patch.Content != nil {
			r.notes[i].Content = *patch.Content
		}
		r.notes[i].UpdatedAt = time.Now().UTC()

		return r.notes[i], nil
	}

	return model.Note{}, repository.ErrNoteNotFound
}

// Delete удаляет заметку по ID и возвращает true, если удаление произошло
func (r *repo) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.notes {
		if r.notes[i].ID == id {
			r.notes = append(r.notes[:i], r.notes[i+1:]...)
			return true, nil
		}
	}

	return false, nil
}

// Clear безусловно удаляет все заметки
func (r *repo) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notes = nil

	return nil
}
