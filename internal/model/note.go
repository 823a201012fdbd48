package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxTitleLength максимальная длина заголовка заметки (в символах)
const MaxTitleLength = 200

// ErrValidation базовая ошибка валидации входных данных.
// Конкретные ошибки валидации оборачивают её, поэтому на границе API
// достаточно проверки errors.Is(err, ErrValidation).
var ErrValidation = errors.New("validation error")

// Ошибки валидации полей заметки
var (
	ErrEmptyTitle   = fmt.Errorf("%w: title cannot be empty", ErrValidation)
	ErrTitleTooLong = fmt.Errorf("%w: title cannot exceed %d characters", ErrValidation, MaxTitleLength)
	ErrEmptyContent = fmt.Errorf("%w: content cannot be empty", ErrValidation)
)

// Note представляет заметку (доменная модель)
type Note struct {
	ID        string    `json:"id"`         // UUID заметки
	Title     string    `json:"title"`      // Заголовок заметки
	Content   string    `json:"content"`    // Содержание заметки
	CreatedAt time.Time `json:"created_at"` // Дата создания
	UpdatedAt time.Time `json:"updated_at"` // Дата последнего обновления
}

// ValidateTitle проверяет, что заголовок не пустой и не длиннее MaxTitleLength символов
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

// ValidateContent проверяет, что содержание не пустое
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	return nil
}

// Validate проверяет валидность заметки
func (n *Note) Validate() error {
	if err := ValidateTitle(n.Title); err != nil {
		return err
	}
	return ValidateContent(n.Content)
}

// IsEmpty проверяет, пуста ли заметка
func (n *Note) IsEmpty() bool {
	return n.ID == "" && n.Title == "" && n.Content == ""
}

// NotePatch описывает частичное обновление заметки.
// nil-поле означает "оставить без изменений" (поле отсутствовало в запросе),
// что отличается от пустой строки: пустые значения отклоняются валидацией.
type NotePatch struct {
	Title   *string
	Content *string
}

// IsZero возвращает true, если ни одно поле патча не задано
func (p NotePatch) IsZero() bool {
	return p.Title == nil && p.Content == nil
}

// Validate проверяет только заданные поля патча
func (p NotePatch) Validate() error {
	if p.Title != nil {
		if err := ValidateTitle(*p.Title); err != nil {
			return err
		}
	}
	if p.Content != nil {
		if err := ValidateContent(*p.Content); err != nil {
			return err
		}
	}
	return nil
}
