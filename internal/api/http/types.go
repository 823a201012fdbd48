package http

import (
	"github.com/jaqueline-monteiro/goldencity-memo-api/internal/model"
)

// createNoteRequest тело запроса POST /notes
type createNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// updateNoteRequest тело запроса PUT /notes/{id}.
// Указатели различают "поле отсутствует" (nil, оставить без изменений)
// и "поле передано" — это основа семантики частичного обновления.
type updateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// toPatch конвертирует тело запроса в доменный патч
func (r updateNoteRequest) toPatch() model.NotePatch {
	return model.NotePatch{
		Title:   r.Title,
		Content: r.Content,
	}
}

// healthResponse тело ответа health-check эндпоинта
type healthResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

// errorResponse тело ответа при ошибке
type errorResponse struct {
	Detail string `json:"detail"`
}
