package domain

import (
	"time"

	"github.com/google/uuid"
)

// Базовый идентификатор
type MovieID = uuid.UUID

// Фильм — как хранится в БД
type Movie struct {
	ID        MovieID   `json:"id"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"updated"`
}

// Урезанная проекция для списков
type MovieView struct {
	ID    MovieID `json:"id"`
	Name  string  `json:"name"`
	Title string  `json:"title"`
}

func (m Movie) View() MovieView {
	return MovieView{ID: m.ID, Name: m.Name, Title: m.Title}
}

// Итоги мутаций (наружу уходят как response)
type UpdateSummary struct {
	Matched  int64 `json:"matched"`
	Modified int64 `json:"modified"`
}

type DeleteSummary struct {
	Deleted int64 `json:"deleted"`
}
