package domain

import "context"

// Фиксированный лимит выдачи списка (из ТЗ, пагинации нет)
const ListLimit = 10

type MoviesRepo interface {
	Close()
	Ping(context.Context) error

	// Список: не более limit записей, новые сверху
	MoviesList(ctx context.Context, limit int) ([]Movie, error)
	// При отсутствии записи возвращает ErrNotFound
	MovieByID(ctx context.Context, id MovieID) (Movie, error)
	CreateMovie(ctx context.Context, name, title string) (Movie, error)
	// Частичное обновление: только title. Нулевой Matched — не ошибка.
	UpdateTitle(ctx context.Context, id MovieID, title string) (UpdateSummary, error)
	DeleteMovie(ctx context.Context, id MovieID) (DeleteSummary, error)
}
