package movie

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/EgorLis/movie-catalog/internal/domain"
)

// id из path-параметра; невалидный формат — ErrBadParams
func movieIDFromPath(r *http.Request) (domain.MovieID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, domain.ErrBadParams
	}
	return id, nil
}

func viewsOf(movies []domain.Movie) []domain.MovieView {
	out := make([]domain.MovieView, 0, len(movies))
	for _, m := range movies {
		out = append(out, m.View())
	}
	return out
}
