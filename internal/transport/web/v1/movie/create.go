package movie

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/EgorLis/movie-catalog/internal/domain"
	"github.com/EgorLis/movie-catalog/internal/transport/web/logx"
	"github.com/EgorLis/movie-catalog/internal/transport/web/mw"
	v1 "github.com/EgorLis/movie-catalog/internal/transport/web/v1"
)

// Create godoc
// @Summary     Create movie
// @Tags        movies
// @Accept      json
// @Produce     json
// @Param       body body movie.CreateIn true "movie fields"
// @Success     200 {object} domain.APIEnvelope{data=domain.Movie}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Router      /v1/movies [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "movies.create"
	reqID := mw.RequestIDFromCtx(r.Context())

	var in CreateIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		logx.Error(h.Log, reqID, op, "bad body", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}
	in.Title = strings.TrimSpace(in.Title)
	in.Name = strings.TrimSpace(in.Name)
	if in.Title == "" {
		logx.Error(h.Log, reqID, op, "empty title", domain.ErrBadParams)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	m, err := h.Movies.CreateMovie(r.Context(), in.Name, in.Title)
	if err != nil {
		logx.Error(h.Log, reqID, op, "db create failed", err)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	// Новая запись делает закэшированный список устаревшим
	if err := h.Cache.Del(r.Context(), domain.CacheKeyMovieList()); err != nil {
		logx.Error(h.Log, reqID, op, "cache del failed", err, "movie_id", m.ID)
	}

	logx.Info(h.Log, reqID, op, "ok", "movie_id", m.ID, "title", m.Title)
	v1.WriteOKData(w, r, m)
}

type CreateIn struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}
