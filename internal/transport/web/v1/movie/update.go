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

// Update godoc
// @Summary     Update movie title
// @Description Частичное обновление: только title. Инвалидирует оба ключа кэша.
// @Tags        movies
// @Accept      json
// @Produce     json
// @Param       id path string true "movie id (uuid)"
// @Param       body body movie.UpdateIn true "new title"
// @Success     200 {object} domain.APIEnvelope{response=domain.UpdateSummary}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Router      /v1/movies/{id} [patch]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "movies.update"
	reqID := mw.RequestIDFromCtx(r.Context())

	id, err := movieIDFromPath(r)
	if err != nil {
		logx.Error(h.Log, reqID, op, "bad movie id", err, "id_raw", r.PathValue("id"))
		v1.WriteDomainError(w, r, err)
		return
	}

	var in UpdateIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		logx.Error(h.Log, reqID, op, "bad body", err, "movie_id", id)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		logx.Error(h.Log, reqID, op, "empty title", domain.ErrBadParams, "movie_id", id)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	sum, err := h.Movies.UpdateTitle(r.Context(), id, in.Title)
	if err != nil {
		logx.Error(h.Log, reqID, op, "db update failed", err, "movie_id", id)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	// Инвалидация обоих ключей — безусловно, даже при Matched=0:
	// следующий читатель обязан увидеть состояние БД, а не кэша
	if err := h.Cache.Del(r.Context(), domain.CacheKeyMovie(id), domain.CacheKeyMovieList()); err != nil {
		logx.Error(h.Log, reqID, op, "cache del failed", err, "movie_id", id)
	}

	logx.Info(h.Log, reqID, op, "ok", "movie_id", id, "matched", sum.Matched)
	v1.WriteOKResponse(w, r, sum)
}

type UpdateIn struct {
	Title string `json:"title"`
}
