package movie

import (
	"net/http"

	"github.com/EgorLis/movie-catalog/internal/domain"
	"github.com/EgorLis/movie-catalog/internal/transport/web/logx"
	"github.com/EgorLis/movie-catalog/internal/transport/web/mw"
	v1 "github.com/EgorLis/movie-catalog/internal/transport/web/v1"
)

// Delete godoc
// @Summary     Delete movie
// @Description Инвалидирует оба ключа кэша.
// @Tags        movies
// @Produce     json
// @Param       id path string true "movie id (uuid)"
// @Success     200 {object} domain.APIEnvelope{response=domain.DeleteSummary}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Router      /v1/movies/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "movies.delete"
	reqID := mw.RequestIDFromCtx(r.Context())

	id, err := movieIDFromPath(r)
	if err != nil {
		logx.Error(h.Log, reqID, op, "bad movie id", err, "id_raw", r.PathValue("id"))
		v1.WriteDomainError(w, r, err)
		return
	}

	sum, err := h.Movies.DeleteMovie(r.Context(), id)
	if err != nil {
		logx.Error(h.Log, reqID, op, "db delete failed", err, "movie_id", id)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	// Инвалидация обоих ключей — безусловно, даже при Deleted=0
	if err := h.Cache.Del(r.Context(), domain.CacheKeyMovie(id), domain.CacheKeyMovieList()); err != nil {
		logx.Error(h.Log, reqID, op, "cache del failed", err, "movie_id", id)
	}

	logx.Info(h.Log, reqID, op, "ok", "movie_id", id, "deleted", sum.Deleted)
	v1.WriteOKResponse(w, r, sum)
}
