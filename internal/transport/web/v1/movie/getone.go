package movie

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/EgorLis/movie-catalog/internal/domain"
	"github.com/EgorLis/movie-catalog/internal/transport/web/logx"
	"github.com/EgorLis/movie-catalog/internal/transport/web/mw"
	v1 "github.com/EgorLis/movie-catalog/internal/transport/web/v1"
)

// GetOne godoc
// @Summary     Get single movie
// @Description Полный документ. Look-aside кэш по ключу movie:<id>.
// @Tags        movies
// @Produce     json
// @Param       id path string true "movie id (uuid)"
// @Success     200 {object} domain.APIEnvelope{data=domain.Movie}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Router      /v1/movies/{id} [get]
func (h *Handler) GetOne(w http.ResponseWriter, r *http.Request) {
	const op = "movies.get_one"
	reqID := mw.RequestIDFromCtx(r.Context())

	id, err := movieIDFromPath(r)
	if err != nil {
		logx.Error(h.Log, reqID, op, "bad movie id", err, "id_raw", r.PathValue("id"))
		v1.WriteDomainError(w, r, err)
		return
	}

	// кэш: при ошибке не падаем, а идём в БД
	ckey := domain.CacheKeyMovie(id)
	b, ok, err := h.Cache.Get(r.Context(), ckey)
	if err != nil {
		logx.Error(h.Log, reqID, op, "cache get failed, falling back to store", err, "movie_id", id)
	} else if ok {
		logx.Info(h.Log, reqID, op, "cache hit", "movie_id", id, "bytes", len(b))
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(b)
		return
	}

	m, err := h.Movies.MovieByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logx.Info(h.Log, reqID, op, "not found", "movie_id", id)
			v1.WriteDomainError(w, r, domain.ErrNotFound)
			return
		}
		logx.Error(h.Log, reqID, op, "db get failed", err, "movie_id", id)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	env := domain.OkData(m)
	buf, err := json.Marshal(env)
	if err != nil {
		logx.Error(h.Log, reqID, op, "marshal failed", err, "movie_id", id)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	// без TTL: запись живёт до инвалидации мутацией
	if err := h.Cache.Set(r.Context(), ckey, buf, 0); err != nil {
		logx.Error(h.Log, reqID, op, "cache set failed", err, "movie_id", id)
	}

	logx.Info(h.Log, reqID, op, "ok", "movie_id", id)
	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf)
}
