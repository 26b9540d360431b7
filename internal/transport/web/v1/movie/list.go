package movie

import (
	"encoding/json"
	"net/http"

	"github.com/EgorLis/movie-catalog/internal/domain"
	"github.com/EgorLis/movie-catalog/internal/transport/web/logx"
	"github.com/EgorLis/movie-catalog/internal/transport/web/mw"
	v1 "github.com/EgorLis/movie-catalog/internal/transport/web/v1"
)

// List godoc
// @Summary     List movies
// @Description Не более 10 записей, урезанная проекция. Look-aside кэш по ключу списка.
// @Tags        movies
// @Produce     json
// @Success     200 {object} domain.APIEnvelope{data=[]domain.MovieView}
// @Failure     500 {object} domain.APIEnvelope
// @Router      /v1/movies [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	const op = "movies.list"
	reqID := mw.RequestIDFromCtx(r.Context())

	// кэш: при ошибке не падаем, а идём в БД
	ckey := domain.CacheKeyMovieList()
	b, ok, err := h.Cache.Get(r.Context(), ckey)
	if err != nil {
		logx.Error(h.Log, reqID, op, "cache get failed, falling back to store", err)
	} else if ok {
		logx.Info(h.Log, reqID, op, "cache hit", "bytes", len(b))
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(b)
		return
	}

	movies, err := h.Movies.MoviesList(r.Context(), domain.ListLimit)
	if err != nil {
		logx.Error(h.Log, reqID, op, "db list failed", err)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	env := domain.OkData(viewsOf(movies))
	buf, err := json.Marshal(env)
	if err != nil {
		logx.Error(h.Log, reqID, op, "marshal failed", err)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	// без TTL: запись живёт до инвалидации мутацией
	if err := h.Cache.Set(r.Context(), ckey, buf, 0); err != nil {
		logx.Error(h.Log, reqID, op, "cache set failed", err)
	}

	logx.Info(h.Log, reqID, op, "ok", "count", len(movies))
	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf)
}
