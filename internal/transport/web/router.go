package web

import (
	"log"
	"net/http"

	_ "github.com/EgorLis/movie-catalog/internal/docs"
	"github.com/EgorLis/movie-catalog/internal/domain"
	"github.com/EgorLis/movie-catalog/internal/transport/web/mw"
	v1 "github.com/EgorLis/movie-catalog/internal/transport/web/v1"
	"github.com/EgorLis/movie-catalog/internal/transport/web/v1/health"
	"github.com/EgorLis/movie-catalog/internal/transport/web/v1/movie"
	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRouter(hh *health.Handler, mh *movie.Handler, logger *log.Logger) http.Handler {
	mux := http.NewServeMux()

	// health
	mux.HandleFunc("GET /v1/healthz", hh.Liveness)
	mux.HandleFunc("GET /v1/readyz", hh.Readiness)

	// movies
	mux.HandleFunc("GET /v1/movies", mh.List)
	mux.HandleFunc("POST /v1/movies", limitBody(1<<20, mh.Create)) // 1MB лимит
	mux.HandleFunc("GET /v1/movies/{id}", mh.GetOne)
	mux.HandleFunc("PATCH /v1/movies/{id}", limitBody(1<<20, mh.Update))
	mux.HandleFunc("DELETE /v1/movies/{id}", mh.Delete)

	// swagger
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// незнакомые маршруты — JSON 404, а не дефолтная страница
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		v1.WriteDomainError(w, r, domain.ErrNotFound)
	})

	// 🔗 middleware
	return mw.WithRequestID(mw.Logging(logger)(mux))
}

func limitBody(n int64, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, n)
		h(w, r)
	}
}
