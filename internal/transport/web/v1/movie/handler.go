package movie

import (
	"log"

	"github.com/EgorLis/movie-catalog/internal/domain"
)

type Handler struct {
	Log    *log.Logger
	Movies domain.MoviesRepo
	Cache  domain.Cache
}
