package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/EgorLis/movie-catalog/internal/domain"
)

const movieColumns = "id, name, title, created_at, updated_at"

func (r *PGRepo) movies() string { return fmt.Sprintf("%s.movies", r.schema) }

func (r *PGRepo) MoviesList(ctx context.Context, limit int) ([]domain.Movie, error) {
	if limit <= 0 || limit > domain.ListLimit {
		limit = domain.ListLimit
	}
	q := r.qb().Select("id", "name", "title", "created_at", "updated_at").
		From(r.movies()).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit))

	sqlStr, args, _ := q.ToSql()
	r.logSQL("MoviesList", sqlStr, args)

	start := time.Now()
	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("MoviesList query error after %s: %v", time.Since(start), err)
		return nil, err
	}
	defer rows.Close()

	var res []domain.Movie
	for rows.Next() {
		var m domain.Movie
		if err := rows.Scan(&m.ID, &m.Name, &m.Title, &m.CreatedAt, &m.UpdatedAt); err != nil {
			r.logger.Printf("MoviesList scan error: %v", err)
			return nil, err
		}
		res = append(res, m)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("MoviesList rows error: %v", err)
		return nil, err
	}
	r.logger.Printf("MoviesList ok in %s count=%d", time.Since(start), len(res))
	return res, nil
}

func (r *PGRepo) MovieByID(ctx context.Context, id domain.MovieID) (domain.Movie, error) {
	q := r.qb().Select("id", "name", "title", "created_at", "updated_at").
		From(r.movies()).
		Where(sq.Eq{"id": id})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("MovieByID", sqlStr, args)

	start := time.Now()
	row := r.pool.QueryRow(ctx, sqlStr, args...)
	var m domain.Movie
	if err := row.Scan(&m.ID, &m.Name, &m.Title, &m.CreatedAt, &m.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("MovieByID not found in %s id=%s", time.Since(start), id)
			return domain.Movie{}, domain.ErrNotFound
		}
		r.logger.Printf("MovieByID scan error after %s: %v", time.Since(start), err)
		return domain.Movie{}, err
	}
	r.logger.Printf("MovieByID ok in %s id=%s", time.Since(start), m.ID)
	return m, nil
}

func (r *PGRepo) CreateMovie(ctx context.Context, name, title string) (domain.Movie, error) {
	q := r.qb().Insert(r.movies()).
		Columns("name", "title").
		Values(name, title).
		Suffix("RETURNING " + movieColumns)

	sqlStr, args, _ := q.ToSql()
	r.logSQL("CreateMovie", sqlStr, args)

	start := time.Now()
	row := r.pool.QueryRow(ctx, sqlStr, args...)
	var m domain.Movie
	if err := row.Scan(&m.ID, &m.Name, &m.Title, &m.CreatedAt, &m.UpdatedAt); err != nil {
		r.logger.Printf("CreateMovie scan error after %s: %v", time.Since(start), err)
		return domain.Movie{}, err
	}
	r.logger.Printf("CreateMovie ok in %s id=%s title=%q", time.Since(start), m.ID, m.Title)
	return m, nil
}

// Частичное обновление: только title + updated_at.
// Отсутствие строки — не ошибка: наружу уходит Matched=0.
func (r *PGRepo) UpdateTitle(ctx context.Context, id domain.MovieID, title string) (domain.UpdateSummary, error) {
	q := r.qb().Update(r.movies()).
		SetMap(map[string]any{
			"title":      title,
			"updated_at": sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": id})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("UpdateTitle", sqlStr, args)

	start := time.Now()
	tag, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("UpdateTitle exec error after %s: %v", time.Since(start), err)
		return domain.UpdateSummary{}, err
	}
	ra := tag.RowsAffected()
	r.logger.Printf("UpdateTitle ok in %s id=%s rows=%d", time.Since(start), id, ra)
	return domain.UpdateSummary{Matched: ra, Modified: ra}, nil
}

func (r *PGRepo) DeleteMovie(ctx context.Context, id domain.MovieID) (domain.DeleteSummary, error) {
	q := r.qb().Delete(r.movies()).Where(sq.Eq{"id": id})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("DeleteMovie", sqlStr, args)

	start := time.Now()
	tag, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("DeleteMovie exec error after %s: %v", time.Since(start), err)
		return domain.DeleteSummary{}, err
	}
	ra := tag.RowsAffected()
	r.logger.Printf("DeleteMovie ok in %s id=%s rows=%d", time.Since(start), id, ra)
	return domain.DeleteSummary{Deleted: ra}, nil
}
