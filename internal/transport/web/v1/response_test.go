package v1

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EgorLis/movie-catalog/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   int
	}{
		{domain.ErrBadParams, http.StatusBadRequest, domain.ErrCodeBadParams},
		{domain.ErrNotFound, http.StatusNotFound, domain.ErrCodeNotFound},
		{domain.ErrMethodNotAllowed, http.StatusMethodNotAllowed, domain.ErrCodeMethodNotAllowed},
		{domain.ErrUnexpected, http.StatusInternalServerError, domain.ErrCodeUnexpected},
		{errors.New("anything else"), http.StatusInternalServerError, domain.ErrCodeUnexpected},
		// обёрнутые ошибки тоже распознаются
		{fmt.Errorf("repo: %w", domain.ErrNotFound), http.StatusNotFound, domain.ErrCodeNotFound},
	}

	for _, tc := range cases {
		status, env := MapDomainError(tc.err)
		assert.Equal(t, tc.status, status, "err=%v", tc.err)
		require.NotNil(t, env.Error, "err=%v", tc.err)
		assert.Equal(t, tc.code, env.Error.Code, "err=%v", tc.err)
	}
}
