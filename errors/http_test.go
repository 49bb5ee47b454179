package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapToHTTPStatus(t *testing.T) {
	req := require.New(t)

	req.Equal(http.StatusOK, MapToHTTPStatus(nil))
	req.Equal(http.StatusBadRequest, MapToHTTPStatus(ErrInvalidRoom))
	req.Equal(http.StatusTooManyRequests, MapToHTTPStatus(ErrRateLimited))
	req.Equal(http.StatusServiceUnavailable, MapToHTTPStatus(fmt.Errorf("append: %w", ErrStorage)))
	req.Equal(http.StatusInternalServerError, MapToHTTPStatus(fmt.Errorf("boom")))
}
