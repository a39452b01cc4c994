//go:build unit

package httperr_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storezee/internal/handler/httperr"
	"storezee/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbortWithError_KeepsPublicMeta(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	cause := errs.New("bucket unavailable")
	httperr.AbortWithError(c, http.StatusBadGateway, cause, "Failed to store uploaded files", nil)

	require.Len(t, c.Errors, 1)
	ginErr := c.Errors.Last()
	assert.True(t, ginErr.IsType(gin.ErrorTypePublic))
	assert.ErrorIs(t, ginErr.Err, cause)

	resp, ok := ginErr.Meta.(httperr.Response)
	require.True(t, ok, "meta must survive c.Error")
	assert.Equal(t, http.StatusBadGateway, resp.Status)
	assert.Equal(t, "Failed to store uploaded files", resp.Error)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Failed to store uploaded files"}`, rec.Body.String())
}

func TestAbortWithError_NilErrPanics(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Panics(t, func() { httperr.AbortWithError(c, http.StatusBadRequest, nil, "bad", nil) })
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", errs.Mark(errs.New("x"), errs.ErrValidation), http.StatusBadRequest},
		{"timeout", errs.Mark(errs.Mark(errs.New("x"), errs.ErrStorage), errs.ErrTimeout), http.StatusGatewayTimeout},
		{"storage", errs.Mark(errs.New("x"), errs.ErrStorage), http.StatusBadGateway},
		{"persistence", errs.Mark(errs.New("x"), errs.ErrPersistence), http.StatusInternalServerError},
		{"unclassified", errs.New("x"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg := httperr.StatusFor(tc.err)
			assert.Equal(t, tc.status, status)
			assert.NotEmpty(t, msg)
		})
	}
}
