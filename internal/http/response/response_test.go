package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/neharvard/interactive-storytelling-server/internal/domain"
)

func serve(t *testing.T, err error) (int, ErrorEnvelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	RespondServiceError(c, err)

	var env ErrorEnvelope
	if jerr := json.Unmarshal(rec.Body.Bytes(), &env); jerr != nil {
		t.Fatalf("decode body: %v", jerr)
	}
	return rec.Code, env
}

func TestRespondServiceError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrInvalidIdentifier, http.StatusBadRequest, "invalid_identifier"},
		{fmt.Errorf("%w: title is required", domain.ErrInvalidArgument), http.StatusBadRequest, "invalid_argument"},
		{fmt.Errorf("story x: %w", domain.ErrNotFound), http.StatusNotFound, "not_found"},
		{fmt.Errorf("%w: get_story", domain.ErrStoreUnavailable), http.StatusInternalServerError, "store_unavailable"},
		{errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tc := range cases {
		status, env := serve(t, tc.err)
		if status != tc.status {
			t.Fatalf("%v status: want=%d got=%d", tc.err, tc.status, status)
		}
		if env.Error.Code != tc.code {
			t.Fatalf("%v code: want=%q got=%q", tc.err, tc.code, env.Error.Code)
		}
	}
}

func TestServerErrorsHideDetails(t *testing.T) {
	_, env := serve(t, fmt.Errorf("%w: dial tcp 10.0.0.5:5432", domain.ErrStoreUnavailable))
	if env.Error.Message != "internal server error" {
		t.Fatalf("message: want=%q got=%q", "internal server error", env.Error.Message)
	}
	_, env = serve(t, domain.ErrInvalidIdentifier)
	if env.Error.Message != domain.ErrInvalidIdentifier.Error() {
		t.Fatalf("message: want=%q got=%q", domain.ErrInvalidIdentifier.Error(), env.Error.Message)
	}
}
