package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{"not found", New(http.StatusNotFound, "Webhook not found"), http.StatusNotFound, "Webhook not found"},
		{"wrapped", fmt.Errorf("lookup: %w", New(http.StatusBadRequest, "Inactive user")), http.StatusBadRequest, "Inactive user"},
		{"unknown error hides details", errors.New("pq: connection refused"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Write(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus, Status(tt.err))
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body struct {
				Detail string `json:"detail"`
			}
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.wantDetail, body.Detail)
		})
	}
}

func TestWrite_Headers(t *testing.T) {
	base := New(http.StatusUnauthorized, "Not authenticated")
	err := base.WithHeader("WWW-Authenticate", "Bearer")

	rec := httptest.NewRecorder()
	Write(rec, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	assert.Nil(t, base.Headers, "WithHeader must not mutate the receiver")
}

func TestWrite_Validation(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, PathParam("id", "nope", "uuid_parsing", "Input should be a valid UUID"))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Detail []ValidationDetail `json:"detail"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Detail, 1)
	assert.Equal(t, []string{"path", "id"}, body.Detail[0].Loc)
	assert.Equal(t, "uuid_parsing", body.Detail[0].Type)
	assert.Equal(t, "nope", body.Detail[0].Input)
}
