package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "valid", body: `{"name":"Kasun"}`, want: "Kasun"},
		{name: "empty", body: ``, wantErr: true},
		{name: "unknown field", body: `{"name":"Kasun","age":30}`, wantErr: true},
		{name: "broken json", body: `{"name":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var p payload
			err := DecodeJSON(r, &p)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Name)
		})
	}
}

func TestRespondValidationError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondValidationError(w, "bad", map[string]string{"guestCount": "is required"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusBadRequest, body.Code)
	assert.Equal(t, "is required", body.Fields["guestCount"])
}

func TestRespondInternalError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondInternalError(w)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), msgInternalError)
}
