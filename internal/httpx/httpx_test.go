package httpx

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_SetsContentTypeAndStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, 201, map[string]any{"ok": true})

	assert.Equal(t, 201, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestWriteError_Body(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, 400, "missing key")

	assert.Equal(t, 400, rec.Code)
	assert.JSONEq(t, `{"ok":false,"error":"missing key"}`, rec.Body.String())
}

func TestReadJSON(t *testing.T) {
	req := httptest.NewRequest("PUT", "/", strings.NewReader(`{"key":"k","value":"v"}`))

	var body struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	require.NoError(t, ReadJSON(req, &body))
	assert.Equal(t, "k", body.Key)
	assert.Equal(t, "v", body.Value)
}

func TestReadJSON_Invalid(t *testing.T) {
	req := httptest.NewRequest("PUT", "/", strings.NewReader(`{`))

	var v map[string]any
	require.Error(t, ReadJSON(req, &v))
}
