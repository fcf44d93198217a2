package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/linemk/order-backend/internal/lib/api"
	"github.com/stretchr/testify/assert"
)

func TestError_WritesEnvelope(t *testing.T) {
	rr := httptest.NewRecorder()
	api.Error(rr, http.StatusBadRequest, "Items and total required")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error": "Items and total required"}`, rr.Body.String())
}

func TestJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	err := api.JSON(rr, http.StatusCreated, []int{1, 2})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `[1, 2]`, rr.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest("POST", "/", strings.NewReader("{\"name\": \"A\"}\n"))
	assert.NoError(t, api.DecodeJSON(httptest.NewRecorder(), req, &v))
	assert.Equal(t, "A", v.Name)

	req = httptest.NewRequest("POST", "/", strings.NewReader(`{"name": "A"}{"name": "B"}`))
	assert.ErrorIs(t, api.DecodeJSON(httptest.NewRecorder(), req, &v), api.ErrTrailingData)

	req = httptest.NewRequest("POST", "/", strings.NewReader(`{"name": "A"} garbage`))
	assert.Error(t, api.DecodeJSON(httptest.NewRecorder(), req, &v))
}

func TestDecodeJSON_TooLarge(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}
	body := `{"name": "` + strings.Repeat("a", api.MaxBodyBytes) + `"}`

	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	err := api.DecodeJSON(httptest.NewRecorder(), req, &v)

	var maxErr *http.MaxBytesError
	assert.ErrorAs(t, err, &maxErr)
}
