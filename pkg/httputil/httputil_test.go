package httputil

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespondWithJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	RespondWithJSON(rr, http.StatusCreated, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestRespondWithJSONEncodeFailure(t *testing.T) {
	rr := httptest.NewRecorder()
	RespondWithJSON(rr, http.StatusOK, math.Inf(1))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestRespondWithError(t *testing.T) {
	rr := httptest.NewRecorder()
	RespondWithError(rr, http.StatusBadRequest, "Missing required fields")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Missing required fields"}`, rr.Body.String())
}

func TestQueryParams(t *testing.T) {
	req := httptest.NewRequest("GET", "/x?q=Google&derive=YES&empty=", nil)

	assert.Equal(t, "Google", GetQueryParam(req, "q"))
	assert.Equal(t, "fallback", GetQueryParamWithDefault(req, "empty", "fallback"))
	assert.True(t, GetBoolQueryParam(req, "derive"))
	assert.False(t, GetBoolQueryParam(req, "missing"))
}
