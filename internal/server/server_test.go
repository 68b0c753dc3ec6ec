package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Veraticus/verdict/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type failingScorer struct{}

func (failingScorer) Score(_ context.Context, _ string) (model.Probabilities, error) {
	return nil, errors.New("model not loaded")
}

func newTestRouter(t *testing.T, scorer Scorer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h, err := NewHandler(DefaultConfig(), scorer)
	require.NoError(t, err)
	return NewRouter(h)
}

func newTestScorer(t *testing.T) *StaticScorer {
	t.Helper()
	scorer, err := NewStaticScorer(model.Probabilities{{Category: "OK", Value: 0.9}, {Category: "REVIEW", Value: 0.05}, {Category: "BLOCK", Value: 0.05}})
	require.NoError(t, err)
	require.NoError(t, scorer.Set("unsicher", model.Probabilities{{Category: "OK", Value: 0.5}, {Category: "REVIEW", Value: 0.2}, {Category: "BLOCK", Value: 0.3}}))
	return scorer
}

func post(router http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestPredict_Success(t *testing.T) {
	router := newTestRouter(t, newTestScorer(t))

	rec := post(router, `{"text":"  Hallo @anna|LBR|schöner Tag  "}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := gjson.Parse(rec.Body.String())
	assert.Equal(t, "OK", body.Get("raw_label").String())
	assert.Equal(t, "OK", body.Get("final_label").String())
	assert.Equal(t, "😀", body.Get("emoji").String())
	assert.False(t, body.Get("gated_to_review").Bool())
	assert.Equal(t, "0.55", body.Get("min_confidence").Raw)
	assert.Equal(t, "Hallo <USER> schöner Tag", body.Get("text_clean").String())

	var keys []string
	body.Get("probs").ForEach(func(k, _ gjson.Result) bool {
		keys = append(keys, k.String())
		return true
	})
	assert.Equal(t, []string{"OK", "REVIEW", "BLOCK"}, keys)
}

func TestPredict_Gated(t *testing.T) {
	router := newTestRouter(t, newTestScorer(t))

	rec := post(router, `{"text":"Unsicher"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := gjson.Parse(rec.Body.String())
	assert.Equal(t, "OK", body.Get("raw_label").String())
	assert.Equal(t, "REVIEW", body.Get("final_label").String())
	assert.True(t, body.Get("gated_to_review").Bool())
	assert.InDelta(t, 0.5, body.Get("confidence").Float(), 1e-9)
}

func TestPredict_EmptyText(t *testing.T) {
	router := newTestRouter(t, newTestScorer(t))

	bodies := []string{`{"text":"   "}`, `{}`, `not json`, `{"text":42}`, ``}
	for _, body := range bodies {
		rec := post(router, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
		assert.Equal(t, "Bitte Text eingeben.", gjson.Get(rec.Body.String(), "error").String())
	}
}

func TestPredict_TooLarge(t *testing.T) {
	router := newTestRouter(t, newTestScorer(t))

	rec := post(router, `{"text":"`+strings.Repeat("a", DefaultMaxBodyBytes)+`"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, MessageTooLarge, gjson.Get(rec.Body.String(), "error").String())
}

func TestPredict_ScorerFailure(t *testing.T) {
	router := newTestRouter(t, failingScorer{})

	rec := post(router, `{"text":"hallo"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Unbekannter Fehler.", gjson.Get(rec.Body.String(), "error").String())
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, newTestScorer(t))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestNewHandler_Validation(t *testing.T) {
	_, err := NewHandler(DefaultConfig(), nil)
	assert.Error(t, err)

	cfg := DefaultConfig()
	cfg.MinConfidence = 1.5
	_, err = NewHandler(cfg, newTestScorer(t))
	assert.Error(t, err)
}

func TestNewStaticScorer_Validation(t *testing.T) {
	_, err := NewStaticScorer(nil)
	assert.Error(t, err)

	_, err = NewStaticScorer(model.Probabilities{{Category: "OK", Value: 0.5}, {Category: "OK", Value: 0.5}})
	assert.Error(t, err)

	_, err = NewStaticScorer(model.Probabilities{{Category: "OK", Value: 1.2}})
	assert.Error(t, err)
}
