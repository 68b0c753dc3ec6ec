package viewmodel

import (
	"errors"
	"math"
	"testing"

	"github.com/Veraticus/verdict/internal/common"
	"github.com/Veraticus/verdict/internal/model"
	"github.com/stretchr/testify/assert"
)

func gatedResponse() model.ClassificationResponse {
	return model.ClassificationResponse{
		RawLabel:      "OK",
		FinalLabel:    model.LabelReview,
		Confidence:    0.62,
		MinConfidence: 0.8,
		GatedToReview: true,
		Emoji:         "🤔",
		Probs: model.Probabilities{
			{Category: "OK", Value: 0.62},
			{Category: "BLOCK", Value: 0.38},
		},
	}
}

func TestInterpretSuccess_GatedReview(t *testing.T) {
	got := InterpretSuccess(gatedResponse())

	assert.Equal(t, model.StatusReview, got.Status)
	assert.Equal(t, "REVIEW", got.Label)
	assert.Equal(t, "🤔", got.Emoji)
	assert.Equal(t, "0.620", got.ConfidenceText)
	assert.Equal(t, 62, got.ConfidencePercent)
	assert.True(t, got.HasExplanation())
	assert.Contains(t, got.Explanation, "0.620")
	assert.Contains(t, got.Explanation, "0.8")
	assert.Equal(t, []string{"OK: 0.620", "BLOCK: 0.380"}, got.ProbabilityLines)
	assert.Equal(t, "raw=OK · min_conf=0.8", got.Meta)
	assert.False(t, got.IsError())
}

func TestInterpretSuccess_ExplanationOnlyWhenGated(t *testing.T) {
	labels := []model.Label{model.LabelOK, model.LabelReview, model.LabelBlock}
	for _, label := range labels {
		t.Run(string(label), func(t *testing.T) {
			resp := gatedResponse()
			resp.GatedToReview = false
			resp.FinalLabel = label
			resp.RawLabel = string(label)

			got := InterpretSuccess(resp)
			assert.False(t, got.HasExplanation())
			assert.Empty(t, got.Explanation)
			assert.Equal(t, model.Status(label), got.Status)
		})
	}
}

func TestInterpretSuccess_ThresholdAsReceived(t *testing.T) {
	resp := gatedResponse()
	resp.MinConfidence = 0.55
	resp.MinConfidenceText = "0.550"

	got := InterpretSuccess(resp)
	assert.Equal(t, "raw=OK · min_conf=0.550", got.Meta)
	assert.Contains(t, got.Explanation, "(0.550)")
}

func TestInterpretSuccess_MalformedNumbers(t *testing.T) {
	resp := gatedResponse()
	resp.Confidence = math.NaN()
	resp.Probs = model.Probabilities{{Category: "OK", Value: math.NaN()}}

	got := InterpretSuccess(resp)
	assert.Equal(t, "NaN", got.ConfidenceText)
	assert.Equal(t, 0, got.ConfidencePercent)
	assert.Equal(t, []string{"OK: NaN"}, got.ProbabilityLines)
	assert.Contains(t, got.Explanation, "NaN")
}

func TestInterpretSuccess_OutOfRangeConfidence(t *testing.T) {
	resp := gatedResponse()
	resp.Confidence = 1.4
	assert.Equal(t, 100, InterpretSuccess(resp).ConfidencePercent)

	resp.Confidence = -0.2
	assert.Equal(t, 0, InterpretSuccess(resp).ConfidencePercent)
}

func TestInterpretFailure(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{name: "explicit message", message: "Bitte Text eingeben.", want: "Bitte Text eingeben."},
		{name: "service message", message: "Modell nicht geladen.", want: "Modell nicht geladen."},
		{name: "empty falls back", message: "", want: "Unbekannter Fehler."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InterpretFailure(tt.message)

			assert.Equal(t, model.StatusError, got.Status)
			assert.Equal(t, "⚠️", got.Emoji)
			assert.Equal(t, "ERROR", got.Label)
			assert.False(t, got.HasExplanation())
			assert.Equal(t, tt.want, got.Meta)
			assert.Equal(t, "", got.ConfidenceText)
			assert.Equal(t, 0, got.ConfidencePercent)
			assert.Empty(t, got.ProbabilityLines)
			assert.True(t, got.IsError())
		})
	}
}

func TestInterpretError(t *testing.T) {
	transport := &common.TransportError{Op: "POST /predict", Err: errors.New("connection refused")}
	got := InterpretError(transport)
	assert.Equal(t, model.StatusError, got.Status)
	assert.Equal(t, "Unbekannter Fehler.", got.Meta)
	assert.Equal(t, "", got.ConfidenceText)
	assert.Equal(t, 0, got.ConfidencePercent)
	assert.Empty(t, got.ProbabilityLines)

	assert.Equal(t, "Bitte Text eingeben.", InterpretError(common.ErrEmptyInput).Meta)
	assert.Equal(t, "Zu lang.", InterpretError(&common.ServiceError{StatusCode: 413, Message: "Zu lang."}).Meta)
}

func TestResult_ProbabilityText(t *testing.T) {
	r := Result{ProbabilityLines: []string{"OK: 0.620", "BLOCK: 0.380"}}
	assert.Equal(t, "OK: 0.620\nBLOCK: 0.380", r.ProbabilityText())
	assert.Equal(t, "", Result{}.ProbabilityText())
}
