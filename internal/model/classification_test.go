package model

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestClassificationResponse_MarshalJSON(t *testing.T) {
	tests := []struct {
		name              string
		resp              ClassificationResponse
		wantConfidence    string
		wantMinConfidence string
	}{
		{
			name:              "plain numbers",
			resp:              ClassificationResponse{FinalLabel: LabelOK, Confidence: 0.9, MinConfidence: 0.55},
			wantConfidence:    "0.9",
			wantMinConfidence: "0.55",
		},
		{
			name: "threshold token kept",
			resp: ClassificationResponse{
				FinalLabel:        LabelReview,
				Confidence:        0.42,
				MinConfidence:     0.55,
				MinConfidenceText: "0.550",
			},
			wantConfidence:    "0.42",
			wantMinConfidence: "0.550",
		},
		{
			name: "undecoded numbers become null",
			resp: ClassificationResponse{
				FinalLabel:        LabelOK,
				Confidence:        math.NaN(),
				MinConfidence:     math.Inf(1),
				MinConfidenceText: "high",
			},
			wantConfidence:    "null",
			wantMinConfidence: "null",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.resp)
			require.NoError(t, err)

			body := gjson.ParseBytes(data)
			assert.Equal(t, tt.wantConfidence, body.Get("confidence").Raw)
			assert.Equal(t, tt.wantMinConfidence, body.Get("min_confidence").Raw)
			assert.Equal(t, string(tt.resp.FinalLabel), body.Get("final_label").String())
			assert.False(t, body.Get("MinConfidenceText").Exists())
		})
	}
}

func TestClassificationResponse_MarshalKeepsProbabilityOrder(t *testing.T) {
	resp := ClassificationResponse{
		FinalLabel: LabelBlock,
		Probs: Probabilities{
			{Category: "BLOCK", Value: 0.7},
			{Category: "OK", Value: math.NaN()},
		},
	}

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"probs":{"BLOCK":0.7,"OK":null}`)
	assert.NotContains(t, string(data), "text_clean")
}
