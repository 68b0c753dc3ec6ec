// Package model defines the core domain models used throughout the application.
package model

import (
	"encoding/json"
	"math"

	"github.com/tidwall/gjson"
)

// Label is a verdict produced by the classifier service.
type Label string

// Label constants.
const (
	LabelOK     Label = "OK"
	LabelReview Label = "REVIEW"
	LabelBlock  Label = "BLOCK"
)

// Valid reports whether l is one of the known labels.
func (l Label) Valid() bool {
	switch l {
	case LabelOK, LabelReview, LabelBlock:
		return true
	default:
		return false
	}
}

// ClassificationResponse is the payload returned by the /predict endpoint.
type ClassificationResponse struct {
	RawLabel   string `json:"raw_label"`
	FinalLabel Label  `json:"final_label"`
	Emoji      string `json:"emoji"`
	TextClean  string `json:"text_clean,omitempty"`
	// MinConfidenceText is the threshold token exactly as it appeared on the wire.
	MinConfidenceText string        `json:"-"`
	Probs             Probabilities `json:"probs"`
	Confidence        float64       `json:"confidence"`
	MinConfidence     float64       `json:"min_confidence"`
	GatedToReview     bool          `json:"gated_to_review"`
}

// MarshalJSON encodes the response in wire form. Numbers that did not decode
// are written as null, and min_confidence keeps its received token.
func (r ClassificationResponse) MarshalJSON() ([]byte, error) {
	type wire struct {
		RawLabel      string        `json:"raw_label"`
		FinalLabel    Label         `json:"final_label"`
		Emoji         string        `json:"emoji"`
		TextClean     string        `json:"text_clean,omitempty"`
		Probs         Probabilities `json:"probs"`
		Confidence    number        `json:"confidence"`
		MinConfidence number        `json:"min_confidence"`
		GatedToReview bool          `json:"gated_to_review"`
	}

	return json.Marshal(wire{
		RawLabel:      r.RawLabel,
		FinalLabel:    r.FinalLabel,
		Emoji:         r.Emoji,
		TextClean:     r.TextClean,
		Probs:         r.Probs,
		Confidence:    number{value: r.Confidence},
		MinConfidence: number{value: r.MinConfidence, raw: r.MinConfidenceText},
		GatedToReview: r.GatedToReview,
	})
}

// number is a float that encodes NaN and infinities as null and prefers
// its original token when that token is a JSON number.
type number struct {
	raw   string
	value float64
}

func (n number) MarshalJSON() ([]byte, error) {
	if n.raw != "" && gjson.Valid(n.raw) && gjson.Parse(n.raw).Type == gjson.Number {
		return []byte(n.raw), nil
	}
	if math.IsNaN(n.value) || math.IsInf(n.value, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(n.value)
}

// ErrorResponse is the payload returned by the /predict endpoint on failure.
type ErrorResponse struct {
	Error string `json:"error,omitempty"`
}

// PredictRequest is the body posted to the /predict endpoint.
type PredictRequest struct {
	Text string `json:"text"`
}
