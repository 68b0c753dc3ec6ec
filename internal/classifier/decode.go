package classifier

import (
	"errors"
	"fmt"

	"github.com/Veraticus/verdict/internal/common"
	"github.com/Veraticus/verdict/internal/model"
	"github.com/tidwall/gjson"
)

var (
	// ErrInvalidJSON indicates the response body is not a JSON object.
	ErrInvalidJSON = errors.New("response is not a JSON object")
	// ErrUnknownLabel indicates final_label is not one of the known labels.
	ErrUnknownLabel = errors.New("unknown final label")
)

// DecodeResponse parses a success payload. The probs object keeps its
// document order and min_confidence keeps its original token for display.
// Numeric fields that are missing or not numbers decode as NaN.
func DecodeResponse(body []byte) (model.ClassificationResponse, error) {
	if !gjson.ValidBytes(body) {
		return model.ClassificationResponse{}, ErrInvalidJSON
	}

	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return model.ClassificationResponse{}, ErrInvalidJSON
	}

	finalLabel := model.Label(root.Get("final_label").String())
	if !finalLabel.Valid() {
		return model.ClassificationResponse{}, fmt.Errorf("%w: %q", ErrUnknownLabel, finalLabel)
	}

	minConf := root.Get("min_confidence")
	resp := model.ClassificationResponse{
		RawLabel:      root.Get("raw_label").String(),
		FinalLabel:    finalLabel,
		Emoji:         root.Get("emoji").String(),
		TextClean:     root.Get("text_clean").String(),
		Confidence:    model.NumberOrNaN(root.Get("confidence")),
		MinConfidence: model.NumberOrNaN(minConf),
		GatedToReview: root.Get("gated_to_review").Bool(),
	}

	switch minConf.Type {
	case gjson.Number:
		resp.MinConfidenceText = minConf.Raw
	case gjson.String:
		resp.MinConfidenceText = minConf.Str
	}

	if probs := root.Get("probs"); probs.IsObject() {
		resp.Probs = model.ProbabilitiesFromResult(probs)
	}

	return resp, nil
}

// decodeFailure turns a non-2xx reply into a ServiceError. A body that is not
// JSON means the exchange itself failed.
func decodeFailure(status int, body []byte) error {
	if !gjson.ValidBytes(body) {
		return &common.TransportError{
			Op:  "decode error response",
			Err: fmt.Errorf("status %d: %w", status, ErrInvalidJSON),
		}
	}

	root := gjson.ParseBytes(body)
	message := ""
	if field := root.Get("error"); field.Type == gjson.String {
		message = field.Str
	}

	return &common.ServiceError{StatusCode: status, Message: message}
}
