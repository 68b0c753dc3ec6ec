package viewmodel

import (
	"github.com/Veraticus/verdict/internal/common"
	"github.com/Veraticus/verdict/internal/model"
)

// InterpretSuccess turns a decoded classifier response into a Result.
// Malformed numbers degrade to "NaN" text and a zero bar rather than failing.
func InterpretSuccess(resp model.ClassificationResponse) Result {
	threshold := ThresholdText(resp)

	result := Result{
		Status:            model.StatusFromLabel(resp.FinalLabel),
		Emoji:             resp.Emoji,
		Label:             string(resp.FinalLabel),
		Meta:              FormatMeta(resp.RawLabel, threshold),
		ConfidenceText:    FormatFixed(resp.Confidence),
		ConfidencePercent: ConfidencePercent(resp.Confidence),
		ProbabilityLines:  FormatProbabilities(resp.Probs),
	}

	if resp.GatedToReview {
		result.Explanation = FormatExplanation(resp.Confidence, threshold)
	}

	return result
}

// InterpretFailure builds the ERROR result for message. An empty message is
// replaced by the generic fallback.
func InterpretFailure(message string) Result {
	if message == "" {
		message = common.MessageUnknownError
	}

	return Result{
		Status:            model.StatusError,
		Emoji:             ErrorEmoji,
		Label:             string(model.StatusError),
		Meta:              message,
		ConfidenceText:    "",
		ConfidencePercent: 0,
		ProbabilityLines:  nil,
	}
}

// InterpretError builds the ERROR result for any failure of a submission.
func InterpretError(err error) Result {
	return InterpretFailure(common.UserMessage(err))
}
