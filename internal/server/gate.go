package server

import (
	"github.com/Veraticus/verdict/internal/model"
)

// UnknownEmoji is shown for labels without a configured emoji.
const UnknownEmoji = "❓"

// DefaultEmoji maps each label to its display glyph.
var DefaultEmoji = map[string]string{
	string(model.LabelOK):     "😀",
	string(model.LabelReview): "😐",
	string(model.LabelBlock):  "😡",
}

// Decide picks the raw label from probs and applies confidence gating: an
// OK verdict whose confidence is below minConfidence becomes REVIEW. Only OK
// is ever gated.
func Decide(probs model.Probabilities, minConfidence float64, emoji map[string]string) model.ClassificationResponse {
	top, _ := probs.Argmax()

	finalLabel := model.Label(top.Category)
	gated := false
	if finalLabel == model.LabelOK && top.Value < minConfidence {
		finalLabel = model.LabelReview
		gated = true
	}

	glyph, ok := emoji[string(finalLabel)]
	if !ok {
		glyph = UnknownEmoji
	}

	return model.ClassificationResponse{
		RawLabel:      top.Category,
		FinalLabel:    finalLabel,
		Emoji:         glyph,
		Confidence:    top.Value,
		MinConfidence: minConfidence,
		GatedToReview: gated,
		Probs:         probs,
	}
}
