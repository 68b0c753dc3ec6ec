package viewmodel

import (
	"fmt"
	"math"
	"strconv"

	"github.com/Veraticus/verdict/internal/model"
)

// FormatFixed formats v with exactly three decimals. It is total: NaN prints
// as "NaN" and infinities as "+Inf"/"-Inf".
func FormatFixed(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// ConfidencePercent converts a confidence in [0,1] to a whole percentage for
// the confidence bar. Halves round away from zero (math.Round), so 0.625
// becomes 63. Out-of-range input is clamped to [0,100] and NaN yields 0.
func ConfidencePercent(confidence float64) int {
	if math.IsNaN(confidence) {
		return 0
	}

	pct := math.Round(confidence * 100)
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	default:
		return int(pct)
	}
}

// ThresholdText returns the gating threshold as the service sent it. When
// the response was built in code rather than decoded, the shortest exact
// representation of the number is used.
func ThresholdText(resp model.ClassificationResponse) string {
	if resp.MinConfidenceText != "" {
		return resp.MinConfidenceText
	}
	return strconv.FormatFloat(resp.MinConfidence, 'f', -1, 64)
}

// FormatMeta builds the line showing the raw label and the threshold.
func FormatMeta(rawLabel, threshold string) string {
	return "raw=" + rawLabel + " · min_conf=" + threshold
}

// FormatExplanation explains why an OK verdict was downgraded to REVIEW.
func FormatExplanation(confidence float64, threshold string) string {
	return fmt.Sprintf(
		"Warum REVIEW? Der Text wurde als OK erkannt, aber die Confidence (%s) liegt unter dem Schwellenwert (%s).",
		FormatFixed(confidence), threshold,
	)
}

// FormatProbabilities renders one "category: value" line per entry, in order.
func FormatProbabilities(probs model.Probabilities) []string {
	if len(probs) == 0 {
		return nil
	}

	lines := make([]string, 0, len(probs))
	for _, p := range probs {
		lines = append(lines, p.Category+": "+FormatFixed(p.Value))
	}
	return lines
}

// TruncateString truncates a string to the specified length with ellipsis.
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
