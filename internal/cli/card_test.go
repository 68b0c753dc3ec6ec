package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Veraticus/verdict/internal/common"
	"github.com/Veraticus/verdict/internal/model"
	"github.com/Veraticus/verdict/internal/presenter"
	tuitest "github.com/Veraticus/verdict/internal/tui/testing"
	"github.com/Veraticus/verdict/internal/tui/themes"
	"github.com/Veraticus/verdict/internal/tui/viewmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPresentedCard() (*Card, *presenter.Presenter) {
	card := NewCard(themes.Default, 20)
	return card, presenter.New(card)
}

func TestCard_HiddenWritesNothing(t *testing.T) {
	card, _ := newPresentedCard()

	var buf bytes.Buffer
	n, err := card.WriteTo(&buf)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, buf.String())
	assert.False(t, card.Visible())
}

func TestCard_RendersGatedResult(t *testing.T) {
	card, p := newPresentedCard()

	p.Render(viewmodel.InterpretSuccess(model.ClassificationResponse{
		RawLabel:          "OK",
		FinalLabel:        model.LabelReview,
		Emoji:             "😐",
		Confidence:        0.42,
		MinConfidence:     0.55,
		MinConfidenceText: "0.55",
		GatedToReview:     true,
		Probs: model.Probabilities{
			{Category: "OK", Value: 0.42},
			{Category: "BLOCK", Value: 0.58},
		},
	}))

	var buf bytes.Buffer
	_, err := card.WriteTo(&buf)
	require.NoError(t, err)

	out := tuitest.StripANSI(buf.String())
	assert.True(t, tuitest.ContainsInOrder(out,
		"REVIEW", "😐",
		"Warum REVIEW?",
		"raw=OK · min_conf=0.55",
		"Confidence: 0.420",
		"OK: 0.420",
		"BLOCK: 0.580",
	), out)
}

func TestCard_ErrorThenOKDropsExplanation(t *testing.T) {
	card, p := newPresentedCard()

	p.Render(viewmodel.InterpretError(errors.New("boom")))
	out := tuitest.StripANSI(card.String())
	assert.Contains(t, out, "ERROR")
	assert.Contains(t, out, common.MessageUnknownError)
	assert.NotContains(t, out, "Confidence")

	p.Render(viewmodel.InterpretSuccess(model.ClassificationResponse{
		RawLabel:      "OK",
		FinalLabel:    model.LabelOK,
		Emoji:         "😀",
		Confidence:    0.9,
		MinConfidence: 0.55,
	}))
	out = tuitest.StripANSI(card.String())
	assert.Contains(t, out, "OK")
	assert.NotContains(t, out, "Warum")
	assert.NotContains(t, out, common.MessageUnknownError)
}

func TestCard_ClearHides(t *testing.T) {
	card, p := newPresentedCard()
	p.Fail("Text zu lang.")
	require.True(t, card.Visible())

	p.Clear()
	assert.False(t, card.Visible())
	assert.Empty(t, card.String())
}
