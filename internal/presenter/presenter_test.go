package presenter

import (
	"testing"

	"github.com/Veraticus/verdict/internal/model"
	"github.com/Veraticus/verdict/internal/tui/viewmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTarget records the visible state the presenter produces.
type fakeTarget struct {
	badges          map[Badge]bool
	input           string
	emoji           string
	label           string
	explanation     string
	meta            string
	confidenceText  string
	probabilities   string
	calls           []string
	percent         int
	visible         bool
	explanationShow bool
}

func newFakeTarget() *fakeTarget {
	return &fakeTarget{badges: make(map[Badge]bool), input: "some text"}
}

func (f *fakeTarget) ShowResult() { f.visible = true; f.calls = append(f.calls, "ShowResult") }
func (f *fakeTarget) HideResult() { f.visible = false; f.calls = append(f.calls, "HideResult") }

// SetBadge mirrors a style list: it drops every badge before adding one.
func (f *fakeTarget) SetBadge(b Badge) {
	for _, other := range Badges {
		delete(f.badges, other)
	}
	f.badges[b] = true
	f.calls = append(f.calls, "SetBadge")
}

func (f *fakeTarget) SetEmoji(e string) { f.emoji = e }
func (f *fakeTarget) SetLabel(l string) { f.label = l }

func (f *fakeTarget) ShowExplanation(text string) {
	f.explanationShow = true
	f.explanation = text
}

func (f *fakeTarget) HideExplanation() {
	f.explanationShow = false
	f.explanation = ""
}

func (f *fakeTarget) SetMeta(m string) { f.meta = m }

func (f *fakeTarget) SetConfidence(text string, percent int) {
	f.confidenceText = text
	f.percent = percent
}

func (f *fakeTarget) SetProbabilities(text string) { f.probabilities = text }
func (f *fakeTarget) ClearInput()                  { f.input = ""; f.calls = append(f.calls, "ClearInput") }

func (f *fakeTarget) activeBadges() []Badge {
	var active []Badge
	for _, b := range Badges {
		if f.badges[b] {
			active = append(active, b)
		}
	}
	return active
}

func gatedResult() viewmodel.Result {
	return viewmodel.InterpretSuccess(model.ClassificationResponse{
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
	})
}

func TestPresenter_InitialStateHidden(t *testing.T) {
	p := New(newFakeTarget())
	assert.Equal(t, StateHidden, p.State())
}

func TestPresenter_RenderGatedReview(t *testing.T) {
	target := newFakeTarget()
	p := New(target)

	p.Render(gatedResult())

	assert.Equal(t, StateShowingReview, p.State())
	assert.True(t, target.visible)
	assert.Equal(t, []Badge{BadgeReview}, target.activeBadges())
	assert.Equal(t, "🤔", target.emoji)
	assert.Equal(t, "REVIEW", target.label)
	assert.True(t, target.explanationShow)
	assert.Contains(t, target.explanation, "0.620")
	assert.Equal(t, "raw=OK · min_conf=0.8", target.meta)
	assert.Equal(t, "0.620", target.confidenceText)
	assert.Equal(t, 62, target.percent)
	assert.Equal(t, "OK: 0.620\nBLOCK: 0.380", target.probabilities)
	assert.Equal(t, "ShowResult", target.calls[0])
}

func TestPresenter_RenderHidesStaleExplanation(t *testing.T) {
	target := newFakeTarget()
	p := New(target)

	p.Render(gatedResult())
	require.True(t, target.explanationShow)

	p.Render(viewmodel.InterpretSuccess(model.ClassificationResponse{
		RawLabel:   "BLOCK",
		FinalLabel: model.LabelBlock,
		Confidence: 0.91,
		Emoji:      "😡",
		Probs:      model.Probabilities{{Category: "BLOCK", Value: 0.91}},
	}))

	assert.False(t, target.explanationShow)
	assert.Empty(t, target.explanation)
	assert.Equal(t, StateShowingBlock, p.State())
}

func TestPresenter_BadgesNeverStack(t *testing.T) {
	target := newFakeTarget()
	p := New(target)

	sequence := []struct {
		result viewmodel.Result
		badge  Badge
		state  State
	}{
		{result: viewmodel.Result{Status: model.StatusOK, Label: "OK"}, badge: BadgeOK, state: StateShowingOK},
		{result: viewmodel.Result{Status: model.StatusBlock, Label: "BLOCK"}, badge: BadgeBlock, state: StateShowingBlock},
		{result: viewmodel.InterpretFailure(""), badge: BadgeError, state: StateShowingError},
		{result: viewmodel.Result{Status: model.StatusReview, Label: "REVIEW"}, badge: BadgeReview, state: StateShowingReview},
		{result: viewmodel.Result{Status: model.StatusOK, Label: "OK"}, badge: BadgeOK, state: StateShowingOK},
	}

	for _, step := range sequence {
		p.Render(step.result)
		assert.Equal(t, []Badge{step.badge}, target.activeBadges())
		assert.Equal(t, step.state, p.State())
	}
}

func TestPresenter_RenderFailure(t *testing.T) {
	target := newFakeTarget()
	p := New(target)

	p.Fail("")

	assert.Equal(t, StateShowingError, p.State())
	assert.Equal(t, []Badge{BadgeError}, target.activeBadges())
	assert.Equal(t, "⚠️", target.emoji)
	assert.Equal(t, "ERROR", target.label)
	assert.Equal(t, "Unbekannter Fehler.", target.meta)
	assert.Equal(t, "", target.confidenceText)
	assert.Equal(t, 0, target.percent)
	assert.Equal(t, "", target.probabilities)
	assert.False(t, target.explanationShow)
}

func TestPresenter_ClearFromAnyState(t *testing.T) {
	results := map[string]viewmodel.Result{
		"hidden": {},
		"ok":     {Status: model.StatusOK},
		"review": gatedResult(),
		"block":  {Status: model.StatusBlock},
		"error":  viewmodel.InterpretFailure("Bitte Text eingeben."),
	}

	for name, result := range results {
		t.Run(name, func(t *testing.T) {
			target := newFakeTarget()
			p := New(target)
			if name != "hidden" {
				p.Render(result)
			}

			p.Clear()

			assert.Equal(t, StateHidden, p.State())
			assert.False(t, target.visible)
			assert.Equal(t, "", target.input)
		})
	}
}

func TestBadgeFor(t *testing.T) {
	assert.Equal(t, BadgeOK, BadgeFor(model.StatusOK))
	assert.Equal(t, BadgeReview, BadgeFor(model.StatusReview))
	assert.Equal(t, BadgeBlock, BadgeFor(model.StatusBlock))
	assert.Equal(t, BadgeError, BadgeFor(model.StatusError))
	assert.Equal(t, BadgeError, BadgeFor(model.Status("MAYBE")))
	assert.Equal(t, "badge--review", BadgeReview.String())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "Hidden", StateHidden.String())
	assert.Equal(t, "ShowingREVIEW", StateShowingReview.String())
	assert.Equal(t, "Unknown(9)", State(9).String())
}
