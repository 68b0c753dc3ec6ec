package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/tidwall/gjson"
)

// Probability is the score assigned to a single category.
type Probability struct {
	Category string
	Value    float64
}

// Probabilities is a per-category distribution. Entry order is display order
// and survives a JSON round trip, unlike a Go map.
type Probabilities []Probability

// Get returns the value for category and whether it was present.
func (p Probabilities) Get(category string) (float64, bool) {
	for _, entry := range p {
		if entry.Category == category {
			return entry.Value, true
		}
	}
	return 0, false
}

// Argmax returns the entry with the highest value. Ties keep the earliest entry.
func (p Probabilities) Argmax() (Probability, bool) {
	if len(p) == 0 {
		return Probability{}, false
	}
	best := p[0]
	for _, entry := range p[1:] {
		if entry.Value > best.Value {
			best = entry
		}
	}
	return best, true
}

// MarshalJSON encodes the distribution as an object, keeping entry order.
func (p Probabilities) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Category)
		if err != nil {
			return nil, fmt.Errorf("failed to encode category %q: %w", entry.Category, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		if math.IsNaN(entry.Value) || math.IsInf(entry.Value, 0) {
			buf.WriteString("null")
			continue
		}
		value, err := json.Marshal(entry.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode probability for %q: %w", entry.Category, err)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object in document order. Values that are not
// numbers decode as NaN.
func (p *Probabilities) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("invalid probabilities payload")
	}
	result := gjson.ParseBytes(data)
	if result.Type == gjson.Null {
		*p = nil
		return nil
	}
	if !result.IsObject() {
		return fmt.Errorf("probabilities must be an object, got %s", result.Type)
	}
	*p = ProbabilitiesFromResult(result)
	return nil
}

// ProbabilitiesFromResult converts a parsed JSON object into a distribution.
func ProbabilitiesFromResult(result gjson.Result) Probabilities {
	var probs Probabilities
	result.ForEach(func(key, value gjson.Result) bool {
		probs = append(probs, Probability{
			Category: key.String(),
			Value:    NumberOrNaN(value),
		})
		return true
	})
	return probs
}

// NumberOrNaN returns the numeric value of r, or NaN when r is not a number.
func NumberOrNaN(r gjson.Result) float64 {
	if r.Type != gjson.Number {
		return math.NaN()
	}
	return r.Num
}
