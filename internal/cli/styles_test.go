package cli

import (
	"testing"

	tuitest "github.com/Veraticus/verdict/internal/tui/testing"
	"github.com/stretchr/testify/assert"
)

func TestFormatters(t *testing.T) {
	tests := []struct {
		name   string
		format func(string) string
		want   string
	}{
		{name: "success", format: FormatSuccess, want: SuccessIcon + " done"},
		{name: "error", format: FormatError, want: ErrorIcon + " done"},
		{name: "warning", format: FormatWarning, want: WarningIcon + " done"},
		{name: "info", format: FormatInfo, want: InfoIcon + " done"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tuitest.StripANSI(tt.format("done")))
		})
	}
}
