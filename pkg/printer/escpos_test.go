package printer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{"fits on one line", "Fried Rice", 20, []string{"Fried Rice"}},
		{"wraps at word boundary", "Paneer Chilli Dry Extra Spicy", 14, []string{"Paneer Chilli", "Dry Extra", "Spicy"}},
		{"hard-breaks a long word", "Abcdefghij", 4, []string{"Abcd", "efgh", "ij"}},
		{"empty string", "", 10, []string{""}},
		{"collapses whitespace", "  Veg   Manchurian  ", 20, []string{"Veg Manchurian"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WrapText(tt.in, tt.width))
		})
	}
}

func TestKeyValueAlignment(t *testing.T) {
	d := NewDocument(Width58mm)
	d.KeyValue("Subtotal:", "300.00")

	out := string(d.Bytes())
	idx := strings.Index(out, "Subtotal:")
	assert.GreaterOrEqual(t, idx, 0)

	line := out[idx:]
	if nl := strings.IndexByte(line, LF); nl >= 0 {
		line = line[:nl]
	}
	assert.Len(t, line, Width58mm)
	assert.True(t, strings.HasSuffix(line, "300.00"))
}

func TestItemLineWrapsLongNames(t *testing.T) {
	d := NewDocument(Width58mm)
	d.ItemLine(2, "Schezwan Paneer Noodles With Extra Gravy", "450.00")

	out := string(d.Bytes())
	assert.Contains(t, out, "2x ")
	assert.Contains(t, out, "450.00")

	// Continuation lines are indented under the name column.
	lines := strings.Split(out, string(rune(LF)))
	var contLines int
	for _, l := range lines {
		if strings.HasPrefix(l, "   ") && strings.TrimSpace(l) != "" {
			contLines++
		}
	}
	assert.Greater(t, contLines, 0)
}

func TestDocumentResetClearsContent(t *testing.T) {
	d := NewDocument(Width80mm)
	d.Text("hello")
	assert.Contains(t, string(d.Bytes()), "hello")

	d.Reset()
	assert.NotContains(t, string(d.Bytes()), "hello")
}
