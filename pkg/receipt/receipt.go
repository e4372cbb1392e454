// Package receipt renders a finalized bill into customer-facing formats:
// a printable HTML document, a thermal-sized PDF and a WhatsApp message.
// Rendering is pure: same receipt and options in, byte-identical output out.
package receipt

// Paper widths supported by the renderers, in millimetres.
const (
	Paper80mm = 80
	Paper58mm = 58
)

// Options controls receipt presentation.
type Options struct {
	// PaperWidth is the target paper width in mm: Paper80mm or Paper58mm.
	// Anything else falls back to Paper80mm.
	PaperWidth int
	// ShowLogo includes the restaurant logo when the header has one.
	ShowLogo bool
}

// DefaultOptions returns the options used when the caller passes none.
func DefaultOptions() Options {
	return Options{PaperWidth: Paper80mm, ShowLogo: true}
}

func (o Options) paperWidth() int {
	if o.PaperWidth == Paper58mm {
		return Paper58mm
	}
	return Paper80mm
}
