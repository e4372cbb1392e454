package receipt

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/chingz/pos-api/internal/domain/entity"
	"github.com/go-pdf/fpdf"
)

// Page geometry in points. 80mm ≈ 226.77pt, 58mm ≈ 164.41pt.
const (
	pdfWidth80mm = 226.77
	pdfWidth58mm = 164.41
	pdfMargin    = 8.0
	pdfLine      = 11.0 // body line height
	pdfLogoSize  = 48.0
)

// RenderPDF renders the receipt as a token-style PDF sized for thermal
// paper. Long item names wrap within the description column; the page
// height is measured from the wrapped content so nothing is clipped.
func RenderPDF(r *entity.Receipt, opts Options) ([]byte, error) {
	pageWidth := pdfWidth80mm
	if opts.paperWidth() == Paper58mm {
		pageWidth = pdfWidth58mm
	}

	logoPath := ""
	if opts.ShowLogo && r.Header.LogoURL != "" {
		if _, err := os.Stat(r.Header.LogoURL); err == nil {
			logoPath = r.Header.LogoURL
		}
	}

	// First pass: lay the receipt out against a tall page to measure the
	// height the content actually needs.
	probe := newReceiptPDF(pageWidth, 10000)
	writeReceipt(probe, r, pageWidth, logoPath)
	height := probe.GetY() + pdfMargin
	if probe.Err() {
		return nil, fmt.Errorf("receipt: pdf measure failed: %v", probe.Error())
	}

	// Second pass: the real document at the measured height.
	pdf := newReceiptPDF(pageWidth, height)
	writeReceipt(pdf, r, pageWidth, logoPath)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("receipt: pdf render failed: %w", err)
	}
	return buf.Bytes(), nil
}

func newReceiptPDF(width, height float64) *fpdf.Fpdf {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, 0)
	// Fixed dates keep output byte-identical for the same input. fpdf falls
	// back to time.Now() for any date left unset, which also feeds the
	// trailer file ID hash.
	pdf.SetCreationDate(time.Unix(0, 0).UTC())
	pdf.SetModificationDate(time.Unix(0, 0).UTC())
	pdf.AddPage()
	return pdf
}

func writeReceipt(pdf *fpdf.Fpdf, r *entity.Receipt, pageWidth float64, logoPath string) {
	usable := pageWidth - 2*pdfMargin

	if logoPath != "" {
		x := (pageWidth - pdfLogoSize) / 2
		pdf.ImageOptions(logoPath, x, pdf.GetY(), pdfLogoSize, 0, true,
			fpdf.ImageOptions{AllowNegativePosition: false}, 0, "")
		pdf.Ln(4)
	}

	// Header
	if r.Header.ShopName != "" {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(usable, 15, r.Header.ShopName, "", 1, "C", false, 0, "")
	}
	pdf.SetFont("Helvetica", "", 8)
	for _, line := range []string{r.Header.Tagline, r.Header.Address} {
		if line != "" {
			pdf.CellFormat(usable, 10, line, "", 1, "C", false, 0, "")
		}
	}
	if r.Header.Phone != "" {
		pdf.CellFormat(usable, 10, "Ph: "+r.Header.Phone, "", 1, "C", false, 0, "")
	}

	drawDashes(pdf, pageWidth)

	// Invoice meta
	pdf.SetFont("Helvetica", "", 8)
	half := usable / 2
	pdf.CellFormat(half, pdfLine, r.InvoiceNo, "", 0, "L", false, 0, "")
	pdf.CellFormat(half, pdfLine, r.TokenLabel, "", 1, "R", false, 0, "")
	pdf.CellFormat(half, pdfLine, r.Date, "", 0, "L", false, 0, "")
	pdf.CellFormat(half, pdfLine, r.PaymentMode, "", 1, "R", false, 0, "")
	if r.Customer != "" {
		pdf.CellFormat(usable, pdfLine, "Customer: "+r.Customer, "", 1, "L", false, 0, "")
	}

	drawDashes(pdf, pageWidth)

	// Items: qty, wrapped name, amount right-aligned on the first line
	qtyWidth := 22.0
	amtWidth := 52.0
	nameWidth := usable - qtyWidth - amtWidth

	for _, item := range r.Items {
		lines := pdf.SplitText(item.Name, nameWidth)
		if len(lines) == 0 {
			lines = []string{""}
		}
		pdf.CellFormat(qtyWidth, pdfLine, fmt.Sprintf("%dx", item.Quantity), "", 0, "L", false, 0, "")
		pdf.CellFormat(nameWidth, pdfLine, lines[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(amtWidth, pdfLine, money(r.CurrencySymbol, item.Total), "", 1, "R", false, 0, "")
		for _, cont := range lines[1:] {
			pdf.CellFormat(qtyWidth, pdfLine, "", "", 0, "L", false, 0, "")
			pdf.CellFormat(nameWidth+amtWidth, pdfLine, cont, "", 1, "L", false, 0, "")
		}
	}

	drawDashes(pdf, pageWidth)

	// Totals
	writeTotal(pdf, usable, "Subtotal", money(r.CurrencySymbol, r.SubTotal), false)
	if r.Discount > 0 {
		writeTotal(pdf, usable, "Discount", "-"+money(r.CurrencySymbol, r.Discount), false)
	}
	writeTotal(pdf, usable, "GST (18%)", money(r.CurrencySymbol, r.Tax), false)
	writeTotal(pdf, usable, "Total", money(r.CurrencySymbol, r.Total), true)

	drawDashes(pdf, pageWidth)

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(usable, 12, "Thank you, visit again!", "", 1, "C", false, 0, "")
}

func writeTotal(pdf *fpdf.Fpdf, usable float64, label, amount string, grand bool) {
	if grand {
		pdf.SetFont("Helvetica", "B", 10)
	} else {
		pdf.SetFont("Helvetica", "", 8)
	}
	pdf.CellFormat(usable/2, pdfLine, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(usable/2, pdfLine, amount, "", 1, "R", false, 0, "")
}

func drawDashes(pdf *fpdf.Fpdf, pageWidth float64) {
	pdf.Ln(2)
	y := pdf.GetY()
	pdf.SetDashPattern([]float64{2, 2}, 0)
	pdf.Line(pdfMargin, y, pageWidth-pdfMargin, y)
	pdf.SetDashPattern([]float64{}, 0)
	pdf.Ln(4)
}

func money(symbol string, amount float64) string {
	return fmt.Sprintf("%s %.2f", symbol, amount)
}
