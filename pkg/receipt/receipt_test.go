package receipt

import (
	"strings"
	"testing"
	"time"

	"github.com/chingz/pos-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReceipt() *entity.Receipt {
	return &entity.Receipt{
		Header: entity.ReceiptHeader{
			ShopName: "CHINGZ CHINESE",
			Tagline:  "FAST FOOD",
			Address:  "BAWARIYA KALAN BHOPAL",
		},
		InvoiceNo:      "INV-42",
		TokenLabel:     "Token# 42",
		Date:           "28/08/2026 19:45",
		Customer:       "Ravi",
		PaymentMode:    "CASH",
		CurrencySymbol: "Rs",
		Items: []entity.ReceiptItem{
			{Name: "Veg Manchurian", Quantity: 2, UnitPrice: 150, Total: 300},
			{Name: "Paneer Chilli", Quantity: 1, UnitPrice: 200, Total: 200},
		},
		SubTotal: 500,
		Discount: 0,
		Tax:      90,
		Total:    590,
	}
}

func TestRenderHTMLIsDeterministic(t *testing.T) {
	r := sampleReceipt()

	first, err := RenderHTML(r, DefaultOptions())
	require.NoError(t, err)
	second, err := RenderHTML(r, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderHTMLEscapesUserText(t *testing.T) {
	r := sampleReceipt()
	r.Items[0].Name = "<script>alert(1)</script>"
	r.Customer = "a<b>c"

	out, err := RenderHTML(r, DefaultOptions())
	require.NoError(t, err)

	html := string(out)
	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.NotContains(t, html, "a<b>c")
}

func TestRenderHTMLDiscountRowOnlyWhenPresent(t *testing.T) {
	r := sampleReceipt()

	out, err := RenderHTML(r, DefaultOptions())
	require.NoError(t, err)
	assert.NotContains(t, string(out), "Discount")

	r.Discount = 50
	out, err = RenderHTML(r, DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, string(out), "Discount")
	assert.Contains(t, string(out), "-Rs 50.00")
}

func TestRenderHTMLPreservesItemOrder(t *testing.T) {
	r := sampleReceipt()

	out, err := RenderHTML(r, DefaultOptions())
	require.NoError(t, err)

	html := string(out)
	first := strings.Index(html, "Veg Manchurian")
	second := strings.Index(html, "Paneer Chilli")
	require.Greater(t, first, 0)
	require.Greater(t, second, 0)
	assert.Less(t, first, second)
}

func TestRenderHTMLPaperWidth(t *testing.T) {
	r := sampleReceipt()

	out, err := RenderHTML(r, Options{PaperWidth: Paper58mm})
	require.NoError(t, err)
	assert.Contains(t, string(out), "size: 58mm auto")

	out, err = RenderHTML(r, Options{PaperWidth: 0})
	require.NoError(t, err)
	assert.Contains(t, string(out), "size: 80mm auto")
}

func TestRenderPDFProducesDocument(t *testing.T) {
	r := sampleReceipt()
	r.Items = append(r.Items, entity.ReceiptItem{
		Name:     "Schezwan Paneer Noodles With Extra Gravy And Double Cheese",
		Quantity: 3, UnitPrice: 180, Total: 540,
	})

	out, err := RenderPDF(r, DefaultOptions())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF-"))

	narrow, err := RenderPDF(r, Options{PaperWidth: Paper58mm})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(narrow), "%PDF-"))
}

func TestRenderPDFIsDeterministic(t *testing.T) {
	r := sampleReceipt()

	first, err := RenderPDF(r, DefaultOptions())
	require.NoError(t, err)
	second, err := RenderPDF(r, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderPDFPinsAllDocumentDates(t *testing.T) {
	r := sampleReceipt()

	out, err := RenderPDF(r, DefaultOptions())
	require.NoError(t, err)

	// Both CreationDate and ModDate must be the fixed epoch; a date left
	// unset falls back to the render-time clock and also changes the
	// trailer file ID, so output would differ across a second boundary.
	doc := string(out)
	assert.Equal(t, 2, strings.Count(doc, "D:19700101000000"))
	assert.NotContains(t, doc, "D:"+time.Now().UTC().Format("2006"))
}

func TestBuildMessage(t *testing.T) {
	r := sampleReceipt()

	msg := BuildMessage(r)
	assert.Contains(t, msg, "Hi Ravi")
	assert.Contains(t, msg, "*INV-42*")
	assert.Contains(t, msg, "- 2x Veg Manchurian: Rs 300.00")
	assert.Contains(t, msg, "Subtotal: Rs 500.00")
	assert.NotContains(t, msg, "Discount")
	assert.Contains(t, msg, "*Total: Rs 590.00*")
}

func TestBuildMessageWithDiscountAndNoCustomer(t *testing.T) {
	r := sampleReceipt()
	r.Customer = ""
	r.Discount = 50

	msg := BuildMessage(r)
	assert.True(t, strings.HasPrefix(msg, "Thank you for your order"))
	assert.Contains(t, msg, "Discount: -Rs 50.00")
}
