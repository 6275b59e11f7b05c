package infra

// receipt.go — thermal receipt-style PDF rendering with go-pdf/fpdf.
// Renders a committed sale into the caller's writer; nothing touches disk.

import (
	"fmt"
	"io"

	"github.com/jrmmllrs/CoffeeShop-backend/internal/dto"

	"github.com/go-pdf/fpdf"
)

// GenerateReceiptPDF writes an A7-sized receipt for a committed sale.
func GenerateReceiptPDF(sale *dto.SaleResponse, w io.Writer) error {
	// A7 ≈ 74mm × 105mm — close to thermal receipt paper.
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8 // total margins = 8mm

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, "Coffee Shop", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Sales Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// ── Sale info ─────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Sale %s", sale.ID), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, sale.CreatedAt, "", 1, "L", false, 0, "")
	if sale.CashierName != "" {
		pdf.CellFormat(contentW, 4, "Cashier: "+sale.CashierName, "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Items ─────────────────────────────────────────────────────────────────
	col1 := contentW * 0.52 // product name
	col2 := contentW * 0.16 // qty
	col3 := contentW * 0.32 // subtotal

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 5, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Qty", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	for _, item := range sale.Items {
		name := item.ProductName
		if len(name) > 22 {
			name = name[:22]
		}
		pdf.CellFormat(col1, 4.5, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 4.5, fmt.Sprintf("%d", item.Quantity), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 4.5, item.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	}
	pdf.Ln(1)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(1)

	// ── Total & payment ───────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1+col2, 6, "TOTAL", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, sale.Total.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, "Payment: "+sale.PaymentMethod, "", 1, "L", false, 0, "")
	if sale.ReferenceNo != nil && *sale.ReferenceNo != "" {
		pdf.CellFormat(contentW, 4, "Ref: "+*sale.ReferenceNo, "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, "Thank you!", "", 1, "C", false, 0, "")

	return pdf.Output(w)
}
