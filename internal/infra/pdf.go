package infra

// pdf.go handles order sheet generation using go-pdf/fpdf.
// The output file is saved to storagePath/order_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AlainRABIE/Ap3-Sauvegarde/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateOrderPDF writes the printable order sheet for one order and
// returns the absolute path to the generated file. storagePath is created
// if needed.
func GenerateOrderPDF(order *model.Order, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("order_%d.pdf", order.ID)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, fmt.Sprintf("Order #%d", order.ID), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Domain: %s", order.Domain), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Item: %d", order.ItemID), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Quantity: %d", order.Quantity), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Ordered at: %s", order.OrderedAt.Format("02/01/2006 15:04")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("State: %s", order.State), "", 1, "L", false, 0, "")
	if order.SupplierID != nil {
		pdf.CellFormat(0, 8, fmt.Sprintf("Supplier: %d", *order.SupplierID), "", 1, "L", false, 0, "")
	}

	pdf.Ln(6)
	pageW, _ := pdf.GetPageSize()
	pdf.SetLineWidth(0.5)
	pdf.Line(20, pdf.GetY(), pageW-20, pdf.GetY())
	pdf.Ln(6)

	pdf.CellFormat(0, 8, "Signature:", "", 1, "L", false, 0, "")
	pdf.Ln(4)
	pdf.Line(20, pdf.GetY(), 80, pdf.GetY())

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
