// Package export renders finished records into downloadable documents. It
// takes complete receipts plus the administrator profile and produces files;
// it never reaches back into storage.
package export

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"receiptbook/internal/core"
	"receiptbook/internal/i18n"
)

// ReceiptPDF renders one receipt as an A4 PDF: society header, receipt
// number and date, a name/amount table, the total and the signature block.
// The built-in PDF fonts cover Latin scripts only, so for Gujarati and Hindi
// receipts the labels are swapped to English rather than printing unmapped
// glyphs. Honoring the stored language here would need Gujarati and
// Devanagari TTFs embedded via AddUTF8Font, which the binary does not carry.
func ReceiptPDF(r core.Receipt, profile core.AdminProfile) ([]byte, error) {
	labelLang := r.Language
	if labelLang != core.English {
		labelLang = core.English
	}
	t := func(key string) string { return i18n.T(labelLang, key) }
	society := i18n.SocietyFor(labelLang)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pageW, pageH := pdf.GetPageSize()

	// Society header, centered.
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 9, society.Title, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, society.Subtitle, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 7, society.Address, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 7, society.RegNo, "", 1, "C", false, 0, "")

	pdf.SetLineWidth(0.5)
	pdf.Line(20, 50, pageW-20, 50)

	// Receipt number left, date right.
	pdf.SetFont("Helvetica", "", 14)
	pdf.SetXY(20, 55)
	pdf.CellFormat(0, 8, fmt.Sprintf("%s: %s", t("receiptNumber"), r.ReceiptNumber), "", 0, "L", false, 0, "")
	pdf.SetXY(20, 55)
	pdf.CellFormat(pageW-40, 8, fmt.Sprintf("%s: %s", t("date"), r.Date), "", 1, "R", false, 0, "")

	// Line item table.
	tableW := pageW - 40
	colW := tableW / 2
	pdf.SetXY(20, 70)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(75, 85, 99)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(colW, 9, t("name"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(colW, 9, t("amount"), "1", 1, "R", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetX(20)
	pdf.CellFormat(colW, 9, r.Name, "1", 0, "L", false, 0, "")
	pdf.CellFormat(colW, 9, r.Amount.String(), "1", 1, "R", false, 0, "")

	// Total.
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetX(20)
	pdf.CellFormat(tableW, 10, fmt.Sprintf("%s: %s", t("total"), r.Amount.String()), "", 1, "R", false, 0, "")

	// Signature block: drawn image when present, blank line otherwise.
	sigY := pdf.GetY() + 10
	if profile.Signature != "" {
		if name, opts, data, err := decodeDataURI(profile.Signature); err == nil {
			pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
			pdf.ImageOptions(name, 20, sigY, 50, 20, false, opts, 0, "")
			pdf.SetFont("Helvetica", "", 12)
			pdf.Text(20, sigY+27, profile.Name)
		}
	} else {
		pdf.SetFont("Helvetica", "", 12)
		pdf.Text(20, sigY+10, "_________________________")
		pdf.Text(20, sigY+18, t("signature"))
	}

	// Footer.
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(150, 150, 150)
	footerY := pageH - 15
	pdf.SetXY(0, footerY)
	pdf.CellFormat(0, 5, t("digitalCopyNotice"), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, t("createdBy"), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// decodeDataURI splits a base64 image data URI into a registration name,
// image options and raw bytes.
func decodeDataURI(uri string) (string, fpdf.ImageOptions, []byte, error) {
	var opts fpdf.ImageOptions
	meta, payload, ok := strings.Cut(uri, ",")
	if !ok {
		return "", opts, nil, fmt.Errorf("malformed data URI")
	}
	switch {
	case strings.HasPrefix(meta, "data:image/png"):
		opts.ImageType = "PNG"
	case strings.HasPrefix(meta, "data:image/jpeg"), strings.HasPrefix(meta, "data:image/jpg"):
		opts.ImageType = "JPG"
	default:
		return "", opts, nil, fmt.Errorf("unsupported image type in data URI")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", opts, nil, fmt.Errorf("decode data URI: %w", err)
	}
	return "signature", opts, data, nil
}
