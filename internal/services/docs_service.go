package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"resale/internal/currency"
	"resale/internal/domain/models"
	"resale/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders printable summaries of confirmed bulk edits.
type DocsService struct {
	Edits      BulkEditStore
	Currencies *currency.Table
	RequestID  string
	Loader     func(ctx context.Context, userID, editID int64) (models.BulkEdit, error)
}

// BulkEditSummary returns the PDF summary of one of the seller's edits and its filename.
func (s DocsService) BulkEditSummary(ctx context.Context, seller Seller, editID int64) ([]byte, string, error) {
	edit, err := s.load(ctx, seller.UserID, editID)
	if err != nil {
		return nil, "", err
	}
	var cur models.Currency
	if s.Currencies != nil {
		cur, _ = s.Currencies.ByCode(edit.CurrencyCode)
	}
	if cur.Code == "" {
		cur = models.Currency{Code: edit.CurrencyCode, Symbol: edit.CurrencyCode, Locale: "en", MaxDecimals: 2}
	}
	utils.LogEvent(s.RequestID, "docs", "bulk_edit_summary", fmt.Sprintf("edit_id=%d items=%d", edit.ID, len(edit.Items)))
	return buildBulkEditPDF(edit, cur)
}

func (s DocsService) load(ctx context.Context, userID, editID int64) (models.BulkEdit, error) {
	if s.Loader != nil {
		return s.Loader(ctx, userID, editID)
	}
	return s.Edits.GetByID(ctx, userID, editID)
}

var editOptionTitles = map[string]string{
	"increaseByValue":       "Increase by",
	"decreaseByValue":       "Decrease by",
	"beatLowestListByValue": "Beat lowest list by",
	"setToValue":            "Set to",
}

func buildBulkEditPDF(e models.BulkEdit, cur models.Currency) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Bulk List Edit", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BULK LIST EDIT")
	pdf.Ln(12)

	option := editOptionTitles[e.EditOption]
	if option == "" {
		option = e.EditOption
	}
	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Edit        : #%d", e.ID),
		fmt.Sprintf("Date        : %s UTC", safe(utils.FormatDateTime(e.CreatedAt), "-")),
		fmt.Sprintf("Change      : %s %s", option, currency.DisplayPrecise(e.EditValue, cur)),
		fmt.Sprintf("Expiration  : %d days", e.Expiration),
		fmt.Sprintf("Lists       : %d", len(e.Items)),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, tr(l))
		pdf.Ln(7)
	}
	pdf.Ln(4)

	widths := []float64{30, 30, 25, 45, 45}
	pdf.SetFont("Helvetica", "B", 11)
	for i, h := range []string{"List", "Product", "Size", "Old price", "New price"} {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 11)
	var oldTotal, newTotal float64
	for _, it := range e.Items {
		oldTotal += it.OldPrice
		newTotal += it.NewPrice
		row := []string{
			fmt.Sprintf("#%d", it.OfferListID),
			fmt.Sprintf("#%d", it.ProductID),
			safe(utils.NormalizeSpace(it.Size), "-"),
			currency.DisplayPrecise(it.OldPrice, cur),
			currency.DisplayPrecise(it.NewPrice, cur),
		}
		for i, v := range row {
			align := "L"
			if i >= 3 {
				align = "R"
			}
			pdf.CellFormat(widths[i], 7, tr(v), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(widths[0]+widths[1]+widths[2], 8, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(widths[3], 8, tr(currency.DisplayPrecise(oldTotal, cur)), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[4], 8, tr(currency.DisplayPrecise(newTotal, cur)), "1", 0, "R", false, 0, "")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Prices are list prices in "+cur.Code+". Fees are not included.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("BULK_EDIT_%d_%s.pdf", e.ID, safeFilenamePart(e.CurrencyCode))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
