package favorites

import (
	"bytes"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"

	"catalogohub/pkg/models"
)

// BuildReport renders a user's favorites list as a PDF document.
func BuildReport(userEmail string, generatedAt time.Time, summary models.FavoritesSummary, items []models.Favorite) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("CatalogoHub - Lista de Favoritos", true)
	pdf.AddPage()

	// header
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(21, 67, 96)
	pdf.Cell(0, 10, tr("CatalogoHub - Lista de Favoritos"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Usuário: %s", userEmail)))
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.Cell(0, 5, tr(fmt.Sprintf("Gerado em: %s", generatedAt.Format("02/01/2006 15:04"))))
	pdf.Ln(10)

	// summary box
	if summary.TotalItems > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(0, 0, 0)
		pdf.Cell(0, 7, tr("Resumo"))
		pdf.Ln(7)

		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(60, 6, tr(fmt.Sprintf("Total: %d", summary.TotalItems)))
		pdf.Cell(60, 6, tr(fmt.Sprintf("Jogos: %d", summary.GamesCount)))
		pdf.Cell(60, 6, tr(fmt.Sprintf("Animes: %d", summary.AnimesCount)))
		pdf.Ln(10)
	}

	// item table
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.Cell(0, 7, tr("Itens Favoritos"))
	pdf.Ln(8)

	if len(items) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.Cell(0, 6, tr("Nenhum item favoritado ainda."))
	} else {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(235, 235, 235)
		pdf.CellFormat(12, 7, "#", "1", 0, "C", true, 0, "")
		pdf.CellFormat(108, 7, tr("Título"), "1", 0, "L", true, 0, "")
		pdf.CellFormat(30, 7, tr("Tipo"), "1", 0, "L", true, 0, "")
		pdf.CellFormat(30, 7, tr("Data"), "1", 1, "L", true, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		for i, item := range items {
			fill := i%2 == 1
			pdf.SetFillColor(248, 248, 248)
			pdf.CellFormat(12, 6, fmt.Sprintf("%d", i+1), "1", 0, "C", fill, 0, "")
			pdf.CellFormat(108, 6, tr(truncateTitle(item.Title)), "1", 0, "L", fill, 0, "")
			pdf.CellFormat(30, 6, string(item.Kind), "1", 0, "L", fill, 0, "")
			pdf.CellFormat(30, 6, item.CreatedAt.Format("02/01/06"), "1", 1, "L", fill, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func truncateTitle(s string) string {
	const max = 70
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max]) + "..."
}
