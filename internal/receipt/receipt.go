// Package receipt renders a printable comprobante for a booked turno.
package receipt

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

const shopName = "Barbería"

// Render writes an A6 receipt for ap. Times are shown in loc.
func Render(ap *models.Appointment, loc *time.Location) ([]byte, error) {
	if loc == nil {
		loc = time.UTC
	}

	pdf := fpdf.New("P", "mm", "A6", "")
	pdf.SetMargins(8, 8, 8)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 16

	// Header
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, tr(shopName), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Comprobante de turno", "", 1, "C", false, 0, "")
	pdf.Ln(3)

	pdf.Line(8, pdf.GetY(), pageW-8, pdf.GetY())
	pdf.Ln(3)

	start := ap.StartTime.In(loc)
	end := ap.EndTime.In(loc)

	rows := [][2]string{
		{"Turno N°", fmt.Sprintf("%d", ap.ID)},
		{"Cliente", ap.Client},
		{"Barbero", ap.Barber},
		{"Fecha", start.Format("02/01/2006")},
		{"Horario", start.Format("15:04") + " - " + end.Format("15:04")},
		{"Tipo", ap.Type},
		{"Servicios", ap.Services},
		{"Duración", fmt.Sprintf("%d min", ap.DurationMinutes)},
	}

	labelW := contentW * 0.35
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(labelW, 6, tr(row[0]+":"), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(contentW-labelW, 6, tr(row[1]), "", 1, "L", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(8, pdf.GetY(), pageW-8, pdf.GetY())
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(labelW, 7, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW-labelW, 7, fmt.Sprintf("$%d", ap.Price), "", 1, "R", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 4, tr("¡Te esperamos!"), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("receipt: render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
