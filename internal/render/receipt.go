package render

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/rs/zerolog/log"

	"github.com/chatcont39-glitch/educheck/internal/imaging"
	"github.com/chatcont39-glitch/educheck/internal/models"
)

const (
	titleText    = "EduCheck - Comprovante de Materiais"
	subtitleText = "Escola Municipal de Tecnologia"

	// Timestamps follow the institutional convention.
	timestampLayout = "02/01/2006 15:04"

	pageWidth = 210.0 // A4 portrait, mm
	marginX   = 20.0
	textWidth = 170.0
)

// Receipt is a rendered submission document. Bytes and Base64 are two views
// of the same render, so a previewed receipt and its persisted copy can never
// diverge.
type Receipt struct {
	data []byte
}

// Bytes returns the raw document bytes.
func (r *Receipt) Bytes() []byte {
	return r.data
}

// Base64 returns the standard base64 encoding of the document, with no
// data-URI prefix, as expected by the save endpoint.
func (r *Receipt) Base64() string {
	return base64.StdEncoding.EncodeToString(r.data)
}

// RowStatus returns the per-row status label for the receipt table: "OK" when
// the counted quantity matches the expected one, "DIVERGENTE" otherwise.
func RowStatus(item models.InventoryItem) string {
	if item.CurrentQuantity == item.ExpectedQuantity {
		return "OK"
	}
	return "DIVERGENTE"
}

// StatusLabel returns the display label for a submission status.
func StatusLabel(status models.SubmissionStatus) string {
	if status == models.StatusCompleted {
		return "CONCLUÍDO"
	}
	return "PENDENTE"
}

// Render produces the paginated receipt for a submission record: title block,
// info block, item table, conditional justification and signature blocks, and
// a footer timestamp. Rendering a well-formed record has no legitimate
// failure path; a signature payload that does not decode degrades to a
// receipt without the image rather than failing the document.
func Render(rec *models.SubmissionRecord) (*Receipt, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	timestamp := rec.Date.Format(timestampLayout)

	centered := func(y float64, s string) {
		w := pdf.GetStringWidth(tr(s))
		pdf.Text((pageWidth-w)/2, y, tr(s))
	}

	// Title block.
	pdf.SetFont("Helvetica", "", 20)
	pdf.SetTextColor(40, 40, 40)
	centered(20, titleText)
	pdf.SetFont("Helvetica", "", 12)
	centered(30, subtitleText)
	pdf.Line(marginX, 35, pageWidth-marginX, 35)

	// Info block.
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(marginX, 45, tr("Professor(a): "+rec.TeacherName))
	pdf.Text(marginX, 52, tr("Data/Hora: "+timestamp))

	tableY := 70.0
	if rec.UsageStartTime != "" && rec.UsageEndTime != "" {
		pdf.Text(marginX, 59, tr("Período de Uso: "+rec.UsageStartTime+" às "+rec.UsageEndTime))
		pdf.Text(marginX, 66, tr("Status: "+StatusLabel(rec.Status)))
		tableY = 75
	} else {
		pdf.Text(marginX, 59, tr("Status: "+StatusLabel(rec.Status)))
	}

	finalY := drawItemTable(pdf, tr, rec.Items, tableY)

	// Justification block, only when present.
	if rec.Justification != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(40, 40, 40)
		pdf.Text(marginX, finalY+10, tr("Justificativa/Ocorrências:"))
		pdf.SetFont("Helvetica", "I", 10)
		pdf.SetXY(marginX, finalY+12)
		pdf.MultiCell(textWidth, 5, tr(rec.Justification), "", "L", false)
	}

	// Signature block, only when present.
	if rec.Signature != "" {
		drawSignature(pdf, tr, rec.Signature, finalY)
	}

	// Footer.
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(150, 150, 150)
	centered(285, "Documento gerado eletronicamente em "+timestamp)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering receipt: %w", err)
	}
	return &Receipt{data: buf.Bytes()}, nil
}

// drawItemTable renders the grid table of checklist items starting at y and
// returns the y coordinate of the table's end.
func drawItemTable(pdf *fpdf.Fpdf, tr func(string) string, items []models.InventoryItem, y float64) float64 {
	cols := []struct {
		title string
		width float64
	}{
		{"Categoria", 40},
		{"Item", 60},
		{"Esperado", 22},
		{"Encontrado", 26},
		{"Status", 22},
	}

	pdf.SetXY(marginX, y)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(41, 128, 185)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetDrawColor(180, 180, 180)
	for _, col := range cols {
		pdf.CellFormat(col.width, 8, tr(col.title), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(40, 40, 40)
	for _, item := range items {
		pdf.SetX(marginX)
		pdf.CellFormat(cols[0].width, 7, tr(string(item.Category)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(cols[1].width, 7, tr(item.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(cols[2].width, 7, fmt.Sprintf("%d", item.ExpectedQuantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(cols[3].width, 7, fmt.Sprintf("%d", item.CurrentQuantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(cols[4].width, 7, tr(RowStatus(item)), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	return pdf.GetY()
}

// drawSignature renders the signature label, image and underline rule below
// the table end. The image is skipped when the payload does not decode.
func drawSignature(pdf *fpdf.Fpdf, tr func(string) string, signature string, finalY float64) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(40, 40, 40)
	pdf.SetDrawColor(0, 0, 0)
	pdf.Text(marginX, finalY+40, tr("Assinatura Digital:"))

	sigPNG, err := imaging.DecodeSignature(signature)
	if err != nil {
		log.Warn().Err(err).Msg("Signature image could not be decoded, rendering without it")
	} else {
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("signature", opts, bytes.NewReader(sigPNG))
		pdf.ImageOptions("signature", marginX, finalY+45, 50, 20, false, opts, 0, "")
	}

	pdf.Line(marginX, finalY+65, marginX+50, finalY+65)
}
