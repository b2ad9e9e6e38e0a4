package admin

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Sheddybata/sdp.app/internal/member"
	"github.com/go-pdf/fpdf"
)

// PDFRowLimit caps the PDF roster. The CSV export carries every row.
const PDFRowLimit = 50

var csvHeader = []string{
	"ID", "Title", "Surname", "FirstName", "OtherNames", "Phone", "Email", "DOB",
	"JoinDate", "State", "LGA", "Ward", "VoterID", "Gender", "RegisteredBy",
}

func csvRecord(r *member.Response) []string {
	return []string{
		r.ID, r.Title, r.Surname, r.FirstName, r.OtherNames, r.Phone, r.Email, r.DateOfBirth,
		r.JoinDate, r.StateName, r.LGAName, r.WardName, r.VoterRegistrationNumber, r.Gender, r.RegisteredBy,
	}
}

// WriteCSV writes the header followed by one line per row. Every data cell
// is quoted with embedded quotes doubled; lines are separated by "\n" with
// no trailing newline.
func WriteCSV(w io.Writer, rows []member.Response) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(strings.Join(csvHeader, ","))

	cells := make([]string, len(csvHeader))
	for i := range rows {
		for j, v := range csvRecord(&rows[i]) {
			cells[j] = `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
		}
		bw.WriteByte('\n')
		bw.WriteString(strings.Join(cells, ","))
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// PDF layout, in millimetres on portrait A4.
const (
	pdfMarginLeft = 14.0
	pdfTitleY     = 14.0
	pdfFirstLineY = 22.0
	pdfLineHeight = 6.0
	pdfMaxY       = 270.0
)

// WritePDF renders the first PDFRowLimit rows as a numbered roster.
func WritePDF(w io.Writer, rows []member.Response) error {
	if err := rosterPDF(rows).Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func rosterPDF(rows []member.Response) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("SDP Member List", true)
	pdf.SetCreator("sdp-member-portal", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "", 14)
	pdf.Text(pdfMarginLeft, pdfTitleY, "SDP Member List (filtered)")

	pdf.SetFont("Helvetica", "", 10)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	y := pdfFirstLineY
	for i := range rows[:min(len(rows), PDFRowLimit)] {
		if y > pdfMaxY {
			pdf.AddPage()
			y = pdfTitleY
		}
		r := &rows[i]
		line := fmt.Sprintf("%d. %s %s - %s - %s", i+1, r.Surname, r.FirstName, r.VoterRegistrationNumber, r.StateName)
		pdf.Text(pdfMarginLeft, y, tr(line))
		y += pdfLineHeight
	}
	return pdf
}
