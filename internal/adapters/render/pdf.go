package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/mushna03-prog/e-Laporan-Kokurikulum/internal/domain"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// PDFFileName derives the export file name from the unit name and report
// date, stripping anything that is not alphanumeric.
func PDFFileName(report domain.ReportData) string {
	unit := nonAlphanumeric.ReplaceAllString(report.UnitName, "_")
	if strings.Trim(unit, "_") == "" {
		unit = "Kokurikulum"
	}
	return fmt.Sprintf("Laporan-%s-%s.pdf", unit, report.Date)
}

// PDF writes the document as an A4 portrait file at path. The layout mirrors
// the terminal preview: header, metadata table, attendance, activities,
// values/KBAT, PiKeBM, advisor note, signature block.
func PDF(doc Document, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	usable := pageWidth - 36

	// Header
	pdf.SetFont("Times", "B", 14)
	pdf.CellFormat(usable, 8, doc.Title, "", 1, "C", false, 0, "")
	pdf.SetFont("Times", "B", 12)
	pdf.CellFormat(usable, 7, doc.UnitName, "", 1, "C", false, 0, "")
	pdf.SetLineWidth(0.5)
	pdf.Line(18, pdf.GetY()+2, 18+usable, pdf.GetY()+2)
	pdf.Ln(8)

	labelW := usable * 0.25
	valueW := usable * 0.75

	metaRow := func(label, value string) {
		pdf.SetFont("Times", "B", 10)
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(labelW, 7, label, "1", 0, "L", true, 0, "")
		pdf.SetFont("Times", "", 10)
		pdf.CellFormat(valueW, 7, value, "1", 1, "L", false, 0, "")
	}
	for _, row := range doc.Meta {
		metaRow(row.Label, row.Value)
	}
	pdf.Ln(5)

	sectionHeading := func(title string) {
		pdf.SetFont("Times", "B", 10)
		pdf.CellFormat(usable, 6, strings.ToUpper(title), "B", 1, "L", false, 0, "")
		pdf.Ln(1)
	}

	// Attendance
	sectionHeading("Kehadiran")
	students := doc.StudentsLine
	if doc.HasPercentage {
		students = fmt.Sprintf("%s (%d%%)", students, doc.Percentage)
	}
	metaRow("Kehadiran Murid", students)
	metaRow("Guru Penasihat", doc.TeachersLine)
	pdf.Ln(5)

	// Activities
	sectionHeading("Laporan Aktiviti")
	pdf.SetFont("Times", "", 10)
	if len(doc.Activities) > 0 {
		for i, act := range doc.Activities {
			pdf.MultiCell(usable, 6, fmt.Sprintf("%d. %s", i+1, act), "", "L", false)
		}
	} else {
		pdf.SetFont("Times", "I", 10)
		pdf.MultiCell(usable, 6, NoActivitiesPlaceholder, "", "L", false)
	}
	pdf.Ln(5)

	// Values / KBAT
	sectionHeading("Penerapan Nilai Murni")
	pdf.SetFont("Times", "", 10)
	pdf.MultiCell(usable, 6, doc.ValuesLine, "", "L", false)
	pdf.Ln(3)

	sectionHeading("Elemen KBAT")
	pdf.SetFont("Times", "", 10)
	pdf.MultiCell(usable, 6, doc.KbatLine, "", "L", false)
	pdf.Ln(3)

	// PiKeBM
	sectionHeading("Sisipan PiKeBM")
	pdf.SetFont("Times", "B", 10)
	pdf.CellFormat(labelW, 6, "Tajuk:", "", 0, "L", false, 0, "")
	pdf.SetFont("Times", "", 10)
	pdf.MultiCell(valueW, 6, doc.PikebmTitle, "", "L", false)
	pdf.SetFont("Times", "B", 10)
	pdf.CellFormat(labelW, 6, "Ringkasan:", "", 0, "L", false, 0, "")
	pdf.SetFont("Times", "", 10)
	pdf.MultiCell(valueW, 6, doc.PikebmSummary, "", "L", false)
	pdf.Ln(3)

	// Advisor note
	sectionHeading("Catatan / Ulasan Guru")
	pdf.SetFont("Times", "", 10)
	pdf.MultiCell(usable, 6, doc.AdvisorNote, "", "L", false)

	// Signature block, right-aligned
	pdf.Ln(20)
	sigW := 60.0
	x := 18 + usable - sigW
	pdf.SetX(x)
	pdf.CellFormat(sigW, 6, strings.Repeat(".", 40), "", 1, "C", false, 0, "")
	pdf.SetX(x)
	pdf.SetFont("Times", "B", 10)
	pdf.CellFormat(sigW, 6, doc.SignatureLabel, "", 1, "C", false, 0, "")
	pdf.SetX(x)
	pdf.SetFont("Times", "", 9)
	pdf.CellFormat(sigW, 5, "Tarikh: "+doc.SignatureDate, "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(path); err != nil {
		return &domain.ExportError{
			Op:   "PDF export",
			Hint: "Gunakan butang 'Cetak' dan pilih 'Save as PDF'.",
			Err:  err,
		}
	}
	return nil
}
