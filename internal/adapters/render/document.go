// Package render produces the report document in its three forms: the
// terminal preview, the A4 PDF, and the WhatsApp message text. Preview,
// print and PDF all consume the same Document so what is previewed is
// exactly what is exported.
package render

import (
	"fmt"
	"time"

	"github.com/mushna03-prog/e-Laporan-Kokurikulum/internal/domain"
)

// DocumentTitle is the fixed report heading.
const DocumentTitle = "LAPORAN MINGGUAN AKTIVITI KOKURIKULUM"

// NoActivitiesPlaceholder is shown when the activities sequence is empty.
const NoActivitiesPlaceholder = "Tiada aktiviti direkodkan."

// MetaRow is one label/value pair in the document's metadata table.
type MetaRow struct {
	Label string
	Value string
}

// Document is the layout-neutral form of a rendered report.
type Document struct {
	Title    string
	UnitName string
	Meta     []MetaRow

	StudentsLine   string // "18 / 24 orang"
	HasPercentage  bool
	Percentage     int
	TeachersLine   string
	Activities     []string
	ValuesLine     string
	KbatLine       string
	PikebmTitle    string
	PikebmSummary  string
	AdvisorNote    string
	SignatureLabel string
	SignatureDate  string // current real date at render time, not the report date
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// BuildDocument assembles the document from a report snapshot. now stamps
// the signature block.
func BuildDocument(report domain.ReportData, now time.Time) Document {
	unitName := report.UnitName
	if unitName == "" {
		unitName = "[Nama Unit/Kelab]"
	}

	valuesLine := "-"
	if len(report.Values) > 0 {
		valuesLine = domain.JoinValues(report.Values)
	}

	advisorNote := report.AdvisorNote
	if advisorNote == "" {
		advisorNote = domain.DefaultAdvisorNote
	}

	return Document{
		Title:    DocumentTitle,
		UnitName: unitName,
		Meta: []MetaRow{
			{Label: "Bil. Perjumpaan", Value: orDash(report.MeetingNumber)},
			{Label: "Tarikh", Value: domain.FormatDate(report.Date, report.DateFormat)},
			{Label: "Masa", Value: fmt.Sprintf("%s - %s", report.StartTime, report.EndTime)},
			{Label: "Tempat", Value: orDash(report.Venue)},
		},
		StudentsLine:   fmt.Sprintf("%d / %d orang", report.StudentsPresent, report.StudentsTotal),
		HasPercentage:  report.StudentsTotal > 0,
		Percentage:     domain.AttendancePercentage(report.StudentsPresent, report.StudentsTotal),
		TeachersLine:   orDash(report.TeachersPresent),
		Activities:     append([]string(nil), report.Activities...),
		ValuesLine:     valuesLine,
		KbatLine:       orDash(report.Kbat),
		PikebmTitle:    orDash(report.PikebmTitle),
		PikebmSummary:  orDash(report.PikebmSummary),
		AdvisorNote:    advisorNote,
		SignatureLabel: "Tandatangan Guru Penasihat",
		SignatureDate:  domain.FormatLongDate(now),
	}
}
