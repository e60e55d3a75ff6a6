// Package domain contains the report data model and the pure derived-value
// calculations shared by every consumer (form editor, preview, message text,
// submission payload).
package domain

import (
	"strings"
	"time"
)

// DateFormat selects how the report date is rendered in the document.
type DateFormat string

const (
	// DateFormatLong renders as "24 Oktober 2023".
	DateFormatLong DateFormat = "d MMMM yyyy"
	// DateFormatSlash renders as "24/10/2023".
	DateFormatSlash DateFormat = "dd/mm/yyyy"
	// DateFormatDash renders as "24-10-2023".
	DateFormatDash DateFormat = "dd-mm-yyyy"
)

// DateFormats lists the selectable formats in display order.
var DateFormats = []DateFormat{DateFormatLong, DateFormatSlash, DateFormatDash}

// UnitOptions is the fixed list of co-curricular units a report can belong to.
var UnitOptions = []string{
	"Persatuan Agama Islam",
	"Kelab Doktor Muda",
	"Kelab Pencegahan Jenayah",
	"Kelab Robotik",
	"Kelab Kebudayaan",
	"Unit Beruniform PPIM",
	"Unit Beruniform TKRS",
	"Unit Beruniform TUSPA",
	"Unit Beruniform PENGAKAP",
	"Bola Sepak",
	"Bola Jaring",
	"Bola Tampar",
	"Sofbol",
}

// DefaultAdvisorNote is the fallback sentence shown in the document when the
// advisor left the note empty. It is the only field with a non-"-" fallback.
const DefaultAdvisorNote = "Aktiviti dijalankan dengan lancar."

// ReportData is one weekly activity report. It is a flat value type: edits
// replace the whole struct with a copy carrying the changed field, so there
// is never shared mutable state between the editor and its consumers.
type ReportData struct {
	UnitName      string     `json:"unitName"`
	Date          string     `json:"date"` // YYYY-MM-DD
	DateFormat    DateFormat `json:"dateFormat"`
	StartTime     string     `json:"startTime"`
	EndTime       string     `json:"endTime"`
	MeetingNumber string     `json:"meetingNumber"`
	Venue         string     `json:"venue"`

	StudentsPresent int    `json:"studentsPresent"`
	StudentsTotal   int    `json:"studentsTotal"`
	TeachersPresent string `json:"teachersPresent"`

	ActivityTopic string   `json:"activityTopic"`
	Activities    []string `json:"activities"`
	Values        []string `json:"values"`
	PikebmTitle   string   `json:"pikebmTitle"`
	PikebmSummary string   `json:"pikebmSummary"`
	Kbat          string   `json:"kbat"`
	AdvisorNote   string   `json:"advisorNote"`
}

// NewReportData returns the fixed initial report: today's date, a 2pm-4pm
// slot at the school hall, everything else empty. Reset restores exactly
// this value.
func NewReportData() ReportData {
	return ReportData{
		Date:          time.Now().Format("2006-01-02"),
		DateFormat:    DateFormatLong,
		StartTime:     "14:00",
		EndTime:       "16:00",
		MeetingNumber: "1",
		Venue:         "Dewan Sekolah",
		Activities:    []string{},
		Values:        []string{},
	}
}

// Clone returns a deep copy. The slice fields are copied so a snapshot never
// aliases the slices of a later edit.
func (r ReportData) Clone() ReportData {
	c := r
	c.Activities = append([]string(nil), r.Activities...)
	c.Values = append([]string(nil), r.Values...)
	return c
}

// GeneratedContent holds the five AI-fillable narrative fields. Merging it
// into a report touches exactly these fields and nothing else.
type GeneratedContent struct {
	Activities    []string `json:"activities"`
	Values        []string `json:"values"`
	PikebmTitle   string   `json:"pikebmTitle"`
	PikebmSummary string   `json:"pikebmSummary"`
	Kbat          string   `json:"kbat"`
}

// ApplyGenerated returns a copy of the report with the five AI-owned fields
// replaced by the generated content. The topic itself and the advisor note
// are never overwritten.
func (r ReportData) ApplyGenerated(gen GeneratedContent) ReportData {
	c := r.Clone()
	c.Activities = append([]string(nil), gen.Activities...)
	c.Values = append([]string(nil), gen.Values...)
	c.PikebmTitle = gen.PikebmTitle
	c.PikebmSummary = gen.PikebmSummary
	c.Kbat = gen.Kbat
	return c
}

// SplitActivities parses the newline-delimited activities editor text.
// An entirely empty input is an empty sequence, not []string{""}; interior
// and trailing blank lines are preserved because the preview distinguishes
// "no activities" by sequence length.
func SplitActivities(text string) []string {
	if text == "" {
		return []string{}
	}
	return strings.Split(text, "\n")
}

// JoinActivities is the inverse of SplitActivities.
func JoinActivities(activities []string) string {
	return strings.Join(activities, "\n")
}

// SplitValues parses the comma-delimited values editor text, trimming the
// whitespace the comma-space join introduces.
func SplitValues(text string) []string {
	if text == "" {
		return []string{}
	}
	parts := strings.Split(text, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// JoinValues renders a values sequence for editing and for the sheet payload.
func JoinValues(values []string) string {
	return strings.Join(values, ", ")
}
