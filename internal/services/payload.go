package services

import (
	"time"

	"github.com/mushna03-prog/e-Laporan-Kokurikulum/internal/domain"
)

// BuildPayload flattens a report into the sheet row shape: list fields become
// delimited strings for clean cells, and the computed attendance percentage
// and submission timestamp are added. The submitter port carries the result
// as an opaque map; the transport adapter never inspects it.
func BuildPayload(report domain.ReportData, now time.Time) map[string]any {
	return map[string]any{
		"unitName":             report.UnitName,
		"date":                 report.Date,
		"dateFormat":           string(report.DateFormat),
		"startTime":            report.StartTime,
		"endTime":              report.EndTime,
		"meetingNumber":        report.MeetingNumber,
		"venue":                report.Venue,
		"studentsPresent":      report.StudentsPresent,
		"studentsTotal":        report.StudentsTotal,
		"teachersPresent":      report.TeachersPresent,
		"activityTopic":        report.ActivityTopic,
		"activities":           domain.JoinActivities(report.Activities),
		"values":               domain.JoinValues(report.Values),
		"pikebmTitle":          report.PikebmTitle,
		"pikebmSummary":        report.PikebmSummary,
		"kbat":                 report.Kbat,
		"advisorNote":          report.AdvisorNote,
		"attendancePercentage": domain.AttendancePercentage(report.StudentsPresent, report.StudentsTotal),
		"submittedAt":          domain.FormatTimestamp(now),
	}
}
