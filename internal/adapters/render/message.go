package render

import (
	"fmt"
	"strings"

	"github.com/mushna03-prog/e-Laporan-Kokurikulum/internal/domain"
)

// MessageText builds the WhatsApp-ready plain-text summary of a report. It is
// independent of the Document layout but uses the same percentage calculator,
// so the number can never diverge from the preview.
func MessageText(report domain.ReportData) string {
	percentage := domain.AttendancePercentage(report.StudentsPresent, report.StudentsTotal)

	var activities []string
	for i, act := range report.Activities {
		activities = append(activities, fmt.Sprintf("%d. %s", i+1, act))
	}
	activitiesList := strings.Join(activities, "\n")
	if activitiesList == "" {
		activitiesList = "-"
	}

	valuesList := domain.JoinValues(report.Values)
	if valuesList == "" {
		valuesList = "-"
	}

	teachers := report.TeachersPresent
	if teachers == "" {
		teachers = "-"
	}

	kbat := report.Kbat
	if kbat == "" {
		kbat = "-"
	}

	return fmt.Sprintf(`*LAPORAN AKTIVITI KOKURIKULUM* 📝

📅 *Tarikh:* %s
⏰ *Masa:* %s - %s
📍 *Tempat:* %s
👤 *Unit:* %s

*KEHADIRAN:*
👥 Murid: %d/%d (%d%%)
👨‍🏫 Guru: %s

*AKTIVITI:*
%s

✨ *Nilai:* %s
🧠 *KBAT:* %s

_Dijana oleh e-Laporan Kokurikulum_`,
		report.Date,
		report.StartTime, report.EndTime,
		report.Venue,
		report.UnitName,
		report.StudentsPresent, report.StudentsTotal, percentage,
		teachers,
		activitiesList,
		valuesList,
		kbat,
	)
}
