package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mushna03-prog/e-Laporan-Kokurikulum/internal/domain"
)

func TestMessageText(t *testing.T) {
	r := filledReport()
	text := MessageText(r)

	wants := []string{
		"*LAPORAN AKTIVITI KOKURIKULUM*",
		"*Tarikh:* 2023-10-24",
		"*Masa:* 14:00 - 16:00",
		"*Unit:* Kelab Robotik",
		"Murid: 18/24 (75%)",
		"Guru: Cikgu Aminah",
		"1. Taklimat diberikan.",
		"2. Litar dibina.",
		"*Nilai:* Kerjasama, Teliti",
		"*KBAT:* Menganalisis litar",
		"_Dijana oleh e-Laporan Kokurikulum_",
	}
	for _, want := range wants {
		if !strings.Contains(text, want) {
			t.Errorf("message missing %q", want)
		}
	}
}

func TestMessageText_EmptyFieldsShowDash(t *testing.T) {
	text := MessageText(domain.NewReportData())

	for _, want := range []string{"Guru: -", "*AKTIVITI:*\n-", "*Nilai:* -", "*KBAT:* -", "(0%)"} {
		if !strings.Contains(text, want) {
			t.Errorf("message missing %q", want)
		}
	}
}

func TestMessageText_PercentageMatchesCalculator(t *testing.T) {
	r := filledReport()
	r.StudentsPresent = 5
	text := MessageText(r)

	want := fmt.Sprintf("(%d%%)", domain.AttendancePercentage(5, 24))
	if !strings.Contains(text, want) {
		t.Errorf("message should contain %q", want)
	}
}
