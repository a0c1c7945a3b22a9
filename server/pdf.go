package server

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/umputun/studentscope/pkg/domain"
)

// pdf palette, close to the web UI colors
var (
	pdfAccent  = [3]int{79, 70, 229}  // indigo, title and recommendations
	pdfHeading = [3]int{31, 41, 55}   // dark gray, section headings
	pdfBody    = [3]int{55, 65, 81}   // body text
	pdfGood    = [3]int{5, 150, 105}  // green, strengths
	pdfWarn    = [3]int{217, 119, 6}  // amber, growth areas
	pdfMuted   = [3]int{156, 163, 175}
)

// renderReportPDF writes the report card as a PDF document
func renderReportPDF(w io.Writer, card *domain.ReportCard) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(18, 18, 18)
	doc.AddPage()

	pdfTitle(doc, "Student Report Card")

	pdfSection(doc, "Student Profile", pdfHeading)
	if p := card.StudentProfile; p != nil {
		pdfField(doc, "Name", p.Name)
		pdfField(doc, "Age", p.Age)
		pdfField(doc, "Education Level", p.EducationLevel)
		pdfField(doc, "Institution", p.Institution)
		pdfList(doc, "Favorite Subjects", p.FavoriteSubjects, ", ")
		pdfList(doc, "Challenging Subjects", p.ChallengingSubjects, ", ")
	} else {
		pdfText(doc, "Profile information not available")
	}
	doc.Ln(4)

	if card.OverallSummary != "" {
		pdfSection(doc, "Overall Summary", pdfHeading)
		pdfText(doc, card.OverallSummary)
		doc.Ln(4)
	}

	pdfBullets(doc, "Personality Insights", card.PersonalityInsights, "-", pdfHeading)

	if lp := card.LearningProfile; lp != nil {
		pdfSection(doc, "Learning Profile", pdfHeading)
		pdfField(doc, "Preferred Style", lp.PreferredStyle)
		pdfField(doc, "Study Preferences", lp.StudyPreferences)
		pdfField(doc, "Ideal Environment", lp.IdealEnvironment)
		pdfField(doc, "Time Management", lp.TimeManagement)
		doc.Ln(4)
	}

	pdfBullets(doc, "Strengths", card.Strengths, "+", pdfGood)
	pdfBullets(doc, "Growth Areas", card.GrowthAreas, "o", pdfWarn)
	pdfBullets(doc, "Interests", card.Interests, "-", pdfHeading)

	if g := card.Goals; g != nil {
		pdfSection(doc, "Goals & Aspirations", pdfHeading)
		pdfField(doc, "Short Term", g.ShortTerm)
		pdfField(doc, "Long Term", g.LongTerm)
		pdfField(doc, "Career Aspiration", g.CareerAspiration)
		doc.Ln(4)
	}

	if len(card.Recommendations) > 0 {
		pdfSection(doc, "Recommendations", pdfAccent)
		doc.SetFont("Helvetica", "", 11)
		doc.SetTextColor(pdfBody[0], pdfBody[1], pdfBody[2])
		for i, rec := range card.Recommendations {
			doc.MultiCell(0, 6, fmt.Sprintf("%d. %s", i+1, rec), "", "L", false)
		}
		doc.Ln(4)
	}

	doc.Ln(8)
	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(pdfMuted[0], pdfMuted[1], pdfMuted[2])
	doc.CellFormat(0, 5, "Generated on "+time.Now().Format("January 2, 2006"), "", 1, "C", false, 0, "")
	doc.CellFormat(0, 5, "Student Profile Assistant", "", 1, "C", false, 0, "")

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func pdfTitle(doc *fpdf.Fpdf, title string) {
	doc.SetFont("Helvetica", "B", 24)
	doc.SetTextColor(pdfAccent[0], pdfAccent[1], pdfAccent[2])
	doc.CellFormat(0, 12, title, "", 1, "C", false, 0, "")
	doc.Ln(4)
}

func pdfSection(doc *fpdf.Fpdf, title string, color [3]int) {
	doc.SetFont("Helvetica", "B", 16)
	doc.SetTextColor(color[0], color[1], color[2])
	doc.CellFormat(0, 9, title, "", 1, "L", false, 0, "")
	doc.Ln(1)
}

func pdfText(doc *fpdf.Fpdf, text string) {
	doc.SetFont("Helvetica", "", 11)
	doc.SetTextColor(pdfBody[0], pdfBody[1], pdfBody[2])
	doc.MultiCell(0, 6, text, "", "L", false)
}

// pdfField prints "Label: value", skipping empty values
func pdfField(doc *fpdf.Fpdf, label, value string) {
	if value == "" {
		return
	}
	pdfText(doc, label+": "+value)
}

// pdfList prints a labeled joined list, skipping empty lists
func pdfList(doc *fpdf.Fpdf, label string, items []string, sep string) {
	if len(items) == 0 {
		return
	}
	pdfText(doc, label+": "+strings.Join(items, sep))
}

// pdfBullets prints a section with one bullet per item, skipping empty
// sections entirely
func pdfBullets(doc *fpdf.Fpdf, title string, items []string, bullet string, color [3]int) {
	if len(items) == 0 {
		return
	}
	pdfSection(doc, title, color)
	doc.SetFont("Helvetica", "", 11)
	doc.SetTextColor(pdfBody[0], pdfBody[1], pdfBody[2])
	for _, item := range items {
		doc.MultiCell(0, 6, bullet+" "+item, "", "L", false)
	}
	doc.Ln(4)
}
