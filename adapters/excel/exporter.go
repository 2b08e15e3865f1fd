// Package excel exports simulation reports as xlsx workbooks.
package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"startupsim/internal/errors"
	"startupsim/models"
)

// Sheet names of an exported workbook
const (
	SheetSummary    = "Summary"
	SheetPersonas   = "Personas"
	SheetInterviews = "Interviews"
	SheetValidation = "Validation"
	SheetFinancials = "Financials"
)

// ReportExporter renders reports into workbooks
type ReportExporter struct{}

// NewReportExporter creates a report exporter
func NewReportExporter() *ReportExporter {
	return &ReportExporter{}
}

// Export writes the report into a new workbook and returns its bytes
func (e *ReportExporter) Export(report *models.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, exportErr(err)
	}
	for _, name := range []string{SheetPersonas, SheetInterviews, SheetValidation, SheetFinancials} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, exportErr(err)
		}
	}

	writers := []func(*excelize.File, *models.Report) error{
		writeSummary,
		writePersonas,
		writeInterviews,
		writeValidation,
		writeFinancials,
	}
	for _, write := range writers {
		if err := write(f, report); err != nil {
			return nil, exportErr(err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, exportErr(err)
	}
	return buf.Bytes(), nil
}

func exportErr(err error) error {
	return errors.WithCode(errors.CodeExportFailed, errors.Wrap(err, "failed to build report workbook"))
}

// writeRows writes rows starting at A1 of sheet
func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("sheet %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func writeSummary(f *excelize.File, r *models.Report) error {
	breakEven := "none"
	if r.Summary.BreakEvenMonth != nil {
		breakEven = fmt.Sprintf("Month %d", *r.Summary.BreakEvenMonth)
	}
	return writeRows(f, SheetSummary, [][]interface{}{
		{"Field", "Value"},
		{"Simulation ID", r.SimulationID.String()},
		{"Run ID", r.RunID.String()},
		{"Timestamp", r.Timestamp.String()},
		{"Seed", r.Seed},
		{"Total personas", r.Summary.TotalPersonas},
		{"Total interviews", r.Summary.TotalInterviews},
		{"Validated hypotheses", r.Summary.ValidatedHypotheses},
		{"Invalidated hypotheses", r.Summary.InvalidatedHypotheses},
		{"Partial hypotheses", r.Summary.PartialHypotheses},
		{"Break-even month", breakEven},
		{"Projected ROI (%)", r.Summary.ProjectedROI},
	})
}

func writePersonas(f *excelize.File, r *models.Report) error {
	rows := [][]interface{}{{
		"ID", "Name", "Age", "Gender", "Occupation", "Income", "Segment",
		"Tech savviness", "Price sensitivity", "Brand loyalty", "Social influence",
		"Pain points", "Needs",
	}}
	for _, p := range r.Personas {
		rows = append(rows, []interface{}{
			p.ID.String(), p.Name, p.Age, p.Gender.String(), p.Occupation, p.IncomeRange, p.Segment.String(),
			p.TechSavviness, p.PriceSensitivity, p.BrandLoyalty, p.SocialInfluence,
			strings.Join(p.PainPoints, "; "), strings.Join(p.Needs, "; "),
		})
	}
	return writeRows(f, SheetPersonas, rows)
}

func writeInterviews(f *excelize.File, r *models.Report) error {
	rows := [][]interface{}{{"Persona", "Question", "Answer", "Sentiment", "Confidence", "Keywords"}}
	for _, p := range r.Personas {
		for _, resp := range r.InterviewResults[p.ID] {
			rows = append(rows, []interface{}{
				p.ID.String(), resp.Question, resp.Answer, resp.Sentiment.String(), resp.Confidence,
				strings.Join(resp.Keywords, ", "),
			})
		}
	}
	return writeRows(f, SheetInterviews, rows)
}

func writeValidation(f *excelize.File, r *models.Report) error {
	rows := [][]interface{}{{"Hypothesis", "Status", "Confidence", "Relevant responses", "Supporting", "Contrary", "Recommendations", "Pivots"}}
	for _, v := range r.ValidationResults {
		rows = append(rows, []interface{}{
			v.Hypothesis, v.ValidationStatus.String(), v.ConfidenceScore, v.RelevantResponses,
			len(v.SupportingEvidence), len(v.ContraryEvidence),
			strings.Join(v.Recommendations, "\n"), strings.Join(v.PivotSuggestions, "\n"),
		})
	}
	return writeRows(f, SheetValidation, rows)
}

func writeFinancials(f *excelize.File, r *models.Report) error {
	rows := [][]interface{}{{"Month", "Users", "New users", "Churned users", "Paying users", "Revenue", "Costs", "Profit", "Cumulative profit"}}
	for _, m := range r.FinancialProjection.Months {
		rows = append(rows, []interface{}{
			m.Month, m.Users, m.NewUsers, m.ChurnedUsers, m.PayingUsers, m.Revenue, m.Costs, m.Profit, m.CumulativeProfit,
		})
	}
	return writeRows(f, SheetFinancials, rows)
}
