package excel

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"startupsim/internal/simulation"
	"startupsim/models"
)

func TestReportExporter_Export(t *testing.T) {
	report, err := simulation.RunFullSimulation(context.Background(), models.BusinessModel{
		Hypotheses: []string{
			"A monthly subscription price of 9,900 is acceptable",
			"Users want advanced features",
		},
	}, simulation.Options{Seed: 8})
	require.NoError(t, err)

	data, err := NewReportExporter().Export(report)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetSummary, SheetPersonas, SheetInterviews, SheetValidation, SheetFinancials}, f.GetSheetList())

	summary, err := f.GetRows(SheetSummary)
	require.NoError(t, err)
	assert.Equal(t, []string{"Simulation ID", report.SimulationID.String()}, summary[1])
	assert.Equal(t, []string{"Break-even month", "none"}, summary[10])

	personas, err := f.GetRows(SheetPersonas)
	require.NoError(t, err)
	assert.Len(t, personas, len(report.Personas)+1)
	assert.Equal(t, report.Personas[0].Name, personas[1][1])

	interviews, err := f.GetRows(SheetInterviews)
	require.NoError(t, err)
	assert.Len(t, interviews, report.Summary.TotalInterviews+1)

	validation, err := f.GetRows(SheetValidation)
	require.NoError(t, err)
	require.Len(t, validation, 3)
	assert.Equal(t, "Users want advanced features", validation[2][0])

	financials, err := f.GetRows(SheetFinancials)
	require.NoError(t, err)
	require.Len(t, financials, 13)
	assert.Equal(t, []string{"Month 1", "11", "1", "0", "1", "9900", "15011000", "-15001100", "-15001100"}, financials[1])
}
