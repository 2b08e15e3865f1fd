package ports

import "startupsim/models"

// ReportExporter serializes a report into a downloadable document
type ReportExporter interface {
	Export(report *models.Report) ([]byte, error)
}

// SummaryRenderer renders a report summary for display
type SummaryRenderer interface {
	Render(report *models.Report) []byte
}
