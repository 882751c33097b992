package app

import (
	"context"
	"fmt"
	"io"

	apperrors "focusflow/internal/errors"
	"focusflow/models"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// ExportService renders reporting data as an Excel workbook: one sheet for
// the period leaderboard, one for the caller's weekly series.
type ExportService struct {
	reports *ReportService
}

// NewExportService creates an export service
func NewExportService(reports *ReportService) *ExportService {
	return &ExportService{reports: reports}
}

// WriteWorkbook writes the .xlsx bytes for the given period and caller to w.
func (s *ExportService) WriteWorkbook(ctx context.Context, userID uuid.UUID, period models.Period, w io.Writer) error {
	leaderboard, err := s.reports.GetLeaderboard(ctx, period, MaxLeaderboardLimit)
	if err != nil {
		return apperrors.Wrap(err, "failed to load leaderboard")
	}
	weekly, err := s.reports.GetWeeklyAnalytics(ctx, userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to load weekly analytics")
	}

	f := excelize.NewFile()
	defer f.Close()

	const leaderboardSheet = "Leaderboard"
	if err := f.SetSheetName("Sheet1", leaderboardSheet); err != nil {
		return err
	}
	header := []interface{}{"Rank", "User", "Total Minutes", "Sessions"}
	if err := f.SetSheetRow(leaderboardSheet, "A1", &header); err != nil {
		return err
	}
	for i, entry := range leaderboard {
		row := []interface{}{i + 1, entry.UserName, entry.TotalTime, entry.SessionCount}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(leaderboardSheet, cell, &row); err != nil {
			return err
		}
	}

	const weeklySheet = "Weekly"
	if _, err := f.NewSheet(weeklySheet); err != nil {
		return err
	}
	weeklyHeader := []interface{}{"Date", "Total Minutes", "Sessions"}
	if err := f.SetSheetRow(weeklySheet, "A1", &weeklyHeader); err != nil {
		return err
	}
	for i, bucket := range weekly {
		row := []interface{}{bucket.Date, bucket.TotalTime, bucket.SessionCount}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(weeklySheet, cell, &row); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return apperrors.Wrap(err, "failed to write workbook")
	}
	return nil
}
