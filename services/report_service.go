package services

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"petnet_server/apierr"
	"petnet_server/kv"
	"petnet_server/metrics"
	"petnet_server/models"
)

// ReportService manages moderation reports: any authenticated user can file
// one, admins list and resolve them.
type ReportService struct {
	Store kv.Store
}

// Create files a report against any item. Status starts pending.
func (s *ReportService) Create(ctx context.Context, reporterID, itemID, itemType, reason, description string) (*models.Report, error) {
	if itemID == "" || reason == "" {
		return nil, apierr.Validation("reportedItemId and reason are required")
	}

	report := models.Report{
		ID:               kv.NewID(models.ReportKeyPrefix),
		ReporterID:       reporterID,
		ReportedItemID:   itemID,
		ReportedItemType: itemType,
		Reason:           reason,
		Description:      description,
		Status:           models.ReportStatusPending,
		CreatedAt:        time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.Store.Set(ctx, report.ID, report); err != nil {
		return nil, apierr.Internal("Internal server error")
	}

	metrics.RecordReportFiled()
	log.Info().Str("reportId", report.ID).Str("reporterId", reporterID).Str("itemId", itemID).Msg("Report filed")
	return &report, nil
}

// List returns all reports, newest first.
func (s *ReportService) List(ctx context.Context) ([]models.Report, error) {
	raws, err := s.Store.GetByPrefix(ctx, models.ReportKeyPrefix)
	if err != nil {
		return nil, apierr.Internal("Internal server error")
	}

	reports := []models.Report{}
	for _, raw := range raws {
		var report models.Report
		if err := json.Unmarshal(raw, &report); err != nil {
			continue
		}
		reports = append(reports, report)
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].CreatedAt > reports[j].CreatedAt
	})
	return reports, nil
}

// Resolve moves a report to a terminal status and stamps the reviewer. The
// prior status is not checked: resolving an already-reviewed report
// overwrites its review metadata.
func (s *ReportService) Resolve(ctx context.Context, reviewerID, reportID, status, action string) (*models.Report, error) {
	if status != models.ReportStatusResolved && status != models.ReportStatusDismissed {
		return nil, apierr.Validation("status must be resolved or dismissed")
	}
	if !kv.HasPrefix(reportID, models.ReportKeyPrefix) {
		return nil, apierr.NotFound("Report not found")
	}

	var report models.Report
	if err := kv.GetAs(ctx, s.Store, reportID, &report); err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, apierr.NotFound("Report not found")
		}
		return nil, apierr.Internal("Internal server error")
	}

	report.Status = status
	report.Action = action
	report.ReviewedBy = reviewerID
	report.ReviewedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.Store.Set(ctx, reportID, report); err != nil {
		return nil, apierr.Internal("Internal server error")
	}

	log.Info().Str("reportId", reportID).Str("status", status).Str("reviewedBy", reviewerID).Msg("Report reviewed")
	return &report, nil
}
