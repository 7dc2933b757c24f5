package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petnet_server/apierr"
	"petnet_server/kv"
	"petnet_server/models"
)

func TestReportLifecycle(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	svc := &ReportService{Store: store}

	report, err := svc.Create(ctx, "u1", "post:1-a", "post", "spam", "bad content")
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusPending, report.Status)
	assert.Empty(t, report.ReviewedBy)
	assert.Empty(t, report.ReviewedAt)

	resolved, err := svc.Resolve(ctx, "admin", report.ID, models.ReportStatusResolved, "content_removed")
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusResolved, resolved.Status)
	assert.Equal(t, "content_removed", resolved.Action)
	assert.Equal(t, "admin", resolved.ReviewedBy)
	assert.NotEmpty(t, resolved.ReviewedAt)
}

func TestResolveOverwritesPriorReview(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	svc := &ReportService{Store: store}

	report, err := svc.Create(ctx, "u1", "post:1-a", "post", "spam", "")
	require.NoError(t, err)

	_, err = svc.Resolve(ctx, "admin1", report.ID, models.ReportStatusResolved, "content_removed")
	require.NoError(t, err)

	// A second review is allowed and replaces the first
	again, err := svc.Resolve(ctx, "admin2", report.ID, models.ReportStatusDismissed, "none")
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusDismissed, again.Status)
	assert.Equal(t, "admin2", again.ReviewedBy)
	assert.Equal(t, "none", again.Action)
}

func TestResolveValidatesStatus(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	svc := &ReportService{Store: store}

	report, err := svc.Create(ctx, "u1", "post:1-a", "post", "spam", "")
	require.NoError(t, err)

	_, err = svc.Resolve(ctx, "admin", report.ID, "pending", "")
	require.Error(t, err)
	assert.Equal(t, apierr.CodeValidation, apierr.From(err).Code)
}

func TestResolveNotFound(t *testing.T) {
	svc := &ReportService{Store: kv.NewMemoryStore()}

	_, err := svc.Resolve(context.Background(), "admin", "report:missing", models.ReportStatusResolved, "")
	require.Error(t, err)
	assert.Equal(t, apierr.CodeNotFound, apierr.From(err).Code)
}

func TestCreateReportValidation(t *testing.T) {
	svc := &ReportService{Store: kv.NewMemoryStore()}

	_, err := svc.Create(context.Background(), "u1", "", "post", "spam", "")
	require.Error(t, err)
	assert.Equal(t, apierr.CodeValidation, apierr.From(err).Code)

	_, err = svc.Create(context.Background(), "u1", "post:1-a", "post", "", "")
	require.Error(t, err)
	assert.Equal(t, apierr.CodeValidation, apierr.From(err).Code)
}

func TestListReportsNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	svc := &ReportService{Store: store}

	older := models.Report{ID: "report:1-a", ReporterID: "u1", ReportedItemID: "post:1", Reason: "spam", Status: models.ReportStatusPending, CreatedAt: "2024-01-01T10:00:00Z"}
	newer := models.Report{ID: "report:2-b", ReporterID: "u2", ReportedItemID: "post:2", Reason: "abuse", Status: models.ReportStatusPending, CreatedAt: "2024-01-02T10:00:00Z"}
	require.NoError(t, store.Set(ctx, older.ID, older))
	require.NoError(t, store.Set(ctx, newer.ID, newer))

	reports, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "report:2-b", reports[0].ID)
	assert.Equal(t, "report:1-a", reports[1].ID)
}
