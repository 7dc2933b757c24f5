package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"petnet_server/apierr"
	"petnet_server/middleware"
	"petnet_server/services"
)

// ReportController handles moderation reports.
type ReportController struct {
	ReportService *services.ReportService
}

// NewReportController creates a new instance of ReportController
func NewReportController(reportService *services.ReportService) *ReportController {
	return &ReportController{ReportService: reportService}
}

type createReportRequest struct {
	ReportedItemID   string `json:"reportedItemId"`
	ReportedItemType string `json:"reportedItemType"`
	Reason           string `json:"reason"`
	Description      string `json:"description"`
}

type resolveReportRequest struct {
	Status string `json:"status"`
	Action string `json:"action"`
}

// CreateReport files a report by the caller against any item.
func (c *ReportController) CreateReport(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())

	var req createReportRequest
	if err := decodeJSON(r, &req); err != nil {
		apierr.Write(w, err)
		return
	}

	report, err := c.ReportService.Create(r.Context(), identity.UserID, req.ReportedItemID, req.ReportedItemType, req.Reason, req.Description)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"report": report})
}

// ListReports returns all reports, newest first. Admin only.
func (c *ReportController) ListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := c.ReportService.List(r.Context())
	if err != nil {
		apierr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"reports": reports})
}

// ResolveReport transitions a report to a terminal status. Admin only.
func (c *ReportController) ResolveReport(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	reportID := mux.Vars(r)["reportId"]

	var req resolveReportRequest
	if err := decodeJSON(r, &req); err != nil {
		apierr.Write(w, err)
		return
	}

	report, err := c.ReportService.Resolve(r.Context(), identity.UserID, reportID, req.Status, req.Action)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"report": report})
}
