package controllers

import (
	"net/http"

	"petnet_server/apierr"
	"petnet_server/services"
)

// ContestController handles contest listing and admin creation.
type ContestController struct {
	ContestService *services.ContestService
}

// NewContestController creates a new instance of ContestController
func NewContestController(contestService *services.ContestService) *ContestController {
	return &ContestController{ContestService: contestService}
}

type createContestRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Category    string `json:"category"`
}

// ListContests returns all contests. Public.
func (c *ContestController) ListContests(w http.ResponseWriter, r *http.Request) {
	contests, err := c.ContestService.List(r.Context())
	if err != nil {
		apierr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"contests": contests})
}

// CreateContest persists a new contest. Admin only.
func (c *ContestController) CreateContest(w http.ResponseWriter, r *http.Request) {
	var req createContestRequest
	if err := decodeJSON(r, &req); err != nil {
		apierr.Write(w, err)
		return
	}

	contest, err := c.ContestService.Create(r.Context(), req.Title, req.Description, req.StartDate, req.EndDate, req.Category)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"contest": contest})
}
