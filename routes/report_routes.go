package routes

import (
	"github.com/gorilla/mux"

	"petnet_server/auth"
	"petnet_server/controllers"
	"petnet_server/middleware"
	"petnet_server/services"
)

// RegisterReportRoutes sets up moderation routes: any authenticated user can
// file a report, only admins list and resolve them.
func RegisterReportRoutes(r *mux.Router, provider auth.Provider, admins middleware.AdminChecker, reportService *services.ReportService) {
	controller := controllers.NewReportController(reportService)

	r.HandleFunc("/reports", middleware.RequireAuth(provider, controller.CreateReport)).Methods("POST")
	r.HandleFunc("/reports", middleware.RequireAdmin(provider, admins, controller.ListReports)).Methods("GET")
	r.HandleFunc("/reports/{reportId}", middleware.RequireAdmin(provider, admins, controller.ResolveReport)).Methods("PUT")
}
