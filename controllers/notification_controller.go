package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"petnet_server/apierr"
	"petnet_server/middleware"
	"petnet_server/services"
)

// NotificationController handles polled notifications.
type NotificationController struct {
	NotificationService *services.NotificationService
}

// NewNotificationController creates a new instance of NotificationController
func NewNotificationController(notificationService *services.NotificationService) *NotificationController {
	return &NotificationController{NotificationService: notificationService}
}

// ListNotifications returns the caller's notifications, newest first.
func (c *NotificationController) ListNotifications(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())

	notifications, err := c.NotificationService.List(r.Context(), identity.UserID)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"notifications": notifications})
}

// MarkNotificationRead flips the read flag on one of the caller's
// notifications.
func (c *NotificationController) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	notificationID := mux.Vars(r)["notificationId"]

	notification, err := c.NotificationService.MarkRead(r.Context(), identity.UserID, notificationID)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"notification": notification})
}
