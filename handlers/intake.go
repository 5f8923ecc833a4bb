// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/lookout/middleware"
	"github.com/danielhkuo/lookout/models"
	"github.com/danielhkuo/lookout/reconcile"
)

type IntakeHandler struct {
	rec *reconcile.Reconciler
}

func NewIntakeHandler(rec *reconcile.Reconciler) *IntakeHandler {
	return &IntakeHandler{rec: rec}
}

// Report handles POST /intake
// Accepts a launcher device/location report and posts its card.
func (h *IntakeHandler) Report(w http.ResponseWriter, r *http.Request) {
	var req models.IntakeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	ref, err := h.rec.RecordIntake(r.Context(), req)
	if errors.Is(err, reconcile.ErrValidation) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		slog.Error("intake failed", "error", err, "device_id", req.DeviceID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record intake")
		return
	}

	slog.Info("intake recorded",
		"device_user", req.DeviceUser,
		"device_id", req.DeviceID,
		"card_ref", ref,
		"client_ip", middleware.GetClientIP(r),
	)

	middleware.JSONResponse(w, http.StatusOK, models.IntakeResponse{OK: true})
}
