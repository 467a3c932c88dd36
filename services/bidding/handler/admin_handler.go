package handler

import (
	"net/http"

	"auction-engine/services/bidding/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes operator actions that normally run on a schedule
type AdminHandler struct {
	sweeper    SweepServiceInterface
	reconciler ReconcileServiceInterface
}

func NewAdminHandler(sweeper SweepServiceInterface, reconciler ReconcileServiceInterface) *AdminHandler {
	return &AdminHandler{sweeper: sweeper, reconciler: reconciler}
}

// SweepHandler handles POST /admin/sweep
func (h *AdminHandler) SweepHandler(c *gin.Context) {
	report, err := h.sweeper.Sweep(c.Request.Context())
	if err != nil {
		helpers.RespondError(c, "SweepHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, report, "sweep completed")
	helpers.LogSuccess("SweepHandler", "sweep completed", map[string]any{
		"evaluated":    report.Evaluated,
		"transitioned": report.Transitioned,
		"failed":       report.Failed,
	})
}

// ReconcileHandler handles POST /admin/reconcile
func (h *AdminHandler) ReconcileHandler(c *gin.Context) {
	report, err := h.reconciler.Run(c.Request.Context())
	if err != nil {
		helpers.RespondError(c, "ReconcileHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, report, "reconciliation completed")
}

// HealthHandler handles GET /healthz
func (h *AdminHandler) HealthHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, gin.H{"status": "ok"}, "healthy")
}
