package httpapi

import (
	"context"
	"net/http"

	"golang-nmgateway/internal/pkg/version"
)

// NetworkManagerUnit is the systemd unit restarted by /system/restart_network_manager.
const NetworkManagerUnit = "NetworkManager.service"

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"version": version.GetGitInfo(),
	})
}

func (h *Handler) RestartNetworkManager(w http.ResponseWriter, r *http.Request) {
	if err := h.system.RestartUnit(r.Context(), NetworkManagerUnit); err != nil {
		h.fail(w, r, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "NetworkManager restarted successfully."})
}

func (h *Handler) Reboot(w http.ResponseWriter, r *http.Request) {
	h.powerAction(w, r, h.system.Reboot, "System reboot queued.")
}

func (h *Handler) PowerOff(w http.ResponseWriter, r *http.Request) {
	h.powerAction(w, r, h.system.PowerOff, "System power off queued.")
}

// powerAction allows one reboot or power off at a time. A failed request can be retried.
func (h *Handler) powerAction(w http.ResponseWriter, r *http.Request, action func(context.Context) error, message string) {
	if !h.powerActionInProgress.CompareAndSwap(false, true) {
		errorResponse(w, http.StatusConflict, "power action already in progress")
		return
	}
	if err := action(r.Context()); err != nil {
		h.powerActionInProgress.Store(false)
		h.fail(w, r, err)
		return
	}
	jsonResponse(w, http.StatusAccepted, map[string]string{"message": message})
}
