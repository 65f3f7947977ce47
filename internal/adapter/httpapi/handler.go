// Package httpapi exposes the network gateway over HTTP.
package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync/atomic"

	"golang-nmgateway/internal/pkg/logging"
	"golang-nmgateway/internal/port"
	"golang-nmgateway/internal/types"

	"github.com/sirupsen/logrus"
)

// Options names the profiles and interfaces the fixed-purpose routes operate on.
type Options struct {
	WiredProfile      string
	WirelessProfile   string
	WiredInterface    string
	WirelessInterface string
}

// Handler serves the HTTP API. It translates requests into gateway calls and
// gateway errors into status codes; it holds no network state of its own.
type Handler struct {
	gateway port.NetworkGateway
	system  port.SystemManager
	opts    Options

	powerActionInProgress atomic.Bool
}

// NewHandler creates a handler backed by gateway and system.
func NewHandler(gateway port.NetworkGateway, system port.SystemManager, opts Options) *Handler {
	return &Handler{
		gateway: gateway,
		system:  system,
		opts:    opts,
	}
}

type errorBody struct {
	Error string `json:"error"`
}

func jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.WithComponent("http").WithError(err).Warn("Failed to write response")
	}
}

func errorResponse(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, errorBody{Error: message})
}

// statusFor maps a gateway error to an HTTP status.
func statusFor(err error) int {
	switch {
	case types.IsValidation(err):
		return http.StatusBadRequest
	case types.IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	entry := logging.WithComponent("http").WithFields(logrus.Fields{
		"path":   r.URL.Path,
		"status": status,
	}).WithError(err)
	if status >= http.StatusInternalServerError {
		entry.Error("Request failed")
	} else {
		entry.Info("Request rejected")
	}
	errorResponse(w, status, err.Error())
}

// decodeJSON reads a JSON object body into v. An empty body leaves v untouched.
func decodeJSON(r *http.Request, v interface{}) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return &types.ValidationError{Field: "request body", Reason: err.Error()}
}
