package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"golang-nmgateway/internal/types"
)

type setIPRequest struct {
	IP      string      `json:"ip"`
	Mask    json.Number `json:"mask"`
	Gateway string      `json:"gateway"`
}

type newAPRequest struct {
	SSID     string `json:"ssid"`
	Password string `json:"password"`
}

type connectionRequest struct {
	ConnectionName string `json:"connection_name"`
}

func (h *Handler) writeIPConfig(w http.ResponseWriter, r *http.Request, config types.IPConfig, err error) {
	if err != nil {
		h.fail(w, r, err)
		return
	}
	jsonResponse(w, http.StatusOK, config)
}

func (h *Handler) writeResult(w http.ResponseWriter, r *http.Request, result types.OperationResult, err error) {
	if err != nil {
		h.fail(w, r, err)
		return
	}
	jsonResponse(w, http.StatusOK, result)
}

func (h *Handler) GetEthernetIPAndMask(w http.ResponseWriter, r *http.Request) {
	config, err := h.gateway.GetIPAndMask(r.Context(), h.opts.WiredProfile)
	h.writeIPConfig(w, r, config, err)
}

func (h *Handler) GetWifiIPAndMask(w http.ResponseWriter, r *http.Request) {
	config, err := h.gateway.GetIPAndMask(r.Context(), h.opts.WirelessProfile)
	h.writeIPConfig(w, r, config, err)
}

// GetEthernetInterfaceIP reads the wired interface address from the kernel rather than from NetworkManager.
func (h *Handler) GetEthernetInterfaceIP(w http.ResponseWriter, r *http.Request) {
	h.interfaceAddress(w, r, h.opts.WiredInterface, "wired")
}

func (h *Handler) GetWifiInterfaceIP(w http.ResponseWriter, r *http.Request) {
	h.interfaceAddress(w, r, h.opts.WirelessInterface, "wireless")
}

func (h *Handler) interfaceAddress(w http.ResponseWriter, r *http.Request, iface, kind string) {
	if iface == "" {
		errorResponse(w, http.StatusNotFound, kind+" interface not configured")
		return
	}
	config, err := h.gateway.GetInterfaceAddress(r.Context(), iface)
	h.writeIPConfig(w, r, config, err)
}

func (h *Handler) SetEthernetIPAndMask(w http.ResponseWriter, r *http.Request) {
	var req setIPRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	if req.IP == "" || req.Mask == "" {
		errorResponse(w, http.StatusBadRequest, "IP address and mask are required")
		return
	}
	prefix, err := strconv.Atoi(req.Mask.String())
	if err != nil {
		h.fail(w, r, &types.ValidationError{Field: "mask", Reason: "must be an integer prefix length"})
		return
	}

	config, err := h.gateway.SetStaticIP(r.Context(), h.opts.WiredProfile, types.StaticIPConfig{
		Address:      req.IP,
		PrefixLength: prefix,
		Gateway:      req.Gateway,
	})
	h.writeIPConfig(w, r, config, err)
}

func (h *Handler) SetEthernetDHCP(w http.ResponseWriter, r *http.Request) {
	result, err := h.gateway.EnableDHCP(r.Context(), h.opts.WiredProfile)
	h.writeResult(w, r, result, err)
}

func (h *Handler) GetRememberedWifiConnections(w http.ResponseWriter, r *http.Request) {
	h.listConnections(w, r, types.ProfileKindWireless)
}

// GetRememberedConnections lists saved profiles, optionally filtered with ?kind=wired|wireless.
func (h *Handler) GetRememberedConnections(w http.ResponseWriter, r *http.Request) {
	h.listConnections(w, r, types.ProfileKind(r.URL.Query().Get("kind")))
}

func (h *Handler) listConnections(w http.ResponseWriter, r *http.Request, kind types.ProfileKind) {
	connections, err := h.gateway.ListRememberedConnections(r.Context(), kind)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]interface{}{"connections": connections})
}

func (h *Handler) ScanWifiNetworks(w http.ResponseWriter, r *http.Request) {
	networks, err := h.gateway.ScanWifiNetworks(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]interface{}{"networks": networks})
}

// GetActiveWifiNetwork answers {"network": null} when nothing is active.
func (h *Handler) GetActiveWifiNetwork(w http.ResponseWriter, r *http.Request) {
	network, err := h.gateway.GetActiveWifiNetwork(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]interface{}{"network": network})
}

func (h *Handler) ConnectToNewAP(w http.ResponseWriter, r *http.Request) {
	var req newAPRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	if req.SSID == "" || req.Password == "" {
		errorResponse(w, http.StatusBadRequest, "SSID and password are required")
		return
	}
	result, err := h.gateway.ConnectToNewAccessPoint(r.Context(), req.SSID, req.Password)
	h.writeResult(w, r, result, err)
}

// connectionName decodes {"connection_name": ...} and writes the 400 response itself when it is missing.
func (h *Handler) connectionName(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req connectionRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, r, err)
		return "", false
	}
	if req.ConnectionName == "" {
		errorResponse(w, http.StatusBadRequest, "Connection name is required")
		return "", false
	}
	return req.ConnectionName, true
}

func (h *Handler) ConnectToKnownConnection(w http.ResponseWriter, r *http.Request) {
	name, ok := h.connectionName(w, r)
	if !ok {
		return
	}
	result, err := h.gateway.ConnectToKnownConnection(r.Context(), name)
	h.writeResult(w, r, result, err)
}

func (h *Handler) DisconnectConnection(w http.ResponseWriter, r *http.Request) {
	name, ok := h.connectionName(w, r)
	if !ok {
		return
	}
	result, err := h.gateway.DisconnectConnection(r.Context(), name)
	h.writeResult(w, r, result, err)
}

func (h *Handler) DeleteConnection(w http.ResponseWriter, r *http.Request) {
	name, ok := h.connectionName(w, r)
	if !ok {
		return
	}
	result, err := h.gateway.DeleteConnection(r.Context(), name)
	h.writeResult(w, r, result, err)
}

func (h *Handler) SetAutoConnectOn(w http.ResponseWriter, r *http.Request) {
	h.setAutoConnect(w, r, true)
}

func (h *Handler) SetAutoConnectOff(w http.ResponseWriter, r *http.Request) {
	h.setAutoConnect(w, r, false)
}

func (h *Handler) setAutoConnect(w http.ResponseWriter, r *http.Request, enabled bool) {
	name, ok := h.connectionName(w, r)
	if !ok {
		return
	}
	result, err := h.gateway.SetAutoConnect(r.Context(), name, enabled)
	h.writeResult(w, r, result, err)
}
