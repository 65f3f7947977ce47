package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the API router.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	SetupRoutes(r, h)
	return r
}

// SetupRoutes configures all API routes on r.
func SetupRoutes(r chi.Router, h *Handler) {
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.HealthCheck)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Ethernet
	r.Get("/ethernet_ip_and_mask", h.GetEthernetIPAndMask)
	r.Get("/ethernet_interface_ip", h.GetEthernetInterfaceIP)
	r.Post("/set_ethernet_ip_and_mask", h.SetEthernetIPAndMask)
	r.Post("/set_ethernet_dhcp", h.SetEthernetDHCP)

	// Wi-Fi
	r.Get("/wifi_ip_and_mask", h.GetWifiIPAndMask)
	r.Get("/wifi_interface_ip", h.GetWifiInterfaceIP)
	r.Get("/remembered_wifi_connections", h.GetRememberedWifiConnections)
	r.Get("/scan_wifi_networks", h.ScanWifiNetworks)
	r.Get("/active_wifi_network", h.GetActiveWifiNetwork)
	r.Post("/connect_to_new_ap", h.ConnectToNewAP)
	r.Post("/connect_to_known_wifi_connection", h.ConnectToKnownConnection)
	r.Post("/disconnect_from_wifi_connection", h.DisconnectConnection)
	r.Post("/delete_known_wifi_connection", h.DeleteConnection)
	r.Post("/set_autoconnect_on_to_wifi_connection", h.SetAutoConnectOn)
	r.Post("/set_autoconnect_off_to_wifi_connection", h.SetAutoConnectOff)

	// All profiles
	r.Get("/remembered_connections", h.GetRememberedConnections)

	// System
	r.Route("/system", func(r chi.Router) {
		r.Post("/restart_network_manager", h.RestartNetworkManager)
		r.Post("/reboot", h.Reboot)
		r.Post("/poweroff", h.PowerOff)
	})
}
