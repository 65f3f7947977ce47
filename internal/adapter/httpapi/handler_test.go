//go:build unit

package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang-nmgateway/internal/mock"
	"golang-nmgateway/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testOptions = Options{
	WiredProfile:    "ETH",
	WirelessProfile: "WIFI",
	WiredInterface:  "eth0",
}

func newTestRouter(t *testing.T) (http.Handler, *mock.MockNetworkGateway, *mock.MockSystemManager) {
	ctrl := gomock.NewController(t)
	gateway := mock.NewMockNetworkGateway(ctrl)
	system := mock.NewMockSystemManager(ctrl)
	return NewRouter(NewHandler(gateway, system, testOptions)), gateway, system
}

func do(t *testing.T, router http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(&types.ValidationError{}))
	assert.Equal(t, http.StatusNotFound, statusFor(&types.NotFoundError{}))
	assert.Equal(t, http.StatusInternalServerError, statusFor(&types.ExecutionError{}))
	assert.Equal(t, http.StatusInternalServerError, statusFor(&types.TimeoutError{}))
	assert.Equal(t, http.StatusInternalServerError, statusFor(&types.ParseError{}))
}

func TestIPRoutes(t *testing.T) {
	router, gateway, _ := newTestRouter(t)

	t.Run("EthernetIPAndMask", func(t *testing.T) {
		gateway.EXPECT().GetIPAndMask(gomock.Any(), "ETH").Return(types.IPConfig{Address: "192.168.1.10", PrefixLength: 24}, nil)

		rec, body := do(t, router, http.MethodGet, "/ethernet_ip_and_mask", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "192.168.1.10", body["ip"])
		assert.Equal(t, float64(24), body["mask"])
	})

	t.Run("WifiNoAddress", func(t *testing.T) {
		gateway.EXPECT().GetIPAndMask(gomock.Any(), "WIFI").Return(types.IPConfig{}, &types.NotFoundError{Resource: "IPv4 address for profile 'WIFI'"})

		rec, body := do(t, router, http.MethodGet, "/wifi_ip_and_mask", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "IPv4 address for profile 'WIFI' not found", body["error"])
	})

	t.Run("ExecutionFailure", func(t *testing.T) {
		gateway.EXPECT().GetIPAndMask(gomock.Any(), "ETH").
			Return(types.IPConfig{}, &types.ExecutionError{Command: "nmcli", ExitCode: 10, Stderr: "profile not found"})

		rec, body := do(t, router, http.MethodGet, "/ethernet_ip_and_mask", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, body["error"], "profile not found")
	})

	t.Run("InterfaceIP", func(t *testing.T) {
		gateway.EXPECT().GetInterfaceAddress(gomock.Any(), "eth0").Return(types.IPConfig{Address: "10.0.0.2", PrefixLength: 8}, nil)

		rec, body := do(t, router, http.MethodGet, "/ethernet_interface_ip", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "10.0.0.2", body["ip"])
	})

	t.Run("WirelessInterfaceNotConfigured", func(t *testing.T) {
		rec, body := do(t, router, http.MethodGet, "/wifi_interface_ip", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "wireless interface not configured", body["error"])
	})
}

func TestSetEthernetIPAndMask(t *testing.T) {
	router, gateway, _ := newTestRouter(t)

	t.Run("NumericMask", func(t *testing.T) {
		gateway.EXPECT().SetStaticIP(gomock.Any(), "ETH", types.StaticIPConfig{Address: "192.168.1.50", PrefixLength: 24}).
			Return(types.IPConfig{Address: "192.168.1.50", PrefixLength: 24}, nil)

		rec, body := do(t, router, http.MethodPost, "/set_ethernet_ip_and_mask", `{"ip":"192.168.1.50","mask":24}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "192.168.1.50", body["ip"])
		assert.Equal(t, float64(24), body["mask"])
	})

	t.Run("StringMaskAndGateway", func(t *testing.T) {
		gateway.EXPECT().SetStaticIP(gomock.Any(), "ETH", types.StaticIPConfig{Address: "10.0.0.2", PrefixLength: 8, Gateway: "10.0.0.1"}).
			Return(types.IPConfig{Address: "10.0.0.2", PrefixLength: 8}, nil)

		rec, _ := do(t, router, http.MethodPost, "/set_ethernet_ip_and_mask", `{"ip":"10.0.0.2","mask":"8","gateway":"10.0.0.1"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("MissingFields", func(t *testing.T) {
		for _, payload := range []string{`{"ip":"10.0.0.2"}`, `{"mask":24}`, ``} {
			rec, body := do(t, router, http.MethodPost, "/set_ethernet_ip_and_mask", payload)
			assert.Equal(t, http.StatusBadRequest, rec.Code, payload)
			assert.Equal(t, "IP address and mask are required", body["error"])
		}
	})

	t.Run("NonIntegerMask", func(t *testing.T) {
		rec, _ := do(t, router, http.MethodPost, "/set_ethernet_ip_and_mask", `{"ip":"10.0.0.2","mask":24.5}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		rec, _ := do(t, router, http.MethodPost, "/set_ethernet_ip_and_mask", `{"ip":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("ValidationFromGateway", func(t *testing.T) {
		gateway.EXPECT().SetStaticIP(gomock.Any(), "ETH", gomock.Any()).
			Return(types.IPConfig{}, &types.ValidationError{Field: "prefix length", Reason: "must be between 0 and 32"})

		rec, _ := do(t, router, http.MethodPost, "/set_ethernet_ip_and_mask", `{"ip":"10.0.0.2","mask":40}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSetEthernetDHCP(t *testing.T) {
	router, gateway, _ := newTestRouter(t)
	gateway.EXPECT().EnableDHCP(gomock.Any(), "ETH").Return(types.OperationResult{Succeeded: true, Message: "ok"}, nil)

	rec, body := do(t, router, http.MethodPost, "/set_ethernet_dhcp", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["succeeded"])
}

func TestWifiRoutes(t *testing.T) {
	router, gateway, _ := newTestRouter(t)

	t.Run("RememberedWifiConnections", func(t *testing.T) {
		gateway.EXPECT().ListRememberedConnections(gomock.Any(), types.ProfileKindWireless).
			Return([]types.ConnectionProfile{{Name: "Home", AutoConnect: true, Kind: types.ProfileKindWireless}}, nil)

		rec, body := do(t, router, http.MethodGet, "/remembered_wifi_connections", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		connections := body["connections"].([]interface{})
		require.Len(t, connections, 1)
		assert.Equal(t, "Home", connections[0].(map[string]interface{})["name"])
	})

	t.Run("RememberedConnectionsEmpty", func(t *testing.T) {
		gateway.EXPECT().ListRememberedConnections(gomock.Any(), types.ProfileKind("")).
			Return([]types.ConnectionProfile{}, nil)

		rec, body := do(t, router, http.MethodGet, "/remembered_connections", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []interface{}{}, body["connections"])
	})

	t.Run("RememberedConnectionsByKind", func(t *testing.T) {
		gateway.EXPECT().ListRememberedConnections(gomock.Any(), types.ProfileKindWired).
			Return([]types.ConnectionProfile{}, nil)

		rec, _ := do(t, router, http.MethodGet, "/remembered_connections?kind=wired", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Scan", func(t *testing.T) {
		gateway.EXPECT().ScanWifiNetworks(gomock.Any()).
			Return([]types.WifiNetwork{{SSID: "Home", SignalStrength: 80, Active: true, BSSID: "AA:BB:CC:DD:EE:FF"}}, nil)

		rec, body := do(t, router, http.MethodGet, "/scan_wifi_networks", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		networks := body["networks"].([]interface{})
		require.Len(t, networks, 1)
		assert.Equal(t, "AA:BB:CC:DD:EE:FF", networks[0].(map[string]interface{})["bssid"])
	})

	t.Run("NoActiveNetwork", func(t *testing.T) {
		gateway.EXPECT().GetActiveWifiNetwork(gomock.Any()).Return(nil, nil)

		rec, body := do(t, router, http.MethodGet, "/active_wifi_network", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, body, "network")
		assert.Nil(t, body["network"])
	})

	t.Run("ScanTimeout", func(t *testing.T) {
		gateway.EXPECT().ScanWifiNetworks(gomock.Any()).Return(nil, &types.TimeoutError{Command: "nmcli"})

		rec, _ := do(t, router, http.MethodGet, "/scan_wifi_networks", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestConnectionMutations(t *testing.T) {
	router, gateway, _ := newTestRouter(t)

	t.Run("ConnectToNewAP", func(t *testing.T) {
		gateway.EXPECT().ConnectToNewAccessPoint(gomock.Any(), "Cafe", "s3cret").
			Return(types.OperationResult{Succeeded: true, Message: "Connected to Wi-Fi network 'Cafe' successfully."}, nil)

		rec, body := do(t, router, http.MethodPost, "/connect_to_new_ap", `{"ssid":"Cafe","password":"s3cret"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Connected to Wi-Fi network 'Cafe' successfully.", body["message"])
	})

	t.Run("ConnectToNewAPMissingPassword", func(t *testing.T) {
		rec, body := do(t, router, http.MethodPost, "/connect_to_new_ap", `{"ssid":"Cafe"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "SSID and password are required", body["error"])
	})

	t.Run("MissingConnectionName", func(t *testing.T) {
		for _, path := range []string{
			"/connect_to_known_wifi_connection",
			"/disconnect_from_wifi_connection",
			"/delete_known_wifi_connection",
			"/set_autoconnect_on_to_wifi_connection",
			"/set_autoconnect_off_to_wifi_connection",
		} {
			rec, body := do(t, router, http.MethodPost, path, `{}`)
			assert.Equal(t, http.StatusBadRequest, rec.Code, path)
			assert.Equal(t, "Connection name is required", body["error"], path)
		}
	})

	t.Run("Connect", func(t *testing.T) {
		gateway.EXPECT().ConnectToKnownConnection(gomock.Any(), "Home").
			Return(types.OperationResult{Succeeded: true, Message: "Connected to network 'Home' successfully."}, nil)

		rec, body := do(t, router, http.MethodPost, "/connect_to_known_wifi_connection", `{"connection_name":"Home"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Connected to network 'Home' successfully.", body["message"])
	})

	t.Run("Disconnect", func(t *testing.T) {
		gateway.EXPECT().DisconnectConnection(gomock.Any(), "Home").Return(types.OperationResult{Succeeded: true}, nil)

		rec, _ := do(t, router, http.MethodPost, "/disconnect_from_wifi_connection", `{"connection_name":"Home"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("DeleteFails", func(t *testing.T) {
		gateway.EXPECT().DeleteConnection(gomock.Any(), "Nope").
			Return(types.OperationResult{}, &types.ExecutionError{Command: "nmcli", ExitCode: 10, Stderr: "unknown connection"})

		rec, _ := do(t, router, http.MethodPost, "/delete_known_wifi_connection", `{"connection_name":"Nope"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("AutoConnect", func(t *testing.T) {
		gateway.EXPECT().SetAutoConnect(gomock.Any(), "Home", true).Return(types.OperationResult{Succeeded: true}, nil)
		gateway.EXPECT().SetAutoConnect(gomock.Any(), "Home", false).Return(types.OperationResult{Succeeded: true}, nil)

		rec, _ := do(t, router, http.MethodPost, "/set_autoconnect_on_to_wifi_connection", `{"connection_name":"Home"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		rec, _ = do(t, router, http.MethodPost, "/set_autoconnect_off_to_wifi_connection", `{"connection_name":"Home"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("WrongMethod", func(t *testing.T) {
		rec, _ := do(t, router, http.MethodGet, "/connect_to_new_ap", "")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestSystemRoutes(t *testing.T) {
	router, _, system := newTestRouter(t)

	t.Run("Health", func(t *testing.T) {
		rec, body := do(t, router, http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", body["status"])
		assert.Contains(t, body, "version")
	})

	t.Run("Metrics", func(t *testing.T) {
		rec, _ := do(t, router, http.MethodGet, "/metrics", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("RestartNetworkManager", func(t *testing.T) {
		system.EXPECT().RestartUnit(gomock.Any(), NetworkManagerUnit).Return(nil)

		rec, _ := do(t, router, http.MethodPost, "/system/restart_network_manager", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("RebootFailureAllowsRetry", func(t *testing.T) {
		gomock.InOrder(
			system.EXPECT().Reboot(gomock.Any()).Return(assert.AnError),
			system.EXPECT().Reboot(gomock.Any()).Return(nil),
		)

		rec, _ := do(t, router, http.MethodPost, "/system/reboot", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		rec, _ = do(t, router, http.MethodPost, "/system/reboot", "")
		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("SecondPowerActionRejected", func(t *testing.T) {
		rec, _ := do(t, router, http.MethodPost, "/system/poweroff", "")
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
