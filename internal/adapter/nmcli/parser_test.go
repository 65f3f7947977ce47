//go:build unit

package nmcli

import (
	"testing"

	"golang-nmgateway/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTerse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"Plain", "a:b:c", []string{"a", "b", "c"}},
		{"EscapedColon", `Home:80:yes:AA\:BB\:CC\:DD\:EE\:FF`, []string{"Home", "80", "yes", "AA:BB:CC:DD:EE:FF"}},
		{"EscapedBackslash", `a\\b:c`, []string{`a\b`, "c"}},
		{"EmptyFields", "::", []string{"", "", ""}},
		{"TrailingBackslash", `abc\`, []string{`abc\`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitTerse(tt.line))
		})
	}
}

func TestParseIPConfig(t *testing.T) {
	t.Run("TerseNmcliOutput", func(t *testing.T) {
		config, err := ParseIPConfig("IP4.ADDRESS[1]:192.168.1.10/24\n")
		require.NoError(t, err)
		assert.Equal(t, types.IPConfig{Address: "192.168.1.10", PrefixLength: 24}, config)
	})

	t.Run("FirstAddressWins", func(t *testing.T) {
		config, err := ParseIPConfig("IP4.ADDRESS[1]:10.0.0.5/8\nIP4.ADDRESS[2]:10.0.0.6/8\n")
		require.NoError(t, err)
		assert.Equal(t, "10.0.0.5", config.Address)
	})

	t.Run("IPAddrOutput", func(t *testing.T) {
		output := "2: eth0: <BROADCAST,MULTICAST,UP> mtu 1500\n" +
			"    inet 172.16.0.2/16 brd 172.16.255.255 scope global eth0\n"
		config, err := ParseIPConfig(output)
		require.NoError(t, err)
		assert.Equal(t, types.IPConfig{Address: "172.16.0.2", PrefixLength: 16}, config)
	})

	t.Run("NoAddressLine", func(t *testing.T) {
		_, err := ParseIPConfig("")
		assert.ErrorIs(t, err, ErrNoAddress)
	})

	t.Run("EmptyAddressValue", func(t *testing.T) {
		_, err := ParseIPConfig("IP4.ADDRESS:\n")
		assert.ErrorIs(t, err, ErrNoAddress)
	})

	t.Run("Malformed", func(t *testing.T) {
		for _, output := range []string{
			"IP4.ADDRESS[1]:192.168.1.10",
			"IP4.ADDRESS[1]:192.168.1.10/33",
			"IP4.ADDRESS[1]:192.168.1/24",
			"IP4.ADDRESS[1]:fe80::1/64",
			"IP4.ADDRESS[1]:192.168.1.10/24/1",
			"IP4.ADDRESS[1]:10.0.0.1/+24",
			"IP4.ADDRESS[1]:10.0.0.1/024",
			"IP4.ADDRESS[1]:10.0.0.1/-0",
			"IP4.ADDRESS[1]:10.0.0.1/ 24",
		} {
			_, err := ParseIPConfig(output)
			require.Error(t, err, output)
			assert.NotErrorIs(t, err, ErrNoAddress, output)
		}
	})
}

func TestParseConnectionList(t *testing.T) {
	t.Run("Terse", func(t *testing.T) {
		output := "Wired connection 1:yes:802-3-ethernet\n" +
			"HomeWifi:no:802-11-wireless\n" +
			"lo:no:loopback\n" +
			"Cafe\\:Guest:yes:802-11-wireless\n"
		profiles := ParseConnectionList(output)
		assert.Equal(t, []types.ConnectionProfile{
			{Name: "Wired connection 1", AutoConnect: true, Kind: types.ProfileKindWired},
			{Name: "HomeWifi", AutoConnect: false, Kind: types.ProfileKindWireless},
			{Name: "Cafe:Guest", AutoConnect: true, Kind: types.ProfileKindWireless},
		}, profiles)
	})

	t.Run("Tabular", func(t *testing.T) {
		output := "NAME                AUTOCONNECT  TYPE\n" +
			"Wired connection 1  yes          ethernet\n" +
			"Office              no           wifi\n"
		profiles := ParseConnectionList(output)
		assert.Equal(t, []types.ConnectionProfile{
			{Name: "Wired connection 1", AutoConnect: true, Kind: types.ProfileKindWired},
			{Name: "Office", AutoConnect: false, Kind: types.ProfileKindWireless},
		}, profiles)
	})

	t.Run("WithoutTypeColumn", func(t *testing.T) {
		profiles := ParseConnectionList("Office:yes\n")
		require.Len(t, profiles, 1)
		assert.Equal(t, types.ProfileKindWireless, profiles[0].Kind)
	})

	t.Run("MalformedLinesSkipped", func(t *testing.T) {
		output := "A:yes:wifi\n" +
			"garbage\n" +
			"B:maybe:wifi\n" +
			":yes:wifi\n" +
			"C:no:ethernet\n"
		profiles := ParseConnectionList(output)
		require.Len(t, profiles, 2)
		assert.Equal(t, "A", profiles[0].Name)
		assert.Equal(t, "C", profiles[1].Name)
	})

	t.Run("Empty", func(t *testing.T) {
		profiles := ParseConnectionList("")
		assert.NotNil(t, profiles)
		assert.Empty(t, profiles)
	})
}

func TestParseScanList(t *testing.T) {
	output := "Home:80:yes:AA:BB:CC:DD:EE:FF\nGuest:40:no:11:22:33:44:55:66"

	t.Run("VendorAllowlist", func(t *testing.T) {
		networks := ParseScanList(output, []string{"AA:BB"})
		assert.Equal(t, []types.WifiNetwork{
			{SSID: "Home", SignalStrength: 80, Active: true, BSSID: "AA:BB:CC:DD:EE:FF"},
		}, networks)
	})

	t.Run("AllowlistIsCaseInsensitive", func(t *testing.T) {
		networks := ParseScanList(output, []string{"aa:bb"})
		assert.Len(t, networks, 1)
	})

	t.Run("NoAllowlistKeepsScanOrder", func(t *testing.T) {
		networks := ParseScanList(output, nil)
		require.Len(t, networks, 2)
		assert.Equal(t, "Home", networks[0].SSID)
		assert.Equal(t, "Guest", networks[1].SSID)
	})

	t.Run("EscapedBSSID", func(t *testing.T) {
		networks := ParseScanList(`Home:80:yes:aa\:bb\:cc\:dd\:ee\:ff`, nil)
		require.Len(t, networks, 1)
		assert.Equal(t, "AA:BB:CC:DD:EE:FF", networks[0].BSSID)
	})

	t.Run("MalformedLinesSkipped", func(t *testing.T) {
		valid := "One:10:no:AA:BB:CC:DD:EE:01\nTwo:20:no:AA:BB:CC:DD:EE:02\nThree:30:yes:AA:BB:CC:DD:EE:03\n"
		malformed := "Bad:abc:no:AA:BB:CC:DD:EE:04\n" +
			"Bad:101:no:AA:BB:CC:DD:EE:05\n" +
			"Bad:50:perhaps:AA:BB:CC:DD:EE:06\n" +
			"Bad:50:no:ZZ:BB:CC:DD:EE:07\n" +
			"Bad:50:no\n"
		networks := ParseScanList(valid+malformed, nil)
		assert.Len(t, networks, 3)
	})

	t.Run("EmptySSID", func(t *testing.T) {
		networks := ParseScanList(":55:no:AA:BB:CC:DD:EE:FF", nil)
		require.Len(t, networks, 1)
		assert.Equal(t, "", networks[0].SSID)
	})
}

func TestParseActiveNetwork(t *testing.T) {
	t.Run("Active", func(t *testing.T) {
		network := ParseActiveNetwork("Guest:40:no:11:22:33:44:55:66\nHome:80:yes:AA:BB:CC:DD:EE:FF\n")
		require.NotNil(t, network)
		assert.Equal(t, "Home", network.SSID)
	})

	t.Run("NoActiveLine", func(t *testing.T) {
		assert.Nil(t, ParseActiveNetwork("Guest:40:no:11:22:33:44:55:66\n"))
	})

	t.Run("EmptyOutput", func(t *testing.T) {
		assert.Nil(t, ParseActiveNetwork(""))
	})
}
