package nmcli

import (
	"errors"
	"fmt"
	"net/netip"
	"regexp"
	"strconv"
	"strings"

	"golang-nmgateway/internal/types"
)

// Number of terse fields in a scan line once the BSSID is split into its six octets.
const scanFieldCount = 9

var (
	// ErrNoAddress is returned by ParseIPConfig when the output holds no address line.
	ErrNoAddress = errors.New("no IPv4 address present")

	// BSSID validation - exactly 6 pairs of hex digits separated by colons
	bssidRegex = regexp.MustCompile(`^[0-9A-F]{2}(:[0-9A-F]{2}){5}$`)

	// Prefix length as nmcli prints it: one or two digits, no sign.
	prefixRegex = regexp.MustCompile(`^[0-9]{1,2}$`)

	// Column separator of nmcli's tabular (non-terse) output.
	columnSeparator = regexp.MustCompile(`\t+|\s{2,}`)
)

// splitTerse splits one line of nmcli terse output on unescaped colons.
// Escape sequences ("\:" and "\\") are resolved in the returned fields.
func splitTerse(line string) []string {
	var (
		fields  []string
		field   strings.Builder
		escaped bool
	)
	for _, r := range line {
		switch {
		case escaped:
			field.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == ':':
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteRune(r)
		}
	}
	if escaped {
		field.WriteRune('\\')
	}
	return append(fields, field.String())
}

func outputLines(output string) []string {
	return strings.Split(strings.ReplaceAll(output, "\r\n", "\n"), "\n")
}

func parseYesNo(value string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes":
		return true, true
	case "no":
		return false, true
	}
	return false, false
}

// ParseIPConfig extracts the first IPv4 address/prefix pair from either
// "IP4.ADDRESS[n]:a.b.c.d/p" lines (nmcli) or "inet a.b.c.d/p ..." lines (ip addr).
// It returns ErrNoAddress when no such line carries a value.
func ParseIPConfig(output string) (types.IPConfig, error) {
	for _, line := range outputLines(output) {
		line = strings.TrimSpace(line)

		var value string
		switch {
		case strings.HasPrefix(line, "IP4.ADDRESS"):
			idx := strings.IndexByte(line, ':')
			if idx < 0 {
				continue
			}
			value = strings.TrimSpace(line[idx+1:])
		case strings.HasPrefix(line, "inet "):
			value = strings.Fields(line)[1]
		default:
			continue
		}

		// nmcli prints the field with an empty value for profiles without an address.
		if value == "" {
			continue
		}
		return parseAddressPrefix(value)
	}
	return types.IPConfig{}, ErrNoAddress
}

func parseAddressPrefix(value string) (types.IPConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return types.IPConfig{}, fmt.Errorf("expected address/prefix, got %q", value)
	}

	addr, err := netip.ParseAddr(parts[0])
	if err != nil || !addr.Is4() {
		return types.IPConfig{}, fmt.Errorf("invalid IPv4 address %q", parts[0])
	}

	if !prefixRegex.MatchString(parts[1]) {
		return types.IPConfig{}, fmt.Errorf("invalid prefix length %q", parts[1])
	}
	prefix, err := strconv.Atoi(parts[1])
	if err != nil || prefix > 32 {
		return types.IPConfig{}, fmt.Errorf("invalid prefix length %q", parts[1])
	}

	return types.IPConfig{Address: addr.String(), PrefixLength: prefix}, nil
}

func profileKindFromType(connType string) (types.ProfileKind, bool) {
	switch strings.TrimSpace(connType) {
	case "802-11-wireless", "wifi":
		return types.ProfileKindWireless, true
	case "802-3-ethernet", "ethernet":
		return types.ProfileKindWired, true
	}
	return "", false
}

// ParseConnectionList parses NAME,AUTOCONNECT[,TYPE] lines, terse or tabular.
// Lines that do not carry a name and a yes/no autoconnect value are skipped, as are
// profiles whose type is neither wired nor wireless. A line without a TYPE column is
// taken to be wireless, matching output already filtered to wireless profiles.
func ParseConnectionList(output string) []types.ConnectionProfile {
	profiles := make([]types.ConnectionProfile, 0)
	for _, line := range outputLines(output) {
		if strings.TrimSpace(line) == "" {
			continue
		}

		var fields []string
		if strings.Contains(line, ":") {
			fields = splitTerse(line)
		} else {
			fields = columnSeparator.Split(strings.TrimSpace(line), -1)
		}
		if len(fields) < 2 {
			continue
		}

		name := strings.TrimSpace(fields[0])
		autoConnect, ok := parseYesNo(fields[1])
		if name == "" || !ok {
			continue
		}

		kind := types.ProfileKindWireless
		if len(fields) >= 3 {
			if kind, ok = profileKindFromType(fields[2]); !ok {
				continue
			}
		}

		profiles = append(profiles, types.ConnectionProfile{
			Name:        name,
			AutoConnect: autoConnect,
			Kind:        kind,
		})
	}
	return profiles
}

// parseScanLine parses "SSID:SIGNAL:ACTIVE:BSSID". The BSSID may arrive escaped
// (one field) or with bare colons (six fields); both are normalised to nine fields.
func parseScanLine(line string) (types.WifiNetwork, bool) {
	fields := splitTerse(line)
	if len(fields) == 4 && strings.Contains(fields[3], ":") {
		fields = append(fields[:3:3], strings.Split(fields[3], ":")...)
	}
	if len(fields) != scanFieldCount {
		return types.WifiNetwork{}, false
	}

	signal, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil || signal < 0 || signal > 100 {
		return types.WifiNetwork{}, false
	}

	active, ok := parseYesNo(fields[2])
	if !ok {
		return types.WifiNetwork{}, false
	}

	bssid := strings.ToUpper(strings.Join(fields[3:], ":"))
	if !bssidRegex.MatchString(bssid) {
		return types.WifiNetwork{}, false
	}

	return types.WifiNetwork{
		SSID:           fields[0],
		SignalStrength: signal,
		Active:         active,
		BSSID:          bssid,
	}, true
}

func hasVendorPrefix(bssid string, prefixes []string) bool {
	if len(prefixes) == 0 {
		return true
	}
	for _, prefix := range prefixes {
		if strings.HasPrefix(bssid, strings.ToUpper(prefix)) {
			return true
		}
	}
	return false
}

// ParseScanList parses scan output in the order nmcli printed it. Malformed lines are
// skipped. When prefixes is non-empty only BSSIDs starting with one of them are kept.
func ParseScanList(output string, prefixes []string) []types.WifiNetwork {
	networks := make([]types.WifiNetwork, 0)
	for _, line := range outputLines(output) {
		network, ok := parseScanLine(line)
		if !ok || !hasVendorPrefix(network.BSSID, prefixes) {
			continue
		}
		networks = append(networks, network)
	}
	return networks
}

// ParseActiveNetwork returns the first scan line flagged active, or nil.
func ParseActiveNetwork(output string) *types.WifiNetwork {
	for _, line := range outputLines(output) {
		network, ok := parseScanLine(line)
		if ok && network.Active {
			return &network
		}
	}
	return nil
}
