package nmcli

import (
	"fmt"
	"net/netip"
	"regexp"
	"strings"

	"golang-nmgateway/internal/types"
)

const maxSSIDLength = 32

// nmcli consumes these as global options wherever they appear in argv.
var reservedArgs = []string{"--ask", "--show-secrets"}

// Interface names: start with letter, alphanumeric + underscore/dash/dot, max 15 chars
var interfaceRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_.-]{0,14}$`)

func invalid(field, reason string) error {
	return &types.ValidationError{Field: field, Reason: reason}
}

// validateName checks a value that is passed to nmcli as a single argument.
// NUL cannot travel in argv and line breaks would corrupt nmcli's line-oriented output.
func validateName(field, value string) error {
	if value == "" {
		return invalid(field, "must not be empty")
	}
	if strings.ContainsAny(value, "\x00\n\r") {
		return invalid(field, "must not contain NUL or line breaks")
	}
	for _, reserved := range reservedArgs {
		if value == reserved {
			return invalid(field, fmt.Sprintf("%q is reserved by nmcli", value))
		}
	}
	return nil
}

func validateSSID(ssid string) error {
	if err := validateName("ssid", ssid); err != nil {
		return err
	}
	if len(ssid) > maxSSIDLength {
		return invalid("ssid", "longer than 32 bytes")
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return invalid("password", "must not be empty")
	}
	if strings.ContainsRune(password, 0) {
		return invalid("password", "must not contain NUL")
	}
	for _, reserved := range reservedArgs {
		if password == reserved {
			return invalid("password", "value is reserved by nmcli")
		}
	}
	return nil
}

func validateInterfaceName(iface string) error {
	if !interfaceRegex.MatchString(iface) {
		return invalid("interface", "must start with a letter and contain at most 15 alphanumeric, '_', '-' or '.' characters")
	}
	return nil
}

func validateIPv4(field, value string) error {
	addr, err := netip.ParseAddr(value)
	if err != nil || !addr.Is4() {
		return invalid(field, "not an IPv4 address: "+value)
	}
	return nil
}

func validatePrefixLength(prefix int) error {
	if prefix < 0 || prefix > 32 {
		return invalid("prefix length", "must be between 0 and 32")
	}
	return nil
}

func validateStaticIPConfig(config types.StaticIPConfig) error {
	if err := validateIPv4("address", config.Address); err != nil {
		return err
	}
	if err := validatePrefixLength(config.PrefixLength); err != nil {
		return err
	}
	if config.Gateway != "" {
		return validateIPv4("gateway", config.Gateway)
	}
	return nil
}
