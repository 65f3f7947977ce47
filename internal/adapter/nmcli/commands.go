package nmcli

import (
	"strings"

	"golang-nmgateway/internal/types"
)

// Field selections for terse output. Their order defines the column order the parsers expect.
var (
	ipAddressFields  = []string{"IP4.ADDRESS"}
	connectionFields = []string{"NAME", "AUTOCONNECT", "TYPE"}
	wifiFields       = []string{"SSID", "SIGNAL", "ACTIVE", "BSSID"}
)

// commandBuilder assembles an nmcli argument vector token by token.
// User values are appended as whole tokens and never concatenated into other tokens.
type commandBuilder struct {
	cmd types.Command
}

// newCommand starts an nmcli invocation in terse mode, optionally selecting output fields.
func newCommand(path, op string, fields ...string) *commandBuilder {
	b := &commandBuilder{cmd: types.Command{Name: path, Op: op}}
	b.cmd.Args = append(b.cmd.Args, "-t")
	if len(fields) > 0 {
		b.cmd.Args = append(b.cmd.Args, "-f", strings.Join(fields, ","))
	}
	b.cmd.Args = append(b.cmd.Args, strings.Fields(op)...)
	return b
}

func (b *commandBuilder) arg(args ...string) *commandBuilder {
	b.cmd.Args = append(b.cmd.Args, args...)
	return b
}

// profile selects a connection by name. The explicit "id" keyword keeps names such as
// "uuid" or "path" from being read as selectors.
func (b *commandBuilder) profile(name string) *commandBuilder {
	return b.arg("id", name)
}

// secret appends a keyword/value pair whose value is masked when the command is rendered.
func (b *commandBuilder) secret(keyword, value string) *commandBuilder {
	b.cmd.Args = append(b.cmd.Args, keyword, value)
	b.cmd.Secret = append(b.cmd.Secret, len(b.cmd.Args)-1)
	return b
}

func (b *commandBuilder) ifname(iface string) *commandBuilder {
	if iface != "" {
		b.arg("ifname", iface)
	}
	return b
}

func (b *commandBuilder) build() types.Command {
	return b.cmd
}

func yesNo(enabled bool) string {
	if enabled {
		return "yes"
	}
	return "no"
}

func (g *Gateway) ipAddressCommand(profile string) types.Command {
	return newCommand(g.opts.Path, "connection show", ipAddressFields...).profile(profile).build()
}

func (g *Gateway) listConnectionsCommand() types.Command {
	return newCommand(g.opts.Path, "connection show", connectionFields...).build()
}

func (g *Gateway) wifiListCommand() types.Command {
	return newCommand(g.opts.Path, "device wifi list", wifiFields...).ifname(g.opts.WirelessInterface).build()
}

func (g *Gateway) connectionUpCommand(name string) types.Command {
	return newCommand(g.opts.Path, "connection up").profile(name).build()
}

func (g *Gateway) connectionDownCommand(name string) types.Command {
	return newCommand(g.opts.Path, "connection down").profile(name).build()
}

func (g *Gateway) connectionDeleteCommand(name string) types.Command {
	return newCommand(g.opts.Path, "connection delete").profile(name).build()
}

func (g *Gateway) wifiConnectCommand(ssid, password string) types.Command {
	return newCommand(g.opts.Path, "device wifi connect").
		arg(ssid).
		secret("password", password).
		ifname(g.opts.WirelessInterface).
		build()
}

func (g *Gateway) autoConnectCommand(name string, enabled bool) types.Command {
	return newCommand(g.opts.Path, "connection modify").
		profile(name).
		arg("connection.autoconnect", yesNo(enabled)).
		build()
}

func (g *Gateway) staticIPCommand(profile string, config types.StaticIPConfig) types.Command {
	b := newCommand(g.opts.Path, "connection modify").
		profile(profile).
		arg("ipv4.addresses", types.IPConfig{Address: config.Address, PrefixLength: config.PrefixLength}.CIDR()).
		arg("ipv4.method", "manual")
	if config.Gateway != "" {
		b.arg("ipv4.gateway", config.Gateway)
	}
	return b.build()
}

func (g *Gateway) dhcpCommand(profile string) types.Command {
	return newCommand(g.opts.Path, "connection modify").
		profile(profile).
		arg("ipv4.method", "auto").
		arg("ipv4.addresses", "").
		arg("ipv4.gateway", "").
		build()
}
