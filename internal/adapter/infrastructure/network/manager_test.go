//go:build unit

package network

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishvananda/netlink"
)

func TestNewManagerAdapter(t *testing.T) {
	adapter := NewManagerAdapter()
	assert.NotNil(t, adapter)
}

func TestManagerAdapter_GetLinkByName(t *testing.T) {
	adapter := NewManagerAdapter()

	t.Run("ValidInterface", func(t *testing.T) {
		// Test with loopback interface which should exist on most systems
		link, err := adapter.GetLinkByName("lo")
		if err != nil {
			t.Skip("Loopback interface not available, skipping test")
		}
		assert.NotNil(t, link)
		assert.Equal(t, "lo", link.Attrs().Name)
	})

	t.Run("InvalidInterface", func(t *testing.T) {
		_, err := adapter.GetLinkByName("nonexistent0")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get netlink interface")

		var notFound netlink.LinkNotFoundError
		assert.True(t, errors.As(err, &notFound), "missing interface should stay recognisable")
	})
}

func TestManagerAdapter_ListAddresses(t *testing.T) {
	adapter := NewManagerAdapter()

	link, err := adapter.GetLinkByName("lo")
	if err != nil {
		t.Skip("Loopback interface not available, skipping test")
	}

	addresses, err := adapter.ListAddresses(link)
	require.NoError(t, err)
	for _, addr := range addresses {
		assert.NotNil(t, addr.IP.To4(), "only IPv4 addresses are listed")
	}
}
