package rfc3986_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/rfc3986"
)

func ptr(s string) *string { return &s }

func TestValidIPv4HostAddress(t *testing.T) {
	t.Run("accepts a routable address", func(t *testing.T) {
		assert.True(t, rfc3986.ValidIPv4HostAddress("192.168.1.1"))
	})

	t.Run("accepts boundary octets", func(t *testing.T) {
		assert.True(t, rfc3986.ValidIPv4HostAddress("0.0.0.0"))
		assert.True(t, rfc3986.ValidIPv4HostAddress("255.255.255.255"))
	})

	t.Run("accepts leading zeros", func(t *testing.T) {
		assert.True(t, rfc3986.ValidIPv4HostAddress("192.068.001.001"))
	})

	t.Run("rejects an out of range octet", func(t *testing.T) {
		assert.False(t, rfc3986.ValidIPv4HostAddress("999.1.1.1"))
		assert.False(t, rfc3986.ValidIPv4HostAddress("1.1.1.256"))
	})

	t.Run("rejects wrong part count", func(t *testing.T) {
		assert.False(t, rfc3986.ValidIPv4HostAddress("1.2.3"))
		assert.False(t, rfc3986.ValidIPv4HostAddress("1.2.3.4.5"))
	})

	t.Run("rejects non numeric parts", func(t *testing.T) {
		assert.False(t, rfc3986.ValidIPv4HostAddress("a.b.c.d"))
		assert.False(t, rfc3986.ValidIPv4HostAddress("1..2.3"))
		assert.False(t, rfc3986.ValidIPv4HostAddress(""))
	})
}
