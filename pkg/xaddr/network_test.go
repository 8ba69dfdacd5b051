package xaddr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMask(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "class A low", input: "10.0.0.1", want: "255.0.0.0"},
		{name: "class A boundary", input: "127.255.255.255", want: "255.0.0.0"},
		{name: "class B low", input: "128.0.0.1", want: "255.255.0.0"},
		{name: "class B mid", input: "172.16.0.1", want: "255.255.0.0"},
		{name: "class B boundary", input: "191.255.0.1", want: "255.255.0.0"},
		{name: "class C low", input: "192.0.0.1", want: "255.255.255.0"},
		{name: "class C mid", input: "203.0.113.9", want: "255.255.255.0"},
		{name: "class C boundary", input: "223.255.255.1", want: "255.255.255.0"},
		{name: "class D multicast", input: "224.0.0.1", wantErr: true},
		{name: "class E reserved", input: "240.0.0.1", wantErr: true},
		{name: "IPv6", input: "2001:db8::1", wantErr: true},
		{name: "range uses base address", input: "10.1.2.3/24", want: "255.0.0.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mask, err := MustParse(tt.input).DefaultMask()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFamily)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, mask.String())
		})
	}

	var zero Entry
	_, err := zero.DefaultMask()
	assert.ErrorIs(t, err, ErrUnsupportedFamily)
}

func TestNetwork(t *testing.T) {
	t.Run("range uses own bits", func(t *testing.T) {
		p, err := MustParse("1.1.5.5/16").Network()
		require.NoError(t, err)
		assert.Equal(t, "1.1.0.0", p.Addr().String())
		assert.Equal(t, "1.1.0.0/16", p.String())
	})

	t.Run("IPv6 range", func(t *testing.T) {
		p, err := MustParse("2001:db8:ffff::1/32").Network()
		require.NoError(t, err)
		assert.Equal(t, "2001:db8::", p.Addr().String())
		assert.Equal(t, "2001:db8::/32", p.String())
	})

	t.Run("bare address requires explicit bits", func(t *testing.T) {
		_, err := MustParse("1.1.1.1").Network()
		assert.ErrorIs(t, err, ErrMissingPrefix)
	})

	t.Run("invalid entry", func(t *testing.T) {
		var e Entry
		_, err := e.Network()
		assert.ErrorIs(t, err, ErrInvalidAddress)
	})
}

func TestNetworkBits(t *testing.T) {
	t.Run("bare address with explicit bits", func(t *testing.T) {
		p, err := MustParse("1.1.1.1").NetworkBits(16)
		require.NoError(t, err)
		assert.Equal(t, "1.1.0.0", p.Addr().String())
		assert.Equal(t, "1.1.0.0/16", p.String())
	})

	t.Run("explicit bits override a range's own prefix", func(t *testing.T) {
		p, err := MustParse("10.1.2.3/24").NetworkBits(8)
		require.NoError(t, err)
		assert.Equal(t, "10.0.0.0/8", p.String())
	})

	t.Run("bits out of range for IPv4", func(t *testing.T) {
		_, err := MustParse("1.1.1.1").NetworkBits(33)
		assert.ErrorIs(t, err, ErrInvalidAddress)
	})

	t.Run("negative bits", func(t *testing.T) {
		_, err := MustParse("1.1.1.1").NetworkBits(-1)
		assert.ErrorIs(t, err, ErrInvalidAddress)
	})

	t.Run("IPv6 bits beyond 32 are fine", func(t *testing.T) {
		p, err := MustParse("2001:db8::1").NetworkBits(64)
		require.NoError(t, err)
		assert.Equal(t, "2001:db8::/64", p.String())
	})

	t.Run("invalid entry", func(t *testing.T) {
		var e Entry
		_, err := e.NetworkBits(8)
		assert.ErrorIs(t, err, ErrInvalidAddress)
	})
}

func TestContains(t *testing.T) {
	tests := []struct {
		name     string
		receiver string
		arg      string
		want     bool
	}{
		{name: "range contains member", receiver: "1.1.0.0/16", arg: "1.1.5.5", want: true},
		{name: "range excludes outsider", receiver: "1.1.0.0/16", arg: "1.2.0.0", want: false},
		{name: "range contains own network address", receiver: "1.1.0.0/16", arg: "1.1.0.0", want: true},
		{name: "range contains broadcast edge", receiver: "1.1.0.0/16", arg: "1.1.255.255", want: true},
		{name: "host-base range still matches by mask", receiver: "1.1.5.5/16", arg: "1.1.9.9", want: true},
		{name: "bare address exact match", receiver: "8.8.8.8", arg: "8.8.8.8", want: true},
		{name: "bare address mismatch", receiver: "8.8.8.8", arg: "8.8.4.4", want: false},
		{name: "bare address never matches by prefix", receiver: "8.8.8.8", arg: "8.8.8.0", want: false},
		{name: "IPv6 range contains member", receiver: "2001:db8::/32", arg: "2001:db8:1::1", want: true},
		{name: "IPv6 range excludes outsider", receiver: "2001:db8::/32", arg: "2001:db9::1", want: false},
		{name: "cross family v4 range v6 addr", receiver: "10.0.0.0/8", arg: "::1", want: false},
		{name: "cross family v6 range v4 addr", receiver: "2001:db8::/32", arg: "10.0.0.1", want: false},
		{name: "IPv4-mapped argument is unmapped", receiver: "192.168.0.0/16", arg: "::ffff:192.168.1.1", want: true},
		{name: "unparsable argument is false not error", receiver: "10.0.0.0/8", arg: "not-an-ip", want: false},
		{name: "empty argument", receiver: "10.0.0.0/8", arg: "", want: false},
		{name: "zone ID argument", receiver: "fe80::/10", arg: "fe80::1%eth0", want: false},
		{name: "whole IPv4 space", receiver: "0.0.0.0/0", arg: "203.0.113.7", want: true},
		{name: "CIDR argument judged by its base", receiver: "10.0.0.0/8", arg: "10.1.0.0/16", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MustParse(tt.receiver).Contains(tt.arg))
		})
	}

	t.Run("invalid receiver", func(t *testing.T) {
		var e Entry
		assert.False(t, e.Contains("10.0.0.1"))
	})
}
