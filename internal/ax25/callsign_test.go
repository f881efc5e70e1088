package ax25

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const callsignCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func TestParseCallsign_N0CALL9(t *testing.T) {
	c, err := ParseCallsign("N0CALL-9")
	require.NoError(t, err)
	assert.Equal(t, "N0CALL", c.Base)
	assert.Equal(t, 9, c.SSID)

	enc := c.Encode()
	assert.Equal(t, [7]byte{0x4E, 0x30, 0x43, 0x41, 0x4C, 0x4C, 0x39}, enc)
}

func TestParseCallsign_NoSSID(t *testing.T) {
	c, err := ParseCallsign("aprs")
	require.NoError(t, err)
	assert.Equal(t, "APRS", c.Base)
	assert.Equal(t, 0, c.SSID)
}

func TestParseCallsign_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"too long base", "TOOLONGCALL", ErrInvalidCallsign},
		{"non-alphanumeric", "N0CAL!", ErrInvalidCallsign},
		{"empty base", "-5", ErrInvalidCallsign},
		{"malformed ssid", "N0CALL-x", ErrInvalidCallsign},
		{"ssid too high", "N0CALL-16", ErrInvalidSSID},
		{"ssid negative", "N0CALL--1", ErrInvalidSSID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCallsign(tt.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// TestCallsignRoundTrip is the universal property from spec section 8:
// for every valid (base, ssid), the encoded 7 bytes decode back
// identically after right-trimming padding spaces and parsing the SSID
// byte as c - '0'.
func TestCallsignRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		baseLen := rapid.IntRange(1, 6).Draw(t, "baseLen")

		var sb strings.Builder
		for i := 0; i < baseLen; i++ {
			idx := rapid.IntRange(0, len(callsignCharset)-1).Draw(t, "char")
			sb.WriteByte(callsignCharset[idx])
		}

		base := sb.String()
		ssid := rapid.IntRange(0, 15).Draw(t, "ssid")

		c := Callsign{Base: base, SSID: ssid}
		enc := c.Encode()

		gotBase := string(enc[:6])
		for len(gotBase) > 0 && gotBase[len(gotBase)-1] == ' ' {
			gotBase = gotBase[:len(gotBase)-1]
		}

		gotSSID := int(enc[6] - '0')

		assert.Equal(t, base, gotBase)
		assert.Equal(t, ssid, gotSSID)
	})
}
