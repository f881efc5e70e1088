package ax25

import (
	"fmt"
	"strconv"
	"strings"
)

// Callsign is a parsed AX.25 station identifier: a base of up to six
// uppercase alphanumerics plus a substation ID in [0,15].
//
// This mirrors the "C R R SSID 0" address-octet layout described in
// direwolf's ax25_pad.go, but only the pieces APRS UI frames need.
type Callsign struct {
	Base string
	SSID int
}

// ParseCallsign accepts "BASE" or "BASE-SSID" and validates both parts.
// Base is upper-cased; it must be 1-6 ASCII letters or digits. SSID, if
// present, must parse as an integer in [0,15].
func ParseCallsign(s string) (Callsign, error) {
	base, ssidPart, hasSSID := strings.Cut(s, "-")
	base = strings.ToUpper(base)

	if len(base) == 0 || len(base) > 6 {
		return Callsign{}, fmt.Errorf("%w: %q: base must be 1-6 characters", ErrInvalidCallsign, s)
	}

	for _, c := range base {
		if !isCallsignChar(c) {
			return Callsign{}, fmt.Errorf("%w: %q: non-alphanumeric character %q", ErrInvalidCallsign, s, c)
		}
	}

	ssid := 0

	if hasSSID {
		n, err := strconv.Atoi(ssidPart)
		if err != nil {
			return Callsign{}, fmt.Errorf("%w: %q: malformed ssid suffix", ErrInvalidCallsign, s)
		}

		ssid = n
	}

	if ssid < 0 || ssid > 15 {
		return Callsign{}, fmt.Errorf("%w: %q: ssid %d out of range [0,15]", ErrInvalidSSID, s, ssid)
	}

	return Callsign{Base: base, SSID: ssid}, nil
}

func isCallsignChar(c rune) bool {
	return (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// Encode produces the 7-byte AX.25 address octets for this callsign:
// six space-padded base characters followed by a byte holding '0'+SSID.
// Bytes are not yet left-shifted; shifting and the address-extension
// terminator bit are applied once the whole address field is assembled
// (see EncodeAddress).
func (c Callsign) Encode() [7]byte {
	var out [7]byte

	copy(out[:6], []byte(c.Base))

	for i := len(c.Base); i < 6; i++ {
		out[i] = ' '
	}

	out[6] = byte('0' + c.SSID)

	return out
}

// String renders the callsign back in "BASE" or "BASE-SSID" form.
func (c Callsign) String() string {
	if c.SSID == 0 {
		return c.Base
	}

	return fmt.Sprintf("%s-%d", c.Base, c.SSID)
}
