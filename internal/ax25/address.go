package ax25

import (
	"fmt"
	"strings"
)

// EncodeAddress builds the AX.25 address field: destination, source, then
// each digipeater in order, each left-shifted by one bit, with bit 0 of
// the final byte set as the address-extension terminator (spec section
// 4.1 step 2; direwolf's ax25_pad.go "shifted left one bit" commentary).
func EncodeAddress(destination, source Callsign, digipeaters []Callsign) []byte {
	callsigns := make([]Callsign, 0, 2+len(digipeaters))
	callsigns = append(callsigns, destination, source)
	callsigns = append(callsigns, digipeaters...)

	addr := make([]byte, 0, 7*len(callsigns))

	for _, c := range callsigns {
		enc := c.Encode()
		addr = append(addr, enc[:]...)
	}

	for i := range addr {
		addr[i] <<= 1
	}

	addr[len(addr)-1] |= 0x01

	return addr
}

// ParsePath splits a comma-separated digipeater path into callsigns,
// enforcing the 8-entry AX.25 transmit limit (spec section 4.1).
func ParsePath(path string) ([]Callsign, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}

	entries := strings.Split(path, ",")
	if len(entries) > MaxDigipeaters {
		return nil, fmt.Errorf("%w: %d digipeaters exceeds limit of %d", ErrInvalidPath, len(entries), MaxDigipeaters)
	}

	digis := make([]Callsign, 0, len(entries))

	for _, entry := range entries {
		c, err := ParseCallsign(strings.TrimSpace(entry))
		if err != nil {
			return nil, fmt.Errorf("%w: digipeater %q: %w", ErrInvalidPath, entry, err)
		}

		digis = append(digis, c)
	}

	return digis, nil
}
