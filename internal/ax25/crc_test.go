package ax25

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// TestCRCGoodFrameResidue is the universal property from spec section 8:
// for all frame bodies B, CRC(B ‖ FCS_le(B)) has the standard AX.25
// "good frame" residue. fcs() always applies the final complement
// (spec section 4.1 step 4), so the residue it returns over a
// correctly-FCS'd frame is the bitwise complement of the textbook
// 0xF0B8 value, which is defined over the uncomplemented running
// register.
func TestCRCGoodFrameResidue(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		body := rapid.SliceOfN(rapid.Byte(), 0, 64).Draw(t, "body")

		crc := fcs(body)
		withFCS := append(append([]byte{}, body...), byte(crc&0xFF), byte(crc>>8&0xFF))

		assert.Equal(t, uint16(0x0F47), fcs(withFCS))
	})
}

func TestFCS_Deterministic(t *testing.T) {
	a := fcs([]byte("Hello"))
	b := fcs([]byte("Hello"))
	assert.Equal(t, a, b)

	c := fcs([]byte("Hellx"))
	assert.NotEqual(t, a, c)
}
