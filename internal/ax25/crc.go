package ax25

// fcs computes the AX.25 Frame Check Sequence: CRC-16 with polynomial
// 0x8408 (the bit-reversed form of 0x1021), initial value 0xFFFF, and a
// final bitwise inversion. Ported from the bit-at-a-time form in
// original_source/ax25.cpp's calc_fcs rather than a table-driven CRC,
// since the spec describes the algorithm at this level of detail and a
// lookup table would hide the exact bit order it's pinning down.
func fcs(data []byte) uint16 {
	var crc uint16 = 0xFFFF

	for _, b := range data {
		for i := 0; i < 8; i++ {
			bBit := b & 1
			rBit := byte(crc & 1)
			crc >>= 1

			if bBit != rBit {
				crc ^= 0x8408
			}

			b >>= 1
		}
	}

	return ^crc
}

// appendFCS appends the two FCS bytes to frame, low byte first, matching
// spec section 4.1 step 4 and the on-air layout in section 6.
func appendFCS(frame []byte) []byte {
	crc := fcs(frame)
	return append(frame, byte(crc&0xFF), byte(crc>>8&0xFF))
}
