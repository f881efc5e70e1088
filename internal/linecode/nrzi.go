// Package linecode implements the NRZI line coding that sits between the
// AX.25 bit sequence and the AFSK tone generator.
package linecode

// Encode maps a logical bit sequence to its NRZI line-coded form: a 0
// input toggles the line state, a 1 input holds it. The initial line
// state is 1 (spec section 4.2). Output has the same length as input.
//
// This is the stage that turns the flag-octet and zero-preamble patterns
// into the cleanly alternating tone sequence a receiver's PLL locks onto.
func Encode(bits []bool) []bool {
	out := make([]bool, len(bits))
	state := true

	for i, b := range bits {
		if !b {
			state = !state
		}

		out[i] = state
	}

	return out
}

// Decode inverts Encode: it detects transitions in the line-coded
// sequence and recovers the original bits. Used only by tests to verify
// the NRZI involution property (spec section 8).
func Decode(line []bool) []bool {
	out := make([]bool, len(line))
	prev := true

	for i, cur := range line {
		out[i] = cur == prev
		prev = cur
	}

	return out
}
