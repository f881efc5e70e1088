package ax25

import "errors"

// Sentinel errors for the validation taxonomy. The framer is a pure
// function of validated input (spec section 7): any rejection happens
// here, at construction time, never partway through building a frame.
var (
	ErrInvalidCallsign = errors.New("invalid callsign")
	ErrInvalidSSID     = errors.New("invalid ssid")
	ErrInvalidPath     = errors.New("invalid digipeater path")
	ErrInvalidPayload  = errors.New("invalid payload")
)

// MaxDigipeaters is the AX.25 over-the-air limit on the number of
// digipeater addresses (spec section 4.1).
const MaxDigipeaters = 8

// MaxPayloadBytes and MinPayloadBytes bound the AX.25 UI information
// field this framer accepts.
const (
	MinPayloadBytes = 1
	MaxPayloadBytes = 256
)
