package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb2osz/aprstx/internal/ax25"
	"github.com/wb2osz/aprstx/internal/pipeline"
)

func TestValidate_AppliesDefaults(t *testing.T) {
	req, format, err := Options{Callsign: "N0CALL-9", Payload: "TEST"}.Validate()
	require.NoError(t, err)

	assert.Equal(t, "APRS", req.Destination.String())
	assert.Len(t, req.Digipeaters, 2)
	assert.Equal(t, pipeline.FormatF32, format)
}

func TestValidate_RejectsBadCallsign(t *testing.T) {
	_, _, err := Options{Callsign: "TOOLONGCALL", Payload: "TEST"}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ax25.ErrInvalidCallsign)
}

func TestValidate_RejectsBadFormat(t *testing.T) {
	_, _, err := Options{Callsign: "N0CALL-9", Payload: "TEST", Format: "wav"}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, pipeline.ErrInvalidFormat)
}

func TestValidate_RejectsEmptyPayload(t *testing.T) {
	_, _, err := Options{Callsign: "N0CALL-9"}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ax25.ErrInvalidPayload)
}

func TestValidate_CustomPath(t *testing.T) {
	req, _, err := Options{Callsign: "N0CALL-9", Payload: "TEST", Path: "WIDE1-1"}.Validate()
	require.NoError(t, err)
	assert.Len(t, req.Digipeaters, 1)
}
