// Package config turns raw CLI/file input into a validated Options
// value, the configuration boundary spec section 7 describes: all
// validation happens here, before any sample is produced, and is
// surfaced as an error return rather than a process exit (spec section
// 9's redesign direction).
package config

import (
	"fmt"

	"github.com/wb2osz/aprstx/internal/ax25"
	"github.com/wb2osz/aprstx/internal/pipeline"
)

// DefaultDestination and DefaultPath match spec section 6's table.
const (
	DefaultDestination = "APRS"
	DefaultPath        = "WIDE1-1,WIDE2-1"
	DefaultFormat      = "f32"
)

// Options holds the raw `{callsign, destination, path, payload,
// output_format}` tuple spec section 1 says the core consumes; Validate
// checks it.
type Options struct {
	Callsign    string
	Destination string
	Path        string
	Payload     string
	Format      string
	FlagCount   int
	Debug       bool
}

// Validate parses and checks every field, returning a pipeline.Request
// ready to render plus the chosen output format. It never mutates o.
func (o Options) Validate() (pipeline.Request, pipeline.Format, error) {
	source, err := ax25.ParseCallsign(o.Callsign)
	if err != nil {
		return pipeline.Request{}, 0, err
	}

	destination, err := ax25.ParseCallsign(valueOrDefault(o.Destination, DefaultDestination))
	if err != nil {
		return pipeline.Request{}, 0, fmt.Errorf("destination: %w", err)
	}

	digis, err := ax25.ParsePath(valueOrDefault(o.Path, DefaultPath))
	if err != nil {
		return pipeline.Request{}, 0, err
	}

	format, err := pipeline.ParseFormat(valueOrDefault(o.Format, DefaultFormat))
	if err != nil {
		return pipeline.Request{}, 0, err
	}

	req := pipeline.Request{
		Destination: destination,
		Source:      source,
		Digipeaters: digis,
		Payload:     []byte(o.Payload),
		FlagCount:   o.FlagCount,
	}

	if err := (ax25.Frame{
		Destination: req.Destination,
		Source:      req.Source,
		Digipeaters: req.Digipeaters,
		Payload:     req.Payload,
	}).Validate(); err != nil {
		return pipeline.Request{}, 0, err
	}

	return req, format, nil
}

func valueOrDefault(v, def string) string {
	if v == "" {
		return def
	}

	return v
}
