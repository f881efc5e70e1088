package main

/*------------------------------------------------------------------
 *
 * Purpose:	Command-line entry point for aprstx, the standalone APRS
 *		baseband signal generator: callsign + path + payload in,
 *		a stream of IQ (or audio) samples out.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lestrrat-go/strftime"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/wb2osz/aprstx/internal/config"
	"github.com/wb2osz/aprstx/internal/pipeline"
	"github.com/wb2osz/aprstx/internal/version"
)

// fileDefaults is the shape of an optional --config-file: a station's
// recurring settings, so repeated runs for the same station don't need
// to repeat flags on every invocation.
type fileDefaults struct {
	Destination string `yaml:"destination"`
	Path        string `yaml:"path"`
	Format      string `yaml:"format"`
	FlagCount   int    `yaml:"flag_count"`
}

func loadFileDefaults(path string) (fileDefaults, error) {
	var out fileDefaults

	if path == "" {
		return out, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return out, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("parsing config file: %w", err)
	}

	return out, nil
}

func main() {
	os.Exit(run())
}

func run() int {
	var (
		destination = pflag.StringP("destination", "d", "", "AX.25 destination address.")
		path        = pflag.StringP("path", "p", "", "Comma-separated digipeater path, up to 8 entries.")
		outputPath  = pflag.StringP("output", "o", "", "File to write to. Defaults to stdout.")
		format      = pflag.StringP("format", "f", "", "Output format: f32, s8, or pcm.")
		flagCount   = pflag.IntP("flag-count", "F", 0, "Number of leading HDLC flag octets. 0 uses the built-in default.")
		configFile  = pflag.StringP("config-file", "c", "", "Optional YAML file of station defaults (destination, path, format, flag_count).")
		logLevel    = pflag.StringP("log-level", "l", "info", "Log level: debug, info, warn, error.")
		debug       = pflag.BoolP("debug", "D", false, "Dump the raw pre-modulation bit sequence to a timestamped file alongside the output.")
		showVersion = pflag.BoolP("version", "V", false, "Print version information and exit.")
	)

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "aprstx - generates an APRS baseband IQ signal from a callsign, path, and payload.\n\n")
		fmt.Fprintf(os.Stderr, "Usage: aprstx [options] <callsign> <payload>\n\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return 0
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.InfoLevel})
	if lvl, err := log.ParseLevel(*logLevel); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warnf("unrecognized --log-level %q, keeping info", *logLevel)
	}

	if pflag.NArg() < 2 {
		pflag.Usage()
		return 1
	}

	defaults, err := loadFileDefaults(*configFile)
	if err != nil {
		logger.Error("invalid config file", "err", err)
		return 1
	}

	opts := config.Options{
		Callsign:    pflag.Arg(0),
		Destination: firstNonEmpty(*destination, defaults.Destination),
		Path:        firstNonEmpty(*path, defaults.Path),
		Payload:     pflag.Arg(1),
		Format:      firstNonEmpty(*format, defaults.Format),
		FlagCount:   firstNonZero(*flagCount, defaults.FlagCount),
		Debug:       *debug,
	}

	req, outFormat, err := opts.Validate()
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		return 1
	}

	logger.Info("generating transmission",
		"source", req.Source.String(),
		"destination", req.Destination.String(),
		"digipeaters", len(req.Digipeaters),
		"payload_bytes", len(req.Payload))

	if opts.Debug {
		if err := dumpBits(req, logger); err != nil {
			logger.Warn("could not write debug bit dump", "err", err)
		}
	}

	out, err := pipeline.Generate(req, outFormat)
	if err != nil {
		logger.Error("signal generation failed", "err", err)
		return 1
	}

	if err := writeOutput(*outputPath, out); err != nil {
		logger.Error("io error", "err", err)
		return 1
	}

	logger.Info("wrote transmission", "bytes", len(out), "destination", outputDescription(*outputPath))

	return 0
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}

	return b
}

func firstNonZero(a, b int) int {
	if a != 0 {
		return a
	}

	return b
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

func outputDescription(path string) string {
	if path == "" {
		return "stdout"
	}

	return path
}

// dumpBits writes the pre-modulation bit sequence to a timestamped file
// next to the run, named with the same strftime pattern xmit.go uses
// for its timestamp formatting, so debug artifacts from the same run
// sort together on disk.
func dumpBits(req pipeline.Request, logger *log.Logger) error {
	bits, err := req.Bits()
	if err != nil {
		return err
	}

	name, err := strftime.Format("aprstx-%Y%m%d-%H%M%S.bits", time.Now())
	if err != nil {
		return fmt.Errorf("formatting debug dump name: %w", err)
	}

	buf := make([]byte, len(bits))

	for i, b := range bits {
		if b {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}

	if err := os.WriteFile(name, buf, 0o644); err != nil {
		return err
	}

	logger.Debug("wrote bit dump", "file", name, "bits", len(bits))

	return nil
}
