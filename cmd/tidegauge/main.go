// Command tidegauge analyzes a directory of UK tide-gauge text files. It
// assembles the files into one time-sorted series, then reports the
// long-term sea-level trend, the longest unbroken run of valid readings,
// and the fitted amplitude and phase of the configured tidal constituents.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/coastwatch/tidegauge/internal/log"
	"github.com/coastwatch/tidegauge/pkg/analysis"
	"github.com/coastwatch/tidegauge/pkg/config"
	"github.com/coastwatch/tidegauge/pkg/gauge"
)

const dayLayout = "20060102"

func main() {
	cfgFile := flag.String("config", "", "Path to optional YAML analysis configuration")
	verbose := flag.Bool("v", false, "Print progress while reading files")
	year := flag.Int("year", 0, "Analyze a single calendar year, demeaned")
	from := flag.String("from", "", "Start date (YYYYMMDD) of a demeaned analysis window; requires -to")
	to := flag.String("to", "", "End date (YYYYMMDD), inclusive through 23:59:59; requires -from")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <directory>\n\nCalculate tidal constituents and sea-level rise from tide gauge data.\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	dir := flag.Arg(0)

	if err := log.Init(*verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg := config.Default()
	if *cfgFile != "" {
		var err error
		if cfg, err = config.Load(*cfgFile); err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	if err := analysis.ConstituentNames(cfg.Constituents); err != nil {
		log.Fatalf("Bad configuration: %v", err)
	}

	format := gauge.Format{
		HeaderLines: cfg.HeaderLines,
		FlagChars:   cfg.FlagChars,
		Extension:   cfg.Extension,
	}

	log.Debugf("reading gauge files from %s", dir)
	series, err := format.ReadDir(dir)
	if err != nil {
		log.Fatalf("Failed to assemble dataset: %v", err)
	}
	log.Debugf("assembled %d readings", series.Len())

	series, err = selectWindow(series, *year, *from, *to)
	if err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Printf("Tide Gauge Analysis: %s\n", dir)
	fmt.Printf("  Readings:  %d\n", series.Len())
	fmt.Printf("\nFirst readings:\n%s\n", series.Preview(5))

	report(series, cfg.Constituents)
}

// selectWindow applies the optional -year or -from/-to subset before
// analysis. Without either, the full series is analyzed as-is.
func selectWindow(series gauge.Series, year int, from, to string) (gauge.Series, error) {
	switch {
	case year != 0 && from != "":
		return nil, errors.New("-year and -from/-to are mutually exclusive")
	case year != 0:
		return gauge.ExtractYear(series, year), nil
	case from != "" || to != "":
		if from == "" || to == "" {
			return nil, errors.New("-from and -to must be given together")
		}
		start, err := time.Parse(dayLayout, from)
		if err != nil {
			return nil, fmt.Errorf("bad -from date %q: %w", from, err)
		}
		end, err := time.Parse(dayLayout, to)
		if err != nil {
			return nil, fmt.Errorf("bad -to date %q: %w", to, err)
		}
		return gauge.ExtractRange(series, start, end), nil
	}
	return series, nil
}

func report(series gauge.Series, constituents []string) {
	trend, err := analysis.SeaLevelTrend(series)
	if err != nil {
		log.Fatalf("Sea-level trend failed: %v", err)
	}
	fmt.Printf("Sea-level rise:\n")
	fmt.Printf("  Slope:     %.6e m/day (%.3f mm/year)\n", trend.Slope, trend.Slope*1000*365.25)
	fmt.Printf("  p-value:   %.4g\n\n", trend.PValue)

	run, err := gauge.LongestContiguous(series)
	switch {
	case errors.Is(err, gauge.ErrNoValidData):
		fmt.Printf("Longest contiguous period: no valid data in series\n\n")
	case err != nil:
		log.Fatalf("Contiguity search failed: %v", err)
	default:
		fmt.Printf("Longest contiguous period:\n")
		fmt.Printf("  From:      %s\n", run.From.Format("2006-01-02 15:04:05"))
		fmt.Printf("  To:        %s\n", run.To.Format("2006-01-02 15:04:05"))
		fmt.Printf("  Readings:  %d\n\n", run.Length)
	}

	valid := series.DropMissing()
	if len(valid) == 0 {
		return
	}
	fitted, err := analysis.Harmonics(series, constituents, valid[0].Time)
	if err != nil {
		log.Fatalf("Harmonic analysis failed: %v", err)
	}
	fmt.Printf("Tidal constituents (relative to %s):\n", valid[0].Time.Format("2006-01-02 15:04:05"))
	for _, c := range fitted {
		fmt.Printf("  %-3s amplitude %.4f m, phase %7.2f°\n", c.Name, c.Amplitude, c.Phase)
	}
}
