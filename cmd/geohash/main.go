package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"

	"github.com/jgrady/xkcd-geohash/internal/config"
	"github.com/jgrady/xkcd-geohash/internal/djia"
	"github.com/jgrady/xkcd-geohash/internal/geohash"
	"github.com/jgrady/xkcd-geohash/internal/version"
)

func main() {
	var (
		configPath  = flag.String("config", "", "path to config file (optional)")
		dateStr     = flag.String("date", "", "geohash date in YYYY-MM-DD format (default: today)")
		djiaValue   = flag.String("djia", "", "Dow Jones value with two decimal places; fetched from the mirrors when empty")
		zoneStr     = flag.String("30w", "", "override automatic 30W detection: e, w, east or west")
		global      = flag.Bool("global", false, "calculate the globalhash instead; latitude and longitude are ignored")
		centicule   = flag.Bool("centicule", false, "calculate the centicule instead")
		simple      = flag.Bool("simple", false, "only print latitude and longitude, separated by a newline")
		verbose     = flag.Bool("v", false, "enable debug logging")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadAndValidate(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to load config:", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.Logging.Level, *verbose),
	}))
	slog.SetDefault(logger)

	opts := geohash.Options{Index: *djiaValue}

	if *dateStr != "" {
		date, err := civil.ParseDate(*dateStr)
		if err != nil {
			fmt.Fprintln(os.Stderr, "the date provided was not in YYYY-MM-DD format")
			os.Exit(1)
		}
		opts.Date = date
	}

	switch *zoneStr {
	case "":
	case "e", "east":
		opts.Zone = geohash.ZoneEast
	case "w", "west":
		opts.Zone = geohash.ZoneWest
	default:
		fmt.Fprintf(os.Stderr, "invalid -30w value %q: use e, w, east or west\n", *zoneStr)
		os.Exit(1)
	}

	client := djia.NewClient(
		djia.WithSources(cfg.Sources.URLs),
		djia.WithTimeout(cfg.Sources.Timeout.Std()),
		djia.WithLogger(logger),
	)
	engine := geohash.New(client, geohash.WithLogger(logger))

	ctx := context.Background()

	var (
		coord geohash.Coordinate
		err   error
	)
	if *global {
		if *centicule {
			fmt.Fprintln(os.Stderr, "-centicule requires latitude and longitude; it cannot be combined with -global")
			os.Exit(1)
		}
		coord, err = engine.Globalhash(ctx, opts)
	} else {
		lat, lon, ok := positionArgs(flag.Args())
		if !ok {
			fmt.Fprintln(os.Stderr, "latitude and longitude are required unless -global is set")
			os.Exit(1)
		}
		coord, err = engine.Geohash(ctx, lat, lon, opts)
		if err == nil && *centicule {
			coord = geohash.AdjustCenticule(coord, geohash.Coordinate{Lat: lat, Lon: lon})
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	lat := coordText(coord.Lat)
	lon := coordText(coord.Lon)

	if *simple {
		fmt.Println(lat)
		fmt.Println(lon)
		return
	}

	printReport(lat, lon)
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(),
		"Calculate geohashes as defined by Randall Munroe in xkcd #426.\n\n"+
			"Usage: %s [flags] latitude longitude\n\n", os.Args[0])
	flag.PrintDefaults()
}

// positionArgs parses the two positional coordinate arguments.
func positionArgs(args []string) (lat, lon float64, ok bool) {
	if len(args) < 2 {
		return 0, 0, false
	}
	lat, errLat := strconv.ParseFloat(args[0], 64)
	lon, errLon := strconv.ParseFloat(args[1], 64)
	if errLat != nil || errLon != nil {
		return 0, 0, false
	}
	return lat, lon, true
}

// coordText renders a coordinate with shortest round-trip formatting, the
// same conversion the decoder uses internally.
func coordText(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// printReport writes the aligned coordinate report with map links.
func printReport(lat, lon string) {
	fmt.Println("Latitude: " + pad(lat))
	fmt.Println("Longitude:" + pad(lon))
	fmt.Println()
	fmt.Println("Google Maps:")
	fmt.Println("\thttps://www.google.com/maps/search/?api=1&query=" + lat + "," + lon)
	fmt.Println("OpenStreetMap:")
	fmt.Println("\thttps://www.openstreetmap.org/?mlat=" + lat + "&mlon=" + lon + "&zoom=10")
}

// pad keeps the digits of positive and negative values in the same
// column.
func pad(s string) string {
	if strings.HasPrefix(s, "-") {
		return " " + s
	}
	return "  " + s
}

func logLevel(level string, verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
