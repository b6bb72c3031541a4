// Command tasacrecimiento fits linear, exponential, and logarithmic trends
// over annual traffic-volume measurements given on the command line or in a
// CSV file.
//
// Usage:
//
//	tasacrecimiento -year 2024 5200 5100 4950 4800 4650 4500
//	tasacrecimiento -csv volumes.csv
//
// Command-line volumes are newest year first.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Corona-68/tasaCrecimiento/internal/config"
	"github.com/Corona-68/tasaCrecimiento/internal/logger"
	"github.com/Corona-68/tasaCrecimiento/internal/store"
	"github.com/Corona-68/tasaCrecimiento/internal/store/sqlite"
	"github.com/Corona-68/tasaCrecimiento/regression"
	"github.com/Corona-68/tasaCrecimiento/timeseries"
)

var (
	configPath = flag.String("config", "", "Path to configuration file (optional)")
	anchorYear = flag.Int("year", 0, "Calendar year of the newest observation (default: config, then current year)")
	csvPath    = flag.String("csv", "", "Load observations from a CSV file with year and volume columns")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)

	year := *anchorYear
	if year == 0 {
		year = cfg.Analysis.AnchorYear
	}
	if year == 0 {
		year = time.Now().Year()
	}

	series, err := buildSeries(year, *csvPath, flag.Args())
	if err != nil {
		logger.Fatal("Failed to build series: %v", err)
	}
	if series.Len() == 0 {
		fmt.Println("No valid observations in input.")
		return
	}
	logger.Debug("Built series with %d observations, anchor year %d", series.Len(), year)

	results := regression.FitAll(series)

	printSeries(series)
	printResults(results)

	if cfg.Storage.Enabled {
		if err := persistRun(cfg.Storage.Path, year, series, results); err != nil {
			logger.Error("Failed to persist run: %v", err)
			os.Exit(1)
		}
	}
}

func buildSeries(year int, csvPath string, args []string) (timeseries.Series, error) {
	if csvPath != "" {
		return timeseries.LoadCSV(csvPath, nil)
	}
	return timeseries.Parse(year, strings.Join(args, " ")), nil
}

func printSeries(series timeseries.Series) {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Observations")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("%-8s %14s %14s\n", "Year", "Volume", "Growth %")
	for _, obs := range series {
		fmt.Printf("%-8d %14.2f %14.2f\n", obs.Year, obs.Volume, obs.GrowthRate)
	}
}

func printResults(results []regression.Result) {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Trend models")
	fmt.Println(strings.Repeat("=", 60))
	for _, res := range results {
		fmt.Printf("%-12s %s\n", res.Model, res.Formula)
		if !res.OK {
			fmt.Printf("%-12s could not fit: %s\n", "", res.Reason)
			continue
		}
		fmt.Printf("%-12s R² = %.4f, annualized growth = %.2f%%\n", "", res.RSquared, res.GrowthRate)
	}
}

func persistRun(path string, year int, series timeseries.Series, results []regression.Result) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	db, err := sqlite.New(path)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close store: %v", err)
		}
	}()

	run := store.NewRun(year, series, results)
	if err := db.SaveRun(context.Background(), run); err != nil {
		return err
	}
	logger.Info("Saved run %s (%d observations)", run.ID, series.Len())
	return nil
}
