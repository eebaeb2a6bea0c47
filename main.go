package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/admpub/log"
	"github.com/admpub/pp"
	"github.com/spf13/pflag"

	"github.com/admpub/product-analyzer/internal/server"
	"github.com/admpub/product-analyzer/pkg/analyze"
	"github.com/admpub/product-analyzer/pkg/chart"
	"github.com/admpub/product-analyzer/pkg/config"

	_ "github.com/admpub/product-analyzer/pkg/storage/duckdb"
	_ "github.com/admpub/product-analyzer/pkg/storage/sqlite"
)

// CGO_ENABLED=1 go run . -c config/config.json5 --csv ./products.csv --storage duckdb://./data/

func main() {
	configPath := pflag.StringP(`config`, `c`, ``, `path to the JSON5 config file`)
	envFile := pflag.String(`env-file`, `.env`, `dotenv file to load before reading the config`)
	csvPath := pflag.String(`csv`, ``, `product CSV file (overrides csv_data_path)`)
	storageURL := pflag.StringP(`storage`, `s`, ``, `storage URL: memory://, duckdb://path or sqlite://path`)
	listen := pflag.StringP(`listen`, `l`, ``, `address to listen on`)
	printStats := pflag.BoolP(`print`, `p`, false, `print the statistics and chart config, then exit`)
	pflag.Parse()

	if err := config.LoadDotEnv(*envFile); err != nil {
		log.Fatalf(`%v`, err)
	}
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf(`failed to load config from %q: %v`, *configPath, err)
	}
	if len(*csvPath) > 0 {
		cfg.CSVDataPath = *csvPath
	}
	if len(*storageURL) > 0 {
		cfg.Storage = *storageURL
	}
	if len(*listen) > 0 {
		cfg.Listen = *listen
	}
	log.Debugf(`config: env=%s storage=%s csv=%s`, cfg.Env, cfg.Storage, cfg.CSVDataPath)
	defer cfg.Close()

	if *printStats {
		if err := printReport(cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := server.Start(ctx, cfg); err != nil {
		log.Errorf(`server stopped: %v`, err)
	}
}

func printReport(cfg *config.Config) error {
	em, err := cfg.Storager()
	if err != nil {
		return err
	}
	report, err := analyze.Analyze(em)
	if err != nil {
		return err
	}
	chartConfig, err := chart.Build(analyze.BarInput(report.Products))
	if err != nil {
		return err
	}
	pp.Println(report.Stats)
	pp.Println(chartConfig)
	return nil
}
