// seed-lifecycle generates the full synthetic asset lifecycle dataset and
// writes it to the configured sinks.
//
// Usage (from backend directory):
//   SEED=42 REFERENCE_DATE=2026-02-10 OUTPUT_DIR=./out go run ./cmd/seed-lifecycle
//
// CSV files are always written to OUTPUT_DIR; an XLSX workbook is written to
// EXCEL_PATH when set. Set DB_HOST (plus DB_USER/DB_PASSWORD/DB_PORT/DB_NAME)
// to additionally load the dataset into MySQL.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"bitbucket.org/mmdatafocus/assetseed_backend/config"
	"bitbucket.org/mmdatafocus/assetseed_backend/export"
	"bitbucket.org/mmdatafocus/assetseed_backend/models"
	"bitbucket.org/mmdatafocus/assetseed_backend/utils"
	"bitbucket.org/mmdatafocus/assetseed_backend/workflow"
)

func main() {
	log := config.GetLogger()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	res, err := workflow.RunSimulation(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "simulation failed: %v\n", err)
		os.Exit(1)
	}
	logStatusSummary(log, res)

	if err := export.WriteCSVDir(res, cfg.OutputDir); err != nil {
		fmt.Fprintf(os.Stderr, "csv export failed: %v\n", err)
		os.Exit(2)
	}
	log.WithField("dir", cfg.OutputDir).Info("csv export done")

	if cfg.ExcelPath != "" {
		meta := export.NewWorkbookMeta(cfg.Seed, utils.FormatDate(cfg.Today), cfg.Campus)
		if err := export.WriteWorkbook(res, meta, cfg.ExcelPath); err != nil {
			fmt.Fprintf(os.Stderr, "xlsx export failed: %v\n", err)
			os.Exit(2)
		}
		log.WithField("path", cfg.ExcelPath).Info("xlsx export done")
	}

	if config.DatabaseConfigured() {
		if err := config.ConnectDatabase(); err != nil {
			fmt.Fprintf(os.Stderr, "database connect failed: %v\n", err)
			os.Exit(2)
		}
		if err := export.LoadDatabase(config.GetDB(), res); err != nil {
			fmt.Fprintf(os.Stderr, "database load failed: %v\n", err)
			os.Exit(2)
		}
		log.Info("database load done")
	}
}

func logStatusSummary(log *logrus.Logger, res *workflow.Result) {
	byStatus := map[models.AssetStatus]int{}
	for _, u := range res.Units {
		byStatus[u.Status]++
	}
	log.WithFields(logrus.Fields{
		"operating": byStatus[models.AssetStatusOperating],
		"returned":  byStatus[models.AssetStatusReturned],
		"disused":   byStatus[models.AssetStatusDisused],
		"disposed":  byStatus[models.AssetStatusDisposed],
	}).Info("final asset status counts")
}
