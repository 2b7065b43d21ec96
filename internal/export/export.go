// Package export writes report and review data to CSV files so the results
// of admin queries can be handed to spreadsheets and downstream tooling.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"parsectl/internal/logging"
	"parsectl/internal/models"
)

// Options controls CSV rendering. Zero value means comma-delimited with a
// header row.
type Options struct {
	Delimiter      rune
	IncludeHeaders bool
}

// DefaultOptions returns the rendering defaults.
func DefaultOptions() Options {
	return Options{Delimiter: ',', IncludeHeaders: true}
}

var log logging.Logger = logging.NewLogrusAdapter("info", "text")

// SetLogger sets a configured logger for this package.
func SetLogger(logger logging.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// WriteCategoryChanges writes category change report entries to a CSV file.
func WriteCategoryChanges(entries []models.CategoryChangeEntry, csvFile string, opts Options) error {
	if entries == nil {
		return fmt.Errorf("cannot write nil category changes to CSV")
	}
	return writeCSV(entries, csvFile, opts)
}

// WriteMerchantDuplicates writes merchant duplicate pairs to a CSV file.
func WriteMerchantDuplicates(duplicates []models.MerchantDuplicate, csvFile string, opts Options) error {
	if duplicates == nil {
		return fmt.Errorf("cannot write nil merchant duplicates to CSV")
	}
	return writeCSV(duplicates, csvFile, opts)
}

// writeCSV marshals rows to csvFile, creating parent directories as needed.
func writeCSV[TRow any](rows []TRow, csvFile string, opts Options) error {
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}

	log.WithFields(
		logging.Field{Key: "file", Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
	).Info("Writing CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.OpenFile(csvFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, models.PermissionReportFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = opts.Delimiter
	safeWriter := gocsv.NewSafeCSVWriter(csvWriter)

	if opts.IncludeHeaders {
		err = gocsv.MarshalCSV(&rows, safeWriter)
	} else {
		err = gocsv.MarshalCSVWithoutHeaders(&rows, safeWriter)
	}
	if err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.WithFields(
		logging.Field{Key: "file", Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
	).Info("Successfully wrote CSV file")
	return nil
}
