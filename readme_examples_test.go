package estado_test

import (
	"context"
	"fmt"
	"log"

	"github.com/tsawler/estado"
	"github.com/tsawler/estado/grid"
	"github.com/tsawler/estado/ingest"
	"github.com/tsawler/estado/model"
	"github.com/tsawler/estado/pipeline"
	"github.com/tsawler/estado/profile"
)

// These examples verify the README code samples compile correctly.
// They are not meant to be run as actual tests since they require files.

func Example_extractSummary() {
	// Works with OCR JSON and hOCR files
	record, warnings, err := estado.FromOCRFile("statement.json").Summary()
	// record, warnings, err := estado.FromHOCRFile("statement.html").Summary()
	if err != nil {
		log.Fatal(err)
	}

	for _, key := range record.Keys() {
		value, _ := record.Get(key)
		fmt.Println(key, value)
	}

	for _, w := range warnings {
		fmt.Println("Warning:", w.Message)
	}
}

func Example_mergeTransactions() {
	merged, warnings, err := estado.FromOCRFile("statement.json").
		WithGridFile("movements.json"). // Externally extracted transaction grid
		Merged()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Account:", merged.Metadata.AccountNumber)
	fmt.Println("Groups:", merged.StructuredData.AccountSummary.Keys())

	// Warnings are non-fatal issues
	for _, w := range warnings {
		fmt.Println("Warning:", w.Message)
	}
}

func Example_extractWithOptions() {
	record, warnings, err := estado.FromOCRFile("statement.json").
		WithPages(1, 2).                // Specific pages (1-indexed)
		WithProfile(profile.Default()). // Pin the bank profile
		Summary()
	_ = record
	_ = warnings
	_ = err
}

func Example_profileDetection() {
	// Load candidate profiles and let each document pick its own
	profiles, err := profile.LoadFile("banks.yaml")
	if err != nil {
		log.Fatal(err)
	}

	record, _, err := estado.FromOCRFile("statement.json").
		WithProfiles(profiles...).
		Summary()
	_ = record
	_ = err
}

func Example_inputSources() {
	// From file path (format auto-detected from content and extension)
	ext := estado.Open("statement.json")
	_ = ext

	// From an OCR JSON file
	ext = estado.FromOCRFile("statement.json")
	_ = ext

	// From a Tesseract hOCR file
	ext = estado.FromHOCRFile("statement.html")
	_ = ext

	// From raw text (no layout information)
	ext = estado.FromText("Saldo Anterior 12,383.20")
	_ = ext

	// From a document built elsewhere
	doc, _ := ingest.FromJSONFile("statement.json")
	ext = estado.FromDocument(doc)
	_ = ext
}

func Example_transactionGrids() {
	// Load and inspect a grid before merging
	g, warnings, err := grid.LoadFile("movements.json")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Rows:", g.RowCount())
	_ = warnings

	merged, _, err := estado.FromOCRFile("statement.json").
		WithGrid(g).
		Merged()
	_ = merged
	_ = err
}

func Example_warnings() {
	merged, warnings, err := estado.FromOCRFile("statement.json").Merged()
	if err != nil {
		log.Fatal(err) // Fatal error
	}
	_ = merged

	for _, w := range warnings {
		log.Println("Warning:", w.Message) // Non-fatal issues
	}

	// Format all warnings
	formatted := estado.FormatWarnings(warnings)
	_ = formatted
}

func Example_errorHandling() {
	// Panic on error (for scripts/tests)
	merged := estado.MustMerged(estado.FromOCRFile("statement.json").Merged())
	count := estado.Must(estado.FromOCRFile("statement.json").PageCount())
	_ = merged
	_ = count
}

func Example_batchProcessing() {
	doc, err := ingest.FromJSONFile("statement.json")
	if err != nil {
		log.Fatal(err)
	}
	g, _, err := grid.LoadFile("movements.json")
	if err != nil {
		log.Fatal(err)
	}

	runner := pipeline.NewRunner()
	results := runner.Run(context.Background(), []pipeline.Job{
		{Name: "january", Document: doc, Grid: g},
	})

	for _, res := range results {
		if res.Err != nil {
			log.Println(res.Name, "failed:", res.Err)
			continue
		}
		fmt.Println(res.Name, res.Document.Metadata.AccountNumber)
	}
}

func Example_metadata() {
	merged, _, err := estado.FromOCRFile("statement.json").Merged()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Bank:", merged.Metadata.Bank)
	fmt.Println("Account:", merged.Metadata.AccountNumber)
	fmt.Println("Pages:", merged.Metadata.TotalPages)
	if merged.Metadata.Period != nil {
		fmt.Println("Period:", merged.Metadata.Period.Start, "-", merged.Metadata.Period.End)
	}
}

func Example_summaryGroups() {
	record, _, err := estado.FromOCRFile("statement.json").Summary()
	if err != nil {
		log.Fatal(err)
	}

	// Groups keep the statement's reading order
	if balance, ok := record.Get(model.GroupInitialBalance); ok {
		fmt.Println("Initial balance:", balance)
	}
	if behavior, ok := record.Get(model.GroupBehavior); ok {
		fmt.Println("Behavior:", behavior)
	}
}
