package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/uinames/names-contract-tests/framework"
	"github.com/uinames/names-contract-tests/namestests"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}
	cfg := params.config

	mainDebugLogger := framework.NullLogger()
	if cfg.DebugAll {
		mainDebugLogger = framework.WriterLogger(os.Stdout, "")
	}

	harness, err := framework.NewTestHarness(
		cfg.ServiceURL,
		&http.Client{Timeout: cfg.RequestTimeout},
		cfg.StartupTimeout,
		mainDebugLogger,
		os.Stdout,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Service error: %s\n", err)
		os.Exit(1)
	}

	fmt.Println()
	framework.PrintFilterDescription(os.Stdout, params.filters, cfg.StrictChecks)

	fmt.Println("Running test suite")

	testLogger := &ConsoleTestLogger{
		DebugOutputOnFailure: cfg.Debug || cfg.DebugAll,
		DebugOutputOnSuccess: cfg.DebugAll,
	}

	results := namestests.RunTestSuite(
		harness,
		namestests.Options{StrictChecks: cfg.StrictChecks},
		params.filters.AsFilter,
		testLogger,
	)

	fmt.Println()
	framework.PrintResults(os.Stdout, results)
	if !results.OK() {
		fmt.Println()
		fmt.Println("To run only the failed tests again:")
		fmt.Printf("  %s\n", params.rerunCommand(os.Args[0], results.Failures))
		os.Exit(1)
	}
}
