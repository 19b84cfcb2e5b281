package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/spendscope/spendscope/internal"
)

type Params struct {
	File     string `descr:"Path to the statement file; '-' reads an upload from stdin, a 'delimited:'/'xlsx:' prefix overrides format detection" positional:"true" optional:"true"`
	Output   string `descr:"Output format" alts:"table,json" strict:"true" optional:"true"`
	Currency string `descr:"Currency code for amount formatting, e.g. USD or EUR" optional:"true"`
	Preview  int    `descr:"Number of processed rows to preview (0 uses the config value)" optional:"true"`
	Config   string `descr:"Path to the config file" optional:"true"`
}

func main() {
	boa.NewCmdT[Params]("spendscope").
		WithShort("Analyze bank statement spending by category").
		WithLong("Loads a bank statement export (CSV/TSV/XLSX), classifies every transaction into a spending category by keyword, and reports category totals, the spending distribution, and month-over-month changes.").
		WithRunFunc(func(params *Params) {
			os.Exit(run(params, os.Stdin, os.Stdout))
		}).
		Run()
}

func run(params *Params, stdin io.Reader, stdout io.Writer) int {
	configPath := params.Config
	if configPath == "" {
		configPath = internal.DefaultConfigPath()
	}
	cfg, err := internal.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return 1
	}

	// Flags override the config file, which overrides built-in defaults.
	if params.Output != "" {
		cfg.Output = params.Output
	}
	if params.Currency != "" {
		cfg.Currency = params.Currency
	}
	if params.Preview > 0 {
		cfg.PreviewRows = params.Preview
	}

	var presenter internal.Presenter
	var jsonOut *internal.JSONPresenter
	if cfg.Output == "json" {
		jsonOut = internal.NewJSONPresenter()
		presenter = jsonOut
	} else {
		term := internal.NewTerminalPresenter(stdout, internal.GetCurrency(cfg.Currency))
		if cfg.ChartWidth > 0 {
			term.ChartWidth = cfg.ChartWidth
		}
		presenter = term
	}

	path := params.File
	var upload io.ReadSeeker
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			return 1
		}
		path = ""
		upload = bytes.NewReader(data)
	}

	loader := internal.NewLoader(internal.NewCategorizer(nil), presenter)
	txs, err := loader.Load(path, upload)
	code := 0
	switch {
	case errors.Is(err, internal.ErrNoInput):
		// Nothing to analyze; the loader already said so.
	case err != nil:
		code = 1
	default:
		internal.Analyze(txs, presenter, internal.AnalyzeOptions{PreviewRows: cfg.PreviewRows})
	}

	if jsonOut != nil {
		if err := jsonOut.Render(stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering JSON report: %v\n", err)
			return 1
		}
	}
	return code
}
