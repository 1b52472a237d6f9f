package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/olekukonko/tablewriter"

	"lending-rate-lab/internal/backtest"
	"lending-rate-lab/internal/config"
	"lending-rate-lab/internal/event"
	"lending-rate-lab/internal/execution"
	"lending-rate-lab/internal/portfolio"
	"lending-rate-lab/internal/ratefeed"
	"lending-rate-lab/internal/reporting"
	"lending-rate-lab/internal/strategy"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to YAML configuration")
	strategyName := flag.String("strategy", "buy_and_hold", "Strategy: buy_and_hold")
	writeCSV := flag.Bool("csv", false, "Write equity curve CSV to the report directory")
	writeXLSX := flag.Bool("xlsx", true, "Write XLSX report with equity-curve chart")
	outputJSON := flag.Bool("json", false, "Print summary stats as JSON")

	flag.Parse()

	logger := log.New(os.Stderr, "[backtest] ", log.LstdFlags)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	strat := buildStrategy(*strategyName)
	if strat == nil {
		logger.Fatalf("Invalid strategy: %s. Must be buy_and_hold", *strategyName)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Printf("Received signal %v, shutting down...", sig)
		cancel()
	}()

	queue := event.NewQueue()

	feed, err := ratefeed.NewHistoricCSVFeed(ratefeed.Options{
		Queue:             queue,
		CSVDir:            cfg.Backtest.CSVDir,
		Tokens:            cfg.Backtest.Tokens,
		Start:             cfg.StartTime(),
		End:               cfg.EndTime(),
		InterpolationFreq: cfg.InterpolationFreq(),
		BacktestFreq:      cfg.BacktestFreq(),
		LiquidStaking:     cfg.LiquidStakingSet(),
	})
	if err != nil {
		logger.Fatalf("build rate feed: %v", err)
	}

	port := portfolio.New(portfolio.Options{
		Feed:           feed,
		Queue:          queue,
		StartDate:      cfg.StartTime(),
		InitialCapital: cfg.Backtest.InitialCapital,
		Allocation:     cfg.Backtest.Allocation,
	})

	executor := execution.NewSimulated(queue, cfg.Backtest.FeePerFill)

	runner := backtest.NewRunner(feed, queue, port, strat, executor)

	logger.Printf("Running backtest: tokens=%v strategy=%s", cfg.Backtest.Tokens, strat.Name())

	results, err := runner.Run(ctx)
	if err != nil {
		logger.Fatalf("backtest failed: %v", err)
	}

	barsPerYear := float64(365 * 24 * time.Hour / cfg.BacktestFreq())
	stats := reporting.Summarize(results.EquityCurve, barsPerYear)

	if *outputJSON {
		output, _ := json.MarshalIndent(stats, "", "  ")
		fmt.Println(string(output))
	} else {
		printSummary(results, stats)
	}

	if *writeCSV || *writeXLSX {
		if err := os.MkdirAll(cfg.Report.OutputDir, 0o755); err != nil {
			logger.Fatalf("create report dir: %v", err)
		}
	}
	if *writeCSV {
		path := filepath.Join(cfg.Report.OutputDir, cfg.Report.Title+".csv")
		csv := reporting.RenderCSV(results.EquityCurve, cfg.Backtest.Tokens)
		if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
			logger.Fatalf("write csv report: %v", err)
		}
		logger.Printf("Wrote %s", path)
	}
	if *writeXLSX {
		path := filepath.Join(cfg.Report.OutputDir, cfg.Report.Title+".xlsx")
		if err := reporting.WriteXLSX(path, results.EquityCurve, cfg.Backtest.Tokens, stats); err != nil {
			logger.Fatalf("write xlsx report: %v", err)
		}
		logger.Printf("Wrote %s", path)
	}
}

// buildStrategy maps a strategy name to an implementation.
func buildStrategy(name string) strategy.Strategy {
	switch name {
	case "buy_and_hold":
		return strategy.NewBuyAndHold()
	default:
		return nil
	}
}

// printSummary outputs a human-readable run summary.
func printSummary(results *backtest.Results, stats reporting.SummaryStats) {
	fmt.Println()
	fmt.Println("=== Backtest Result ===")
	fmt.Printf("Strategy:  %s\n", results.StrategyName)
	fmt.Printf("Bars:      %d\n", results.Bars)
	fmt.Printf("Signals:   %d  Orders: %d  Fills: %d\n", results.Signals, results.Orders, results.Fills)
	fmt.Println()

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Metric", "Value")
	table.Append("Total Return", fmt.Sprintf("%.4f%%", stats.TotalReturn*100))
	table.Append("Annualized Return", fmt.Sprintf("%.4f%%", stats.AnnualizedReturn*100))
	table.Append("Annualized Volatility", fmt.Sprintf("%.4f%%", stats.AnnualizedVolatility*100))
	table.Append("Sharpe Ratio", fmt.Sprintf("%.4f", stats.SharpeRatio))
	table.Append("Max Drawdown", fmt.Sprintf("%.4f%%", stats.MaxDrawdown*100))
	table.Render()
}
