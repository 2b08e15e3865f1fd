package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"startupsim/adapters/api"
	"startupsim/adapters/excel"
	"startupsim/adapters/memory"
	"startupsim/adapters/render"
	"startupsim/adapters/rng"
	"startupsim/app"
	domainfinance "startupsim/domain/finance"
	"startupsim/internal/finance"
	"startupsim/internal/logger"
	"startupsim/internal/persona"
	"startupsim/internal/sampling"
	"startupsim/internal/simulation"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "startupsim-cli",
		Short: "Startup simulation CLI for running simulations offline",
	}

	var logLevel string
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "ERROR", "Log level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// stdout carries the reports, so logs go to stderr
		level, err := logger.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		l, err := logger.New(os.Stderr, level, logger.FormatText)
		if err != nil {
			return err
		}
		logger.Logger = l
		return nil
	}

	rootCmd.AddCommand(
		newSimulateCmd(),
		newPersonasCmd(),
		newProjectCmd(),
		newBatchCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newSimulateCmd() *cobra.Command {
	var seed int64
	var personaCount int
	var months int
	var out string
	var format string
	var xlsxPath string

	cmd := &cobra.Command{
		Use:   "simulate [business-model.json]",
		Short: "Run a full simulation for a business model",
		Long: `Run persona generation, interviews, hypothesis validation and the
financial projection for one business model. Reads stdin when no file is given.

Example: startupsim-cli simulate model.json --seed 42 --format markdown`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(args)
			if err != nil {
				return err
			}
			return runSimulate(cmd.Context(), raw, simulateFlags{
				seed:         seed,
				personaCount: personaCount,
				months:       months,
				out:          out,
				format:       format,
				xlsxPath:     xlsxPath,
			})
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 uses the document's seed or a fresh one)")
	cmd.Flags().IntVar(&personaCount, "personas", simulation.DefaultPersonaCount, "Number of personas to generate")
	cmd.Flags().IntVar(&months, "months", finance.DefaultMonths, "Projection horizon in months")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the report to this file instead of stdout")
	cmd.Flags().StringVar(&format, "format", "json", "Output format (json, markdown)")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also export the report as an xlsx workbook")

	return cmd
}

type simulateFlags struct {
	seed         int64
	personaCount int
	months       int
	out          string
	format       string
	xlsxPath     string
}

func runSimulate(ctx context.Context, raw []byte, flags simulateFlags) error {
	bm, err := api.ParseBusinessModel(raw)
	if err != nil {
		return err
	}

	seed := flags.seed
	if seed == 0 {
		seed = bm.Seed
	}
	if seed == 0 {
		if seed, err = rng.NewAdapter().NewSeed(); err != nil {
			return fmt.Errorf("failed to draw a seed: %w", err)
		}
	}

	report, err := simulation.RunFullSimulation(ctx, bm, simulation.Options{
		PersonaCount: flags.personaCount,
		Months:       flags.months,
		Seed:         seed,
		Logger:       logger.Logger,
	})
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	if flags.xlsxPath != "" {
		data, err := excel.NewReportExporter().Export(report)
		if err != nil {
			return err
		}
		if err := os.WriteFile(flags.xlsxPath, data, 0o644); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
	}

	w, closeOut, err := openOutput(flags.out)
	if err != nil {
		return err
	}
	defer closeOut()

	switch flags.format {
	case "json":
		return writeJSON(w, report)
	case "markdown", "md":
		_, err := io.WriteString(w, render.SummaryMarkdown(report))
		return err
	default:
		return fmt.Errorf("unknown format %q (use json or markdown)", flags.format)
	}
}

func newPersonasCmd() *cobra.Command {
	var seed int64
	var count int

	cmd := &cobra.Command{
		Use:   "personas",
		Short: "Generate customer personas without interviewing them",
		RunE: func(cmd *cobra.Command, args []string) error {
			gen := persona.NewGenerator(sampling.NewSampler(simulation.NewSource(seed)), logger.Logger)
			personas, err := gen.Generate(count)
			if err != nil {
				return err
			}
			return writeJSON(os.Stdout, personas)
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 42, "Random seed for deterministic generation")
	cmd.Flags().IntVar(&count, "count", simulation.DefaultPersonaCount, "Number of personas")

	return cmd
}

func newProjectCmd() *cobra.Command {
	var months int

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Print the financial projection with default assumptions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if months <= 0 || months > app.MaxProjectionMonths {
				return fmt.Errorf("months must be between 1 and %d", app.MaxProjectionMonths)
			}
			proj := finance.Project(domainfinance.DefaultAssumptions(), months)

			fmt.Printf("%-8s %10s %12s %14s %16s\n", "MONTH", "USERS", "PAYING", "PROFIT", "CUMULATIVE")
			for _, m := range proj.Months {
				fmt.Printf("%-8s %10d %12d %14d %16d\n", m.Month, m.Users, m.PayingUsers, m.Profit, m.CumulativeProfit)
			}
			fmt.Println()
			if proj.Metrics.BreakEvenMonth != nil {
				fmt.Printf("Break-even month: %d\n", *proj.Metrics.BreakEvenMonth)
			} else {
				fmt.Printf("Break-even month: not reached\n")
			}
			fmt.Printf("ROI: %.2f%%  CAC: %.0f  LTV: %.0f\n", proj.Metrics.ROI, proj.Metrics.CAC, proj.Metrics.LTV)
			return nil
		},
	}

	cmd.Flags().IntVar(&months, "months", finance.DefaultMonths, "Projection horizon in months")

	return cmd
}

func newBatchCmd() *cobra.Command {
	var runs int
	var concurrency int
	var seed int64

	cmd := &cobra.Command{
		Use:   "batch [business-model.json]",
		Short: "Run several seeded simulations and compare their verdicts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(args)
			if err != nil {
				return err
			}

			settings := app.DefaultSimulationSettings()
			settings.BatchConcurrency = concurrency
			settings.Seed = seed
			svc := app.NewSimulationService(memory.NewReportRepository(), rng.NewAdapter(),
				excel.NewReportExporter(), render.NewHTMLRenderer(), settings, logger.Logger)

			reports, err := svc.RunBatch(cmd.Context(), raw, runs)
			if err != nil {
				return err
			}

			fmt.Printf("%-4s %-20s %10s %12s %8s\n", "RUN", "SEED", "VALIDATED", "INVALIDATED", "PARTIAL")
			for i, r := range reports {
				fmt.Printf("%-4d %-20d %10d %12d %8d\n", i+1, r.Seed,
					r.Summary.ValidatedHypotheses, r.Summary.InvalidatedHypotheses, r.Summary.PartialHypotheses)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&runs, "runs", 5, "Number of simulations")
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "Simulations run in parallel")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Base seed used when the document has none")

	return cmd
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return data, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
