package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lifeplan/cashflow/internal/calculation"
	"github.com/lifeplan/cashflow/internal/config"
	"github.com/lifeplan/cashflow/internal/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "lifeplan",
		Short:        "Project household cash flow and net worth year by year",
		SilenceUsage: true,
	}
	root.AddCommand(newProjectCmd(), newValidateCmd(), newExampleCmd())
	return root
}

func newProjectCmd() *cobra.Command {
	var (
		configFile string
		format     string
		outputFile string
		nowFlag    string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Run a cash-flow projection for a household snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := config.LoadRuntime()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") {
				format = rt.Format
			}
			debug = debug || rt.Debug

			formatter, err := output.ResolveFormatter(format)
			if err != nil {
				return err
			}

			household, err := config.NewInputParser().LoadFromFile(configFile)
			if err != nil {
				return err
			}

			logger := calculation.NewWriterLogger(cmd.ErrOrStderr(), debug)
			for _, w := range config.Lint(household) {
				logger.Warnf("%s", w)
			}

			engine := calculation.NewProjectionEngine()
			engine.Debug = debug
			engine.SetLogger(logger)
			switch {
			case nowFlag != "":
				now, err := time.Parse("2006-01-02", nowFlag)
				if err != nil {
					return fmt.Errorf("invalid --now date %q: %w", nowFlag, err)
				}
				engine.SetClock(calculation.FixedClock(now))
			case rt.Now != nil:
				engine.SetClock(calculation.FixedClock(*rt.Now))
			}

			result := engine.Run(household)
			if result.IsEmpty() {
				logger.Warnf("projection produced no records")
			}

			if outputFile != "" {
				if err := output.WriteFormatted(formatter, result, outputFile); err != nil {
					return err
				}
				logger.Infof("%s report written to %s", formatter.Name(), outputFile)
				return nil
			}
			return output.GenerateReport(cmd.OutOrStdout(), result, formatter.Name())
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "household snapshot YAML file")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (console, csv, detailed-csv, json)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "write the report to this file instead of stdout")
	cmd.Flags().StringVar(&nowFlag, "now", "", "treat this YYYY-MM-DD date as today")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func newValidateCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a household snapshot and report inconsistencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			household, err := config.NewInputParser().LoadFromFile(configFile)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			warnings := config.Lint(household)
			for _, w := range warnings {
				fmt.Fprintf(out, "warning: %s\n", w)
			}
			fmt.Fprintf(out, "%s is valid (%d warnings)\n", configFile, len(warnings))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "household snapshot YAML file")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func newExampleCmd() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example household snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			household := config.CreateExampleHousehold()
			if outputFile == "-" {
				b, err := yaml.Marshal(household)
				if err != nil {
					return fmt.Errorf("failed to encode household: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(b)
				return err
			}
			if err := config.SaveHousehold(household, outputFile); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example household written to %s\n", outputFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "example_household.yaml", "destination file, or - for stdout")
	return cmd
}
