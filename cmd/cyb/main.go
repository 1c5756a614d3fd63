package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seuros/cypher-dsl/src/telemetry"
)

var (
	configPath  string
	enableTrace bool
)

func main() {
	root := &cobra.Command{
		Use:           "cyb",
		Short:         "Build, format and inspect read-only Cypher statements",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML render options file")
	root.PersistentFlags().BoolVar(&enableTrace, "trace", false, "emit OpenTelemetry spans and metrics to stdout")

	root.AddCommand(fmtCmd(), lintCmd(), inspectCmd(), demoCmd(), versionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newSession() (*telemetry.Session, func(), error) {
	shutdown := func() {}
	if enableTrace {
		var err error
		shutdown, err = installStdoutExporters()
		if err != nil {
			return nil, nil, err
		}
	}

	opts, err := loadRenderOptions(configPath)
	if err != nil {
		shutdown()
		return nil, nil, err
	}

	cfg := telemetry.DefaultConfig()
	cfg.EnableTracing = enableTrace
	cfg.EnableMetrics = enableTrace
	s, err := telemetry.NewSessionWithOptions(cfg, opts)
	if err != nil {
		shutdown()
		return nil, nil, err
	}
	return s, shutdown, nil
}

func readSource(arg string) (string, error) {
	if arg == "-" {
		data, err := os.ReadFile("/dev/stdin")
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func fmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt <file|->",
		Short: "Rewrite a statement in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, shutdown, err := newSession()
			if err != nil {
				return err
			}
			defer shutdown()

			text, err := readSource(args[0])
			if err != nil {
				return err
			}
			out, err := s.Format(cmd.Context(), text)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func lintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint <file|->",
		Short: "Validate statement syntax and clause order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, shutdown, err := newSession()
			if err != nil {
				return err
			}
			defer shutdown()

			text, err := readSource(args[0])
			if err != nil {
				return err
			}
			if _, err := s.Parse(cmd.Context(), text); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", args[0])
			return nil
		},
	}
}

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file|->",
		Short: "Show the clause chain behind a statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, shutdown, err := newSession()
			if err != nil {
				return err
			}
			defer shutdown()

			text, err := readSource(args[0])
			if err != nil {
				return err
			}
			q, err := s.Parse(cmd.Context(), text)
			if err != nil {
				return err
			}
			out, err := s.Render(cmd.Context(), q)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "clauses: %d\n", q.Len())
			fmt.Fprintf(cmd.OutOrStdout(), "canonical:\n%s\n", out)
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "cyb version %s\n", version)
			return nil
		},
	}
}

var version = "0.1.0"
