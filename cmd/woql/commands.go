package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rlch/woql"
	"github.com/rlch/woql/query"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "woql",
		Short:        "Parse and inspect WOQL queries",
		SilenceUsage: true,
	}
	root.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	root.PersistentFlags().Int("max-depth", 0, "Maximum nesting depth accepted by the parser (0 for the default)")

	root.AddCommand(newParseCmd(), newCheckCmd(), newVarsCmd())
	return root
}

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Parse a query and print its tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := parseInput(cmd, args)
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString("format")
			return woql.Render(cmd.OutOrStdout(), q, woql.Format(format))
		},
	}
	cmd.Flags().StringP("format", "f", string(woql.FormatJSON), "Output format: json | yaml | go")
	return cmd
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file|-]",
		Short: "Report whether a query parses",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := parseInput(cmd, args); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

func newVarsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vars [file|-]",
		Short: "List the variables a query references",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := parseInput(cmd, args)
			if err != nil {
				return err
			}
			for _, v := range query.Variables(q) {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}
}

func logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func parseInput(cmd *cobra.Command, args []string) (query.Query, error) {
	log := logger(cmd)
	name, src, err := readInput(cmd, args)
	if err != nil {
		return nil, err
	}
	log.Debug("parsing", slog.String("input", name), slog.Int("bytes", len(src)))

	depth, _ := cmd.Flags().GetInt("max-depth")
	q, err := woql.Parse(src, woql.WithLogger(log), woql.WithMaxDepth(depth))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return q, nil
}

func readInput(cmd *cobra.Command, args []string) (name, src string, err error) {
	var b []byte
	if len(args) == 0 || args[0] == "-" {
		name = "<stdin>"
		b, err = io.ReadAll(cmd.InOrStdin())
	} else {
		name = args[0]
		b, err = os.ReadFile(name)
	}
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", name, err)
	}
	return name, string(b), nil
}
