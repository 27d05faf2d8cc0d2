// Command grove checks and describes bean descriptor files without building
// them. Types are compiled into the program that builds a container, so
// this tool only verifies structure: identifiers, directives and
// references.
//
//	grove lint beans.xml more-beans.hcl
//	grove describe --env-file .env beans.yaml
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ARTM2000/grove"
	"github.com/ARTM2000/grove/config"
	"github.com/ARTM2000/grove/internal/ctxlog"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing.
func run(outW, errW io.Writer, args []string) error {
	cmd := newRootCmd()
	cmd.SetOut(outW)
	cmd.SetErr(errW)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

type globalFlags struct {
	logLevel  string
	logFormat string
	envFiles  []string
}

func newRootCmd() *cobra.Command {
	var flags globalFlags

	root := &cobra.Command{
		Use:           "grove",
		Short:         "Inspect grove bean descriptor files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&flags.logFormat, "log-format", "text", "log format: text or json")
	root.PersistentFlags().StringSliceVar(&flags.envFiles, "env-file", nil, ".env files providing ${NAME} and env.NAME values")

	root.AddCommand(newLintCmd(&flags), newDescribeCmd(&flags))
	return root
}

func newLintCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "lint FILE...",
		Short: "Check descriptor files for structural errors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			descriptors, err := load(cmd, flags, args)
			if err != nil {
				return err
			}
			if err := grove.Validate(descriptors); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d beans in %d files\n", len(descriptors), len(args))
			return nil
		},
	}
}

func newDescribeCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "describe FILE...",
		Short: "Print the beans and properties declared in descriptor files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			descriptors, err := load(cmd, flags, args)
			if err != nil {
				return err
			}
			describe(cmd.OutOrStdout(), descriptors)
			return nil
		},
	}
}

// load reads every file with placeholders expanded, logging to stderr.
func load(cmd *cobra.Command, flags *globalFlags, paths []string) ([]grove.BeanDescriptor, error) {
	logger := ctxlog.New(cmd.ErrOrStderr(), flags.logLevel, flags.logFormat)
	ctx := ctxlog.WithLogger(cmd.Context(), logger)

	vars, err := config.Env(flags.envFiles...)
	if err != nil {
		return nil, err
	}

	descriptors, err := config.LoadFiles(ctx, paths, vars)
	if err != nil {
		return nil, err
	}

	descriptors, err = config.ExpandEnv(descriptors, vars)
	if err != nil {
		return nil, err
	}
	logger.Info("Descriptors loaded.", "files", len(paths), "beans", len(descriptors))
	return descriptors, nil
}

func describe(w io.Writer, descriptors []grove.BeanDescriptor) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Bean", "Class", "Property", "Kind", "Value"})
	table.SetAutoWrapText(false)

	for _, d := range descriptors {
		if len(d.Properties) == 0 {
			table.Append([]string{d.ID, d.Class, "", "", ""})
			continue
		}
		for _, p := range d.Properties {
			table.Append([]string{d.ID, d.Class, p.Name, kind(p), text(p)})
		}
	}
	table.Render()
}

func kind(p grove.PropertyDirective) string {
	switch {
	case p.Value != nil && p.Ref != nil:
		return "invalid"
	case p.Ref != nil:
		return "ref"
	case p.Value != nil:
		return "value"
	}
	return "invalid"
}

func text(p grove.PropertyDirective) string {
	switch {
	case p.Ref != nil && p.Value == nil:
		return *p.Ref
	case p.Value != nil && p.Ref == nil:
		return strconv.Quote(*p.Value)
	}
	return ""
}
