package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/omnioperator/omnilog/config"
	"github.com/omnioperator/omnilog/log"
)

var (
	errLevelOff      = errors.New("'off' is a threshold, not a record level")
	errTraceDisabled = errors.New("trace records require a build with the 'omnilog_trace' tag")
)

var (
	flagsToMask = []string{"--password", "--secret"}
	flagsToTag  = []string{"--user", "--table"}
)

type options struct {
	configPath string
	stdout     io.Writer
	stderr     io.Writer
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "omnilog",
		Short:         "Inspect and use the operator extension logging configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to the logging configuration file")

	root.AddCommand(newCheckCommand(opts), newEmitCommand(opts))

	return root
}

func newCheckCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration and print the effective values",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.NewLoader(opts.configPath).Load()
			if err != nil {
				return err
			}

			encoded, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}

			_, err = fmt.Fprintln(opts.stdout, string(encoded))

			return err
		},
	}
}

func newEmitCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "emit <level> <message...>",
		Short: "Emit a single record using the configuration",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(args[0])
			if err != nil {
				return err
			}

			switch {
			case level == log.LevelOff:
				return errLevelOff
			case level == log.LevelTrace && !log.TraceEnabled:
				return errTraceDisabled
			}

			cfg, err := config.NewLoader(opts.configPath).Load()
			if err != nil {
				return err
			}

			rt, err := config.Build(cfg, config.BuildOptions{Stdout: opts.stdout, Stderr: opts.stderr})
			if err != nil {
				return err
			}
			defer rt.Close()

			rt.Facade.Debugf("Invoked as: %s", log.MaskAndUserTagArguments(invocation(cmd, args), flagsToTag,
				flagsToMask))
			rt.Facade.Logf(level, "%s", strings.Join(args[1:], " "))

			return nil
		},
	}
}

// invocation rebuilds the arguments cobra parsed for cmd, flags first.
func invocation(cmd *cobra.Command, args []string) []string {
	ret := []string{cmd.Name()}

	cmd.Flags().Visit(func(flag *pflag.Flag) {
		ret = append(ret, "--"+flag.Name, flag.Value.String())
	})

	return append(ret, args...)
}
