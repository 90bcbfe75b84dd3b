package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ker0olos/sift/config"
	"github.com/ker0olos/sift/pkg/errs"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	configurationFile string
	verbose           bool
)

func initConfig(filename string) (*config.Config, error) {
	cfg := config.New()
	if err := config.Load(filename, cfg); err != nil {
		return nil, errors.Wrap(err, "could not load configuration")
	}

	if verbose {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, wrapValidateError(err, "invalid configuration")
	}
	return cfg, nil
}

// wrapValidateError wraps err with message. The failed fields of an
// *errs.ValidateError are appended so the offending entry is visible.
func wrapValidateError(err error, message string) error {
	var validateErr *errs.ValidateError
	if errors.As(err, &validateErr) && len(validateErr.Fields) > 0 {
		if fields, marshalErr := json.Marshal(validateErr.Fields); marshalErr == nil {
			err = fmt.Errorf("%w: %s", err, fields)
		}
	}
	return errors.Wrap(err, message)
}

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "sift",
		Short:        "Validate HTTP requests against per-method schemas",
		Long:         ``,
		SilenceUsage: true,
	}

	cmd.SetOut(os.Stdout)
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "", false, "Verbose logging.")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newStartCmd())
	cmd.AddCommand(newCheckCmd())

	return cmd
}

func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
