package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bethropolis/bulldozer/internal/app"
	"github.com/bethropolis/bulldozer/internal/config"
)

// reportedError marks failures the app has already logged
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

func newRootCmd() *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:   "bulldozer [flags] [PATH...]",
		Short: "Find and remove duplicate files",
		Long: `bulldozer walks one or more directories, hashes the content of every
regular file and groups files with identical content. In each group the
file with the lexicographically smallest path is kept; after confirmation
the other copies are deleted (or moved to a trash directory).`,
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Roots = args
			if cfg.ConfigFile != "" {
				if err := cfg.LoadFile(cfg.ConfigFile, cmd.Flags().Changed); err != nil {
					return err
				}
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			cfg.Finalize()

			application, err := app.New(cfg)
			if err != nil {
				return err
			}
			defer application.Close()

			if err := application.Run(); err != nil {
				return reportedError{err}
			}
			return nil
		},
	}
	cfg.BindFlags(cmd.Flags())
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var reported reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
