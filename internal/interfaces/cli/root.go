package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func NewRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "opwatch",
		Short: "Watch Ontario Parks for roofed accommodation openings and optionally reserve them",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Logs go to stderr; stdout is reserved for the run report.
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
				With().Timestamp().Logger()
		},
	}
	cmd.AddCommand(NewWatchCmd())
	cmd.AddCommand(NewParksCmd())
	cmd.AddCommand(NewCategoriesCmd())
	cmd.AddCommand(NewVersionCmd())
	return cmd
}

func Execute() {
	if err := NewRoot().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
