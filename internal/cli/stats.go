package cli

import (
	"context"

	"github.com/calvinalkan/bookshelf/internal/book"

	flag "github.com/spf13/pflag"
)

// StatsCmd returns the stats command.
func StatsCmd(store *book.Store) *Command {
	return &Command{
		Flags: flag.NewFlagSet("stats", flag.ContinueOnError),
		Usage: "stats",
		Short: "Show reading progress",
		Long:  "Show the number of books and the percentage marked as read.",
		Exec: func(_ context.Context, io *IO, _ []string) error {
			p := store.ReadingProgress()

			io.Printf("Total books: %d\n", p.Total)
			io.Printf("Reading progress: %s\n", p.PercentString())

			return nil
		},
	}
}
