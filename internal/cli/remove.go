package cli

import (
	"context"
	"errors"

	"github.com/calvinalkan/bookshelf/internal/book"

	flag "github.com/spf13/pflag"
)

var errTitleRequired = errors.New("title is required")

// RemoveCmd returns the rm command.
func RemoveCmd(store *book.Store) *Command {
	return &Command{
		Flags: flag.NewFlagSet("rm", flag.ContinueOnError),
		Usage: "rm <title>",
		Short: "Remove a book",
		Long: `Remove the first book whose title matches, ignoring case.

Only one book is removed even if several share the title.`,
		Exec: func(_ context.Context, io *IO, args []string) error {
			return execRemove(io, store, args)
		},
	}
}

func execRemove(io *IO, store *book.Store, args []string) error {
	title := joinArgs(args)
	if title == "" {
		return errTitleRequired
	}

	if _, err := store.Remove(title); err != nil {
		return err
	}

	io.Println("Book removed successfully!")

	return nil
}
