package cli

import (
	"context"
	"fmt"

	"github.com/calvinalkan/bookshelf/internal/book"

	flag "github.com/spf13/pflag"
)

// LsCmd returns the ls command.
func LsCmd(store *book.Store) *Command {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	fs.Bool("read", false, "Show only read books")
	fs.Bool("unread", false, "Show only unread books")

	return &Command{
		Flags: fs,
		Usage: "ls [flags]",
		Short: "List books",
		Long:  "List all books in the order they were added, numbered from 1.",
		Exec: func(_ context.Context, io *IO, _ []string) error {
			return execLs(io, store, fs)
		},
	}
}

func execLs(io *IO, store *book.Store, fs *flag.FlagSet) error {
	onlyRead, _ := fs.GetBool("read")
	onlyUnread, _ := fs.GetBool("unread")

	if onlyRead && onlyUnread {
		return errReadConflict
	}

	books := store.ListAll()
	if len(books) == 0 {
		io.Println("Your collection is empty.")

		return nil
	}

	// Numbers stay the collection positions when filtering.
	for i, b := range books {
		if (onlyRead && !b.Read) || (onlyUnread && b.Read) {
			continue
		}

		io.Println(formatBookLine(i+1, b))
	}

	return nil
}

func printBooks(io *IO, books []book.Book) {
	for i, b := range books {
		io.Println(formatBookLine(i+1, b))
	}
}

// formatBookLine renders "1. Dune by Herbert (1965) - SciFi - Read".
func formatBookLine(n int, b book.Book) string {
	return fmt.Sprintf("%d. %s", n, b)
}
