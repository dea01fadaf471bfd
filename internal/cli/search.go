package cli

import (
	"context"
	"errors"

	"github.com/calvinalkan/bookshelf/internal/book"

	flag "github.com/spf13/pflag"
)

var errTermRequired = errors.New("search term is required")

// SearchCmd returns the search command.
func SearchCmd(store *book.Store) *Command {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	fs.String("by", string(book.FieldTitle), "Search by: title|author")

	return &Command{
		Flags: fs,
		Usage: "search <term> [--by title|author]",
		Short: "Search books by title or author",
		Long: `Case-insensitive substring search.

The term is matched against both title and author whichever --by is given;
--by only records what you were looking for.`,
		Exec: func(_ context.Context, io *IO, args []string) error {
			return execSearch(io, store, fs, args)
		},
	}
}

func execSearch(io *IO, store *book.Store, fs *flag.FlagSet, args []string) error {
	if len(args) == 0 {
		return errTermRequired
	}

	by, _ := fs.GetString("by")

	field, err := book.ParseField(by)
	if err != nil {
		return err
	}

	found := store.Search(joinArgs(args), field)
	if len(found) == 0 {
		io.Println("No matching books found.")

		return nil
	}

	printBooks(io, found)

	return nil
}
