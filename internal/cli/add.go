package cli

import (
	"context"

	"github.com/calvinalkan/bookshelf/internal/book"

	flag "github.com/spf13/pflag"
)

// AddCmd returns the add command.
func AddCmd(store *book.Store) *Command {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.StringP("author", "a", "", "Author (required)")
	fs.StringP("year", "y", "", "Publication year (required)")
	fs.StringP("genre", "g", "", "Genre")
	fs.BoolP("read", "r", false, "Mark the book as read")

	return &Command{
		Flags: fs,
		Usage: "add <title> [flags]",
		Short: "Add a book",
		Long: `Add a book to the end of the collection.

Title, --author and --year are required. Duplicate titles are allowed.`,
		Exec: func(_ context.Context, io *IO, args []string) error {
			return execAdd(io, store, fs, args)
		},
	}
}

func execAdd(io *IO, store *book.Store, fs *flag.FlagSet, args []string) error {
	author, _ := fs.GetString("author")
	year, _ := fs.GetString("year")
	genre, _ := fs.GetString("genre")
	read, _ := fs.GetBool("read")

	err := store.Add(book.Book{
		Title:  joinArgs(args),
		Author: author,
		Year:   year,
		Genre:  genre,
		Read:   read,
	})
	if err != nil {
		return err
	}

	io.Println("Book added successfully!")

	return nil
}
