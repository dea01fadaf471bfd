package cli

import (
	"context"
	"errors"

	"github.com/calvinalkan/bookshelf/internal/book"

	flag "github.com/spf13/pflag"
)

var (
	errNoBooks          = errors.New("no books available to update")
	errReadConflict     = errors.New("--read and --unread cannot be used together")
	errReadStateMissing = errors.New("one of --read or --unread is required")
)

// UpdateCmd returns the update command.
func UpdateCmd(store *book.Store) *Command {
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	fs.String("title", "", "New title")
	fs.String("author", "", "New author")
	fs.String("year", "", "New publication year")
	fs.String("genre", "", "New genre")
	fs.Bool("read", false, "Mark as read")
	fs.Bool("unread", false, "Mark as unread")
	fs.BoolP("yes", "y", false, "Save without asking")

	return &Command{
		Flags: fs,
		Usage: "update <title> (--read|--unread) [flags]",
		Short: "Edit a book's details",
		Long: `Edit the first book whose title matches, ignoring case.

Text fields left out (or given as "") keep their current value. The read
state has no such default: pass exactly one of --read or --unread.

The new details are shown and saved after confirmation, or straight away
with --yes.`,
		Exec: func(_ context.Context, io *IO, args []string) error {
			return execUpdate(io, store, fs, args)
		},
	}
}

func execUpdate(io *IO, store *book.Store, fs *flag.FlagSet, args []string) error {
	if store.Len() == 0 {
		return errNoBooks
	}

	title := joinArgs(args)
	if title == "" {
		return errTitleRequired
	}

	read, _ := fs.GetBool("read")
	unread, _ := fs.GetBool("unread")

	if read && unread {
		return errReadConflict
	}

	if !read && !unread {
		return errReadStateMissing
	}

	newTitle, _ := fs.GetString("title")
	newAuthor, _ := fs.GetString("author")
	newYear, _ := fs.GetString("year")
	newGenre, _ := fs.GetString("genre")

	edit, err := store.Update(title, book.Changes{
		Title:  newTitle,
		Author: newAuthor,
		Year:   newYear,
		Genre:  newGenre,
		Read:   read,
	})
	if err != nil {
		return err
	}

	yes, _ := fs.GetBool("yes")
	if !yes {
		io.Println("Before:", edit.Before)
		io.Println("After: ", edit.After)

		if !io.Confirm("Save changes?") {
			io.Println("Changes discarded.")

			return nil
		}
	}

	if err := store.Save(edit); err != nil {
		return err
	}

	io.Println("Book updated successfully!")

	return nil
}
