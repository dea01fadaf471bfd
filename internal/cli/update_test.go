package cli_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/calvinalkan/bookshelf/internal/book"
	"github.com/calvinalkan/bookshelf/internal/cli"
)

func TestUpdateCommand_Partial_Fields(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	seed(t, c, [5]string{"A", "B", "2000", "X", ""})

	stdout := c.MustRun("update", "a", "--year", "2001", "--read", "--yes")
	cli.AssertContains(t, stdout, "Book updated successfully!")

	want := []book.Book{{Title: "A", Author: "B", Year: "2001", Genre: "X", Read: true}}
	if diff := cmp.Diff(want, c.ReadBooks()); diff != "" {
		t.Errorf("collection mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateCommand_Confirmation(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name      string
		stdin     string
		wantSaved bool
		wantOut   string
	}{
		{name: "yes saves", stdin: "y\n", wantSaved: true, wantOut: "Book updated successfully!"},
		{name: "YES saves", stdin: "YES\n", wantSaved: true, wantOut: "Book updated successfully!"},
		{name: "no discards", stdin: "n\n", wantOut: "Changes discarded."},
		{name: "empty answer discards", stdin: "\n", wantOut: "Changes discarded."},
		{name: "eof discards", stdin: "", wantOut: "Changes discarded."},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := cli.NewCLI(t)
			seed(t, c, [5]string{"Dune", "Herbert", "1965", "SciFi", ""})

			stdout, stderr, code := c.RunWithInput(tt.stdin, "update", "Dune", "--title", "Dune Messiah", "--read")
			if code != 0 {
				t.Fatalf("exit=%d\nstderr: %s", code, stderr)
			}

			cli.AssertContains(t, stdout, "Before: Dune by Herbert (1965) - SciFi - Unread")
			cli.AssertContains(t, stdout, "After:  Dune Messiah by Herbert (1965) - SciFi - Read")
			cli.AssertContains(t, stdout, "Save changes? [y/N]")
			cli.AssertContains(t, stdout, tt.wantOut)

			want := book.Book{Title: "Dune", Author: "Herbert", Year: "1965", Genre: "SciFi"}
			if tt.wantSaved {
				want = book.Book{Title: "Dune Messiah", Author: "Herbert", Year: "1965", Genre: "SciFi", Read: true}
			}

			if diff := cmp.Diff([]book.Book{want}, c.ReadBooks()); diff != "" {
				t.Errorf("collection mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUpdateCommand_Unread_Clears_Read(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	seed(t, c, [5]string{"Dune", "Herbert", "1965", "SciFi", "read"})

	c.MustRun("update", "dune", "--unread", "-y")

	if got := c.ReadBooks()[0].Read; got {
		t.Errorf("read=%v, want false", got)
	}
}

func TestUpdateCommand_Errors(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name       string
		seed       bool
		args       []string
		wantStderr string
	}{
		{name: "empty collection", args: []string{"update", "Dune", "--read"}, wantStderr: "no books available to update"},
		{name: "not found", seed: true, args: []string{"update", "Emma", "--read", "-y"}, wantStderr: "book not found: Emma"},
		{name: "read state required", seed: true, args: []string{"update", "Dune", "-y"}, wantStderr: "one of --read or --unread is required"},
		{name: "read and unread", seed: true, args: []string{"update", "Dune", "--read", "--unread"}, wantStderr: "cannot be used together"},
		{name: "title required", seed: true, args: []string{"update", "--read"}, wantStderr: "title is required"},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := cli.NewCLI(t)
			if tt.seed {
				seed(t, c, [5]string{"Dune", "Herbert", "1965", "", ""})
			}

			stderr := c.MustFail(tt.args...)
			cli.AssertContains(t, stderr, tt.wantStderr)
		})
	}
}
