package cli_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/calvinalkan/bookshelf/internal/book"
	"github.com/calvinalkan/bookshelf/internal/cli"
)

func TestAddCommand(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name       string
		args       []string
		wantExit   int
		wantStderr string
		wantBooks  []book.Book
	}{
		{
			name:      "adds book with all fields",
			args:      []string{"add", "Dune", "-a", "Herbert", "-y", "1965", "-g", "SciFi", "--read"},
			wantBooks: []book.Book{{Title: "Dune", Author: "Herbert", Year: "1965", Genre: "SciFi", Read: true}},
		},
		{
			name:      "genre is optional and read defaults to false",
			args:      []string{"add", "Emma", "--author=Austen", "--year=1815"},
			wantBooks: []book.Book{{Title: "Emma", Author: "Austen", Year: "1815"}},
		},
		{
			name:      "joins unquoted title words",
			args:      []string{"add", "The", "Hobbit", "-a", "Tolkien", "-y", "1937"},
			wantBooks: []book.Book{{Title: "The Hobbit", Author: "Tolkien", Year: "1937"}},
		},
		{
			name:       "missing title",
			args:       []string{"add", "-a", "Author", "-y", "2020", "-g", "Genre"},
			wantExit:   1,
			wantStderr: "missing required field: title",
		},
		{
			name:       "missing author and year",
			args:       []string{"add", "Dune"},
			wantExit:   1,
			wantStderr: "missing required field: author, year",
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := cli.NewCLI(t)
			stdout, stderr, code := c.Run(tt.args...)

			if got, want := code, tt.wantExit; got != want {
				t.Fatalf("exit=%d, want=%d\nstderr: %s", got, want, stderr)
			}

			if tt.wantExit != 0 {
				cli.AssertContains(t, stderr, tt.wantStderr)

				if got, want := stdout, ""; got != want {
					t.Errorf("stdout=%q, want=%q", got, want)
				}

				return
			}

			cli.AssertContains(t, stdout, "Book added successfully!")

			if diff := cmp.Diff(tt.wantBooks, c.ReadBooks()); diff != "" {
				t.Errorf("collection mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAddCommand_Appends_In_Order(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.MustRun("add", "B", "-a", "x", "-y", "1")
	c.MustRun("add", "A", "-a", "y", "-y", "2")
	c.MustRun("add", "B", "-a", "z", "-y", "3")

	want := []book.Book{
		{Title: "B", Author: "x", Year: "1"},
		{Title: "A", Author: "y", Year: "2"},
		{Title: "B", Author: "z", Year: "3"},
	}

	if diff := cmp.Diff(want, c.ReadBooks()); diff != "" {
		t.Errorf("collection mismatch (-want +got):\n%s", diff)
	}
}

func TestAddCommand_Replaces_Corrupt_File(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile("book_data.json", "{{{ not json")

	c.MustRun("add", "Dune", "-a", "Herbert", "-y", "1965")

	if got, want := len(c.ReadBooks()), 1; got != want {
		t.Errorf("books=%d, want=%d", got, want)
	}
}

func TestAddCommand_Write_Failure_Reported(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	// A directory where the collection file should be makes the rename fail.
	c.WriteFile("book_data.json/keep", "")

	stderr := c.MustFail("add", "Dune", "-a", "Herbert", "-y", "1965")
	cli.AssertContains(t, stderr, "write failed")
}
