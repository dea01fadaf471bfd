package cli_test

import (
	"testing"

	"github.com/calvinalkan/bookshelf/internal/cli"
)

func TestStatsCommand(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	if got, want := c.MustRun("stats"), "Total books: 0\nReading progress: 0.00%"; got != want {
		t.Errorf("stdout=%q, want=%q", got, want)
	}

	seed(t, c,
		[5]string{"A", "a", "1", "", "read"},
		[5]string{"B", "b", "2", "", ""},
		[5]string{"C", "c", "3", "", ""},
	)

	if got, want := c.MustRun("stats"), "Total books: 3\nReading progress: 33.33%"; got != want {
		t.Errorf("stdout=%q, want=%q", got, want)
	}
}
