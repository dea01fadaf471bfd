package cli_test

import (
	"testing"

	"github.com/calvinalkan/bookshelf/internal/cli"
)

// seed adds books given as {title, author, year, genre, read} tuples.
func seed(t *testing.T, c *cli.CLI, books ...[5]string) {
	t.Helper()

	for _, b := range books {
		args := []string{"add", b[0], "-a", b[1], "-y", b[2]}
		if b[3] != "" {
			args = append(args, "-g", b[3])
		}

		if b[4] == "read" {
			args = append(args, "--read")
		}

		c.MustRun(args...)
	}
}
