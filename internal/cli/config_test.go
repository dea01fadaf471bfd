package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/calvinalkan/bookshelf/internal/cli"
)

// Tests for print-config command.

func Test_Print_Config_Defaults_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("print-config")

	cli.AssertContains(t, stdout, "file="+filepath.Join(c.Dir, "book_data.json"))
	cli.AssertContains(t, stdout, "books=0")
	cli.AssertContains(t, stdout, "(defaults only)")
	cli.AssertNotContains(t, stdout, "load_issue=")
}

func Test_Print_Config_From_Config_File_With_Comments_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile(".bk.json", `{
		// This is a comment
		"file": "shelf/books.json",
	}`)

	stdout := c.MustRun("print-config")
	cli.AssertContains(t, stdout, "file="+filepath.Join(c.Dir, "shelf", "books.json"))
	cli.AssertContains(t, stdout, "project_config="+filepath.Join(c.Dir, ".bk.json"))
}

func Test_Print_Config_Explicit_Config_Flag_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile("custom.json", `{"file": "custom-books.json"}`)

	stdout := c.MustRun("-c", "custom.json", "print-config")
	cli.AssertContains(t, stdout, "file="+filepath.Join(c.Dir, "custom-books.json"))
}

func Test_Print_Config_File_Flag_Overrides_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile(".bk.json", `{"file": "from-file.json"}`)

	stdout := c.MustRun("--file=from-cli.json", "print-config")
	cli.AssertContains(t, stdout, "file="+filepath.Join(c.Dir, "from-cli.json"))
}

func Test_Print_Config_Global_Config_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	xdg := t.TempDir()
	c.Env["XDG_CONFIG_HOME"] = xdg
	globalPath := filepath.Join(xdg, "bk", "config.json")

	if err := os.MkdirAll(filepath.Dir(globalPath), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(globalPath, []byte(`{"file": "global.json"}`), 0o600); err != nil {
		t.Fatal(err)
	}

	stdout := c.MustRun("print-config")
	cli.AssertContains(t, stdout, "global_config="+globalPath)
	cli.AssertContains(t, stdout, "file="+filepath.Join(c.Dir, "global.json"))
}

func Test_Print_Config_Reports_Load_Issue_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile("book_data.json", "[{broken")

	stdout := c.MustRun("print-config")
	cli.AssertContains(t, stdout, "books=0")
	cli.AssertContains(t, stdout, "load_issue=parsing")
}

func Test_Config_Explicit_Config_Not_Found_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("-c", "nonexistent.json", "print-config")
	cli.AssertContains(t, stderr, "config file not found")
}

func Test_Config_Invalid_JSON_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile(".bk.json", `{invalid json}`)

	stderr := c.MustFail("print-config")
	cli.AssertContains(t, stderr, "invalid config file")
}

func Test_Config_Empty_File_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile(".bk.json", `{"file": ""}`)

	stderr := c.MustFail("print-config")
	cli.AssertContains(t, stderr, "file cannot be empty")
}

func Test_Collection_File_From_Config_Is_Used_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile(".bk.json", `{"file": "data/shelf.json"}`)

	c.MustRun("add", "Dune", "-a", "Herbert", "-y", "1965")

	stdout := c.MustRun("--file", "data/shelf.json", "ls")
	cli.AssertContains(t, stdout, "1. Dune by Herbert (1965)")

	stdout = c.MustRun("--file", "book_data.json", "ls")
	cli.AssertContains(t, stdout, "Your collection is empty.")
}
