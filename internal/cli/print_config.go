package cli

import (
	"context"
	"strconv"

	"github.com/calvinalkan/bookshelf/internal/book"

	flag "github.com/spf13/pflag"
)

// PrintConfigCmd returns the print-config command.
func PrintConfigCmd(cfg *book.Config, store *book.Store) *Command {
	return &Command{
		Flags: flag.NewFlagSet("print-config", flag.ContinueOnError),
		Usage: "print-config",
		Short: "Show resolved configuration",
		Long: `Display the effective configuration, which files it was loaded from,
and whether the collection file could be read.`,
		Exec: func(_ context.Context, io *IO, _ []string) error {
			return execPrintConfig(io, cfg, store)
		},
	}
}

func execPrintConfig(io *IO, cfg *book.Config, store *book.Store) error {
	io.Println("effective_cwd=" + cfg.EffectiveCwd)
	io.Println("file=" + cfg.FileAbs)
	io.Println("books=" + strconv.Itoa(store.Len()))

	// An unreadable collection file is replaced on the next write.
	if issue := store.LoadIssue(); issue != nil {
		io.Println("load_issue=" + issue.Error())
	}

	io.Println("")
	io.Println("# sources")

	if cfg.Sources.Global == "" && cfg.Sources.Project == "" {
		io.Println("(defaults only)")
	} else {
		if cfg.Sources.Global != "" {
			io.Println("global_config=" + cfg.Sources.Global)
		}

		if cfg.Sources.Project != "" {
			io.Println("project_config=" + cfg.Sources.Project)
		}
	}

	return nil
}
