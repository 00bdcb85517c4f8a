package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/citemark/citemark"
	"github.com/citemark/citemark/marker"
	"github.com/citemark/citemark/style"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive citation session",
	Long: `Start an interactive session against the loaded bibliography.
Citation mode and reference style persist between commands.`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

const replHelp = `Commands:
  keys                 list entry keys
  cite <key[=supp]>... citation marker for the given keys
  ref [key...]         reference-list entries (all when no keys)
  mode key|numeric     switch citation marker mode
  style <name>         switch reference style (ieee, author-date)
  help                 show this help
  quit                 leave the session`

func runREPL(cmd *cobra.Command, _ []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}

	rl, err := readline.New(colorCyan + "citemark> " + colorReset)
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	out := cmd.OutOrStdout()
	numeric := false
	styleName := "ieee"

	fmt.Fprintf(out, "%d entries loaded from %s. Type 'help' for commands.\n",
		db.Len(), bibPath)

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "q", "quit", "exit":
			return nil

		case "help":
			fmt.Fprintln(out, replHelp)

		case "keys":
			for _, key := range db.Keys() {
				entry, _ := db.Get(key)
				fmt.Fprintf(out, "%-20s %s%s%s\n",
					key, colorDim, entry.Title, colorReset)
			}

		case "mode":
			if len(fields) != 2 || (fields[1] != "key" && fields[1] != "numeric") {
				replError(out, fmt.Errorf("usage: mode key|numeric"))
				continue
			}
			numeric = fields[1] == "numeric"
			fmt.Fprintf(out, "citation mode: %s\n", fields[1])

		case "style":
			if len(fields) != 2 {
				replError(out, fmt.Errorf("usage: style <name>"))
				continue
			}
			if _, ok := style.ByName(fields[1]); !ok {
				replError(out, fmt.Errorf("unknown style %q (known: %s)",
					fields[1], strings.Join(style.Names(), ", ")))
				continue
			}
			styleName = fields[1]
			fmt.Fprintf(out, "reference style: %s\n", styleName)

		case "cite":
			if len(fields) < 2 {
				replError(out, fmt.Errorf("usage: cite <key[=supplement]>..."))
				continue
			}
			var formatter citemark.CitationFormatter = marker.NewKey(db)
			if numeric {
				formatter = marker.NewNumeric(db)
			}
			result, err := formatter.Reference(parseCitations(db, fields[1:]))
			if err != nil {
				replError(out, err)
				continue
			}
			fmt.Fprintln(out, result)

		case "ref":
			formatter, _ := style.ByName(styleName)
			keys := fields[1:]
			if len(keys) == 0 {
				keys = db.Keys()
			}
			var prev *citemark.Entry
			for _, key := range keys {
				entry, ok := db.Get(key)
				if !ok {
					replError(out, &citemark.KeyNotFoundError{Key: key})
					prev = nil
					continue
				}
				fmt.Fprintln(out, formatter.Reference(entry, prev).RenderANSI())
				prev = entry
			}

		default:
			replError(out, fmt.Errorf("unknown command %q, try 'help'", fields[0]))
		}
	}
}

func replError(w io.Writer, err error) {
	fmt.Fprintf(w, "%sError: %v%s\n", colorRed, err, colorReset)
}
