package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/citemark/citemark"
	"github.com/citemark/citemark/marker"
)

var citeNumeric bool

var citeCmd = &cobra.Command{
	Use:   "cite <key[=supplement]>...",
	Short: "Produce a citation marker for the given keys",
	Long: `Produce the marker for one combined citation. Each argument is an
entry key, optionally followed by "=" and a supplement such as a page
locator:

  citemark cite doe99 rowling="p. 42"
  citemark cite --numeric doe99 rowling smith04`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}

		var formatter citemark.CitationFormatter = marker.NewKey(db)
		if citeNumeric {
			formatter = marker.NewNumeric(db)
		}

		out, err := formatter.Reference(parseCitations(db, args))
		if err != nil {
			return err
		}

		cmd.Println(out)
		return nil
	},
}

func init() {
	citeCmd.Flags().BoolVarP(&citeNumeric, "numeric", "n", false,
		"render numeric range-compacted markers")
}

// parseCitations splits "key=supplement" arguments and assigns citation
// numbers by first-citation order.
func parseCitations(db *citemark.Database, args []string) []citemark.AtomicCitation {
	keys := make([]string, len(args))
	supplements := make([]string, len(args))
	for i, arg := range args {
		keys[i], supplements[i], _ = strings.Cut(arg, "=")
	}

	citations := db.Numbered(keys)
	for i := range citations {
		citations[i].Supplement = supplements[i]
	}
	return citations
}
