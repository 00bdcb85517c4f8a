package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/citemark/citemark"
	"github.com/citemark/citemark/style"
)

var (
	refStyle string
	refPlain bool
)

var refCmd = &cobra.Command{
	Use:   "ref [key...]",
	Short: "Render reference-list entries",
	Long: `Render the reference-list entry for each given key, or for every
entry in the bibliography when no keys are given. Entries render in the
order given (or bibliography order), with repeated-author suppression
where the style calls for it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}

		formatter, ok := style.ByName(refStyle)
		if !ok {
			return fmt.Errorf("unknown style %q (known: %s)",
				refStyle, strings.Join(style.Names(), ", "))
		}

		keys := args
		if len(keys) == 0 {
			keys = db.Keys()
		}

		var prev *citemark.Entry
		for i, key := range keys {
			entry, ok := db.Get(key)
			if !ok {
				return &citemark.KeyNotFoundError{Key: key}
			}

			text := formatter.Reference(entry, prev)
			line := text.RenderANSI()
			if refPlain {
				line = text.String()
			}

			if strings.EqualFold(refStyle, "ieee") {
				cmd.Printf("[%d] %s\n", i+1, line)
			} else {
				cmd.Println(line)
			}
			prev = entry
		}
		return nil
	},
}

func init() {
	refCmd.Flags().StringVar(&refStyle, "style", "ieee",
		"citation style ("+strings.Join(style.Names(), ", ")+")")
	refCmd.Flags().BoolVar(&refPlain, "plain", false,
		"disable ANSI formatting in the output")
}
