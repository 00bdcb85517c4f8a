// Command citemark renders citation markers and reference-list entries
// from a YAML bibliography.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/citemark/citemark"
	"github.com/citemark/citemark/bib"
)

// ANSI color codes for CLI feedback. Reference formatting itself comes
// from RichText.RenderANSI, not from these.
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorCyan  = "\033[36m"
	colorDim   = "\033[2m"
)

var bibPath string

var rootCmd = &cobra.Command{
	Use:   "citemark",
	Short: "Citation markers and bibliography references",
	Long: `citemark loads a YAML bibliography and renders citation markers
(key-based or numeric range-compacted) and styled reference-list entries.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.PersistentFlags().StringVar(&bibPath, "bib", "bibliography.yml",
		"path to the YAML bibliography file")

	rootCmd.AddCommand(citeCmd)
	rootCmd.AddCommand(refCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(replCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func openDatabase() (*citemark.Database, error) {
	return bib.LoadFile(bibPath)
}
