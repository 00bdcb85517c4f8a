package main

import (
	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the entry keys in the bibliography",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}

		for _, key := range db.Keys() {
			entry, _ := db.Get(key)
			cmd.Printf("%-20s %s\n", key, entry.Title)
		}
		return nil
	},
}
