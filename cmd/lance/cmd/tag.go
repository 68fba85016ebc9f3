package cmd

import (
	"github.com/spf13/cobra"
)

// tagCmd represents the tag related commands
var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Commands to manage tags on a dataset",
	Long: `Commands to manage tags on a dataset.

A tag is a human-chosen name bound to exactly one committed dataset version,
analogous to tags in git. Examples: latest, production.

Repointing a tag is a delete followed by a create.
`,
}

func init() {
	rootCmd.AddCommand(tagCmd)
}
