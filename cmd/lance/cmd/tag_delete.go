package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// tagDeleteCmd represents the delete command
var tagDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a tag from a dataset",
	Long: `Delete a tag from a dataset.

Only the name binding is removed: the version the tag pointed to stays in the
dataset history.
`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		ds, err := initDataset(ctx)
		if err != nil {
			wrapFatalln("initializing dataset", err)
		}

		if _, err := ds.DeleteTag(ctx, tagName); err != nil {
			wrapFatalln("delete tag", err)
		}
		infoLogger.Printf("tag %q deleted", tagName)
	},
}

func init() {
	tagCmd.AddCommand(tagDeleteCmd)
	fls := tagDeleteCmd.Flags()
	fls.StringVar(&tagName, "name", "", "name for the tag to delete")
	_ = tagDeleteCmd.MarkFlagRequired("name")
}
