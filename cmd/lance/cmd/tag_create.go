package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// tagCreateCmd represents the create command
var tagCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a tag for a committed dataset version",
	Long: `Create a tag for a committed dataset version.

A tag represents an immutable anchor to a named version. Creating a tag under
a name that already exists fails: delete the old tag first to repoint it.
`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		ds, err := initDataset(ctx)
		if err != nil {
			wrapFatalln("initializing dataset", err)
		}

		if _, err := ds.CreateTag(ctx, tagName, tagVersion); err != nil {
			wrapFatalln("create tag", err)
		}
		infoLogger.Printf("tag %q created for version %d", tagName, tagVersion)
	},
}

func init() {
	tagCmd.AddCommand(tagCreateCmd)
	fls := tagCreateCmd.Flags()
	fls.StringVar(&tagName, "name", "", "name for the tag to create")
	fls.Uint64Var(&tagVersion, "version", 0, "committed dataset version the tag points to")
	_ = tagCreateCmd.MarkFlagRequired("name")
	_ = tagCreateCmd.MarkFlagRequired("version")
}
