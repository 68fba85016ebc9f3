package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// tagGetCmd represents the get command
var tagGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the version a tag points to",
	Long:  `Show the version a tag points to, with the manifest size recorded at tag creation.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		ds, err := initDataset(ctx)
		if err != nil {
			wrapFatalln("initializing dataset", err)
		}

		contents, err := ds.GetTag(ctx, tagName)
		if err != nil {
			wrapFatalln("get tag", err)
		}
		infoLogger.Printf("%s\tversion=%d\tmanifestSize=%d", tagName, contents.Version, contents.ManifestSize)
	},
}

func init() {
	tagCmd.AddCommand(tagGetCmd)
	fls := tagGetCmd.Flags()
	fls.StringVar(&tagName, "name", "", "name for the tag to show")
	_ = tagGetCmd.MarkFlagRequired("name")
}
