package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"
)

var listFormat string

// tagListCmd represents the list command
var tagListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the known tags for this dataset",
	Long:  `List the known tags for this dataset, with the version and manifest size each one pins.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		ds, err := initDataset(ctx)
		if err != nil {
			wrapFatalln("initializing dataset", err)
		}

		tags, err := ds.ListTags(ctx)
		if err != nil {
			wrapFatalln("list tags", err)
		}

		switch listFormat {
		case "yaml":
			buffer, err := yaml.Marshal(tags)
			if err != nil {
				wrapFatalln("marshaling tags", err)
			}
			fmt.Print(string(buffer))
		default:
			names := make([]string, 0, len(tags))
			for name := range tags {
				names = append(names, name)
			}
			sort.Strings(names)

			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
			for _, name := range names {
				contents := tags[name]
				fmt.Fprintf(w, "%s\t%d\t%d\n", name, contents.Version, contents.ManifestSize)
			}
			_ = w.Flush()
		}
	},
}

func init() {
	tagCmd.AddCommand(tagListCmd)
	fls := tagListCmd.Flags()
	fls.StringVar(&listFormat, "format", "text", "output format (text|yaml)")
}
