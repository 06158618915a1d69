package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/rivo/uniseg"
	"github.com/spf13/cobra"

	"github.com/gogpu/emojidom/emoji"
)

func newResolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <text>...",
		Short: "Print the image address of every emoji in text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base := a.v.GetString("base")
			w := cmd.OutOrStdout()
			for m := range emoji.Default.Matches(strings.Join(args, " ")) {
				if emoji.Ignored(m.Codepoint, m.Text) {
					fmt.Fprintf(w, "%s\t%s\t(text)\n", m.Text, m.Codepoint)
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%s%s\n", m.Text, m.Codepoint, base, emoji.AssetName(m.Codepoint))
			}
			return nil
		},
	}
}

func newInspectCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <text>...",
		Short: "Print how text is segmented into emoji sequences",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "OFFSET\tCODEPOINT\tKIND\tGRAPHEMES\tWIDTH\tUTF16\tASSET")
			for m := range emoji.Default.Matches(text) {
				asset := emoji.AssetName(m.Codepoint)
				if emoji.Ignored(m.Codepoint, m.Text) {
					asset = "-"
				}
				fmt.Fprintf(tw, "%d-%d\t%s\t%s\t%d\t%d\t%d\t%s\n",
					m.Start, m.End, m.Codepoint, m.Kind(),
					uniseg.GraphemeClusterCount(m.Text), uniseg.StringWidth(m.Text),
					emoji.UTF16Len(m.Text), asset)
			}
			fmt.Fprintf(tw, "total\t\t\t%d\t%d\t%d\t\n",
				uniseg.GraphemeClusterCount(text), uniseg.StringWidth(text), emoji.UTF16Len(text))
			return tw.Flush()
		},
	}
}
