package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/emojidom"
	"github.com/gogpu/emojidom/assets"
)

func newRewriteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rewrite [file]",
		Short: "Rewrite an HTML document, reading stdin when no file is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			base := a.v.GetString("base")
			opts := []emojidom.Option{
				emojidom.WithBaseURL(base),
				emojidom.WithCharset(a.v.GetString("charset")),
				emojidom.WithContext(cmd.Context()),
			}
			store, err := a.store()
			if err != nil {
				return err
			}
			if store != nil {
				opts = append(opts, emojidom.WithLoader(assets.NewLoader(base, store)))
			}

			var out bytes.Buffer
			st, err := emojidom.Rewrite(&out, in, opts...)
			if err != nil {
				return err
			}
			a.log.Info("rewrite done", "images", st.Images, "batches", st.Batches)

			if path := a.v.GetString("output"); path != "" && path != "-" {
				if err := os.WriteFile(path, out.Bytes(), 0o644); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
				return nil
			}
			_, err = cmd.OutOrStdout().Write(out.Bytes())
			return err
		},
	}
	cmd.Flags().StringP("output", "o", "", "write the result to this file instead of stdout")
	cmd.Flags().String("charset", "", "input encoding label (default utf-8)")
	_ = a.v.BindPFlags(cmd.Flags())
	return cmd
}
