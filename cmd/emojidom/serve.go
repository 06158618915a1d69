package main

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/emojidom/server"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve assets under /png/ and rewrite documents posted to /rewrite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}
			if store == nil {
				return errors.New("serve needs --assets or --font")
			}

			srv := server.New(server.Config{
				Store:     store,
				BaseURL:   a.v.GetString("base"),
				BodyLimit: a.v.GetInt("body-limit"),
				Logger:    a.log,
			})

			errc := make(chan error, 1)
			go func() { errc <- srv.Listen(a.v.GetString("addr")) }()

			select {
			case err := <-errc:
				return err
			case <-cmd.Context().Done():
			}
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			a.log.Info("shutting down")
			return srv.Shutdown(ctx)
		},
	}
	cmd.Flags().String("addr", ":8080", "listen address")
	cmd.Flags().Int("body-limit", server.DefaultBodyLimit, "largest document accepted by /rewrite, in bytes")
	_ = a.v.BindPFlags(cmd.Flags())
	return cmd
}
