// Command emojidom rewrites emoji in HTML documents into image elements
// and serves the images.
//
// Usage:
//
//	emojidom rewrite [file]       rewrite an HTML document (stdin by default)
//	emojidom resolve <text>...    print the asset of every emoji in text
//	emojidom inspect <text>...    print segmentation details
//	emojidom serve                serve assets and the rewrite endpoint
//
// Every flag can also be set through an EMOJIDOM_ environment variable
// (EMOJIDOM_BASE, EMOJIDOM_LOG_LEVEL, ...), a .env file or a config file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "emojidom:", err)
		os.Exit(1)
	}
}
