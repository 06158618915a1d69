// Package emojidom replaces emoji in a live document tree with inline
// image elements.
//
// # Overview
//
// An Engine watches the body of a dom.Document. Text that contains a
// recognized emoji sequence is split around it and the sequence becomes an
// <img class="emoji"> pointing at an asset named after its codepoints.
// Changes to the tree, including changes inside shadow roots, are batched
// and rescanned once the tree has been quiet for a short debounce window
// and the host is ready to paint.
//
// # Quick Start
//
//	h := host.NewLoop()
//	doc, _ := dom.Parse(r, dom.WithPoster(h))
//
//	eng := emojidom.New(doc, h, emojidom.WithBaseURL("/png/"))
//	if err := eng.Start(); err != nil {
//	    return err
//	}
//	defer eng.Close()
//
//	go h.Run(ctx)
//
// For one-shot rewriting of an HTML document use [Rewrite], which runs the
// same pipeline against a virtual clock.
//
// # Assets
//
// Image addresses are <base>/emoji_u<hex>.png as produced by
// emoji.AssetName. With a loader configured (see [WithLoader]) an image
// that fails to load is retried once with the presentation selector
// toggled and then replaced by its original text. The assets package
// provides loaders backed by a directory or a color emoji font.
//
// # Logging
//
// Logging goes through log/slog and is off by default; see [SetLogger].
package emojidom
