// Package dom is a small live document tree: the host side of emoji
// replacement.
//
// It models the parts of a browser DOM the replacement pipeline needs:
// element and text nodes, attachment state, shadow roots that are not
// reachable by a plain descendant walk, style injection, and mutation
// observers whose records are delivered as posted tasks.
//
// Trees are built programmatically:
//
//	doc := dom.NewDocument(nil)
//	body := doc.Body()
//	p := doc.CreateElement("p")
//	body.AppendChild(p)
//	p.AppendChild(doc.CreateTextNode("hello \U0001F44B"))
//
// or parsed from HTML with [Parse], which turns declarative
// <template shadowrootmode="open"> elements into shadow roots. [Render]
// writes a tree back out.
//
// A tree is not safe for concurrent use. All mutation and observer
// delivery is expected to happen on one logical thread, typically a
// host.Loop.
package dom
