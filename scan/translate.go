package scan

import "github.com/gogpu/emojidom/dom"

// Translate turns mutation records into rescan requests. An added element
// is a root of its own. Added text and changed character data request
// their parent, or fallback when the node has none. Removals are ignored.
func Translate(recs []dom.MutationRecord, n Notifier, fallback *dom.Node) {
	for _, rec := range recs {
		switch rec.Type {
		case dom.ChildList:
			for _, added := range rec.Added {
				switch added.Type {
				case dom.ElementNode:
					n.Notify(added)
				case dom.TextNode:
					n.Notify(parentOr(added, fallback))
				}
			}
		case dom.CharacterData:
			n.Notify(parentOr(rec.Target, fallback))
		}
	}
}

func parentOr(node, fallback *dom.Node) *dom.Node {
	if p := node.Parent(); p != nil {
		return p
	}
	return fallback
}
