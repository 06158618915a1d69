package dom

// InjectStyle appends a <style> element holding css to target, which is
// normally the document head or a shadow root. Rules injected into the
// document do not apply inside shadow roots, so each shadow root needs
// its own copy.
func InjectStyle(target *Node, css string) *Node {
	s := target.doc.CreateElement("style")
	s.AppendChild(target.doc.CreateTextNode(css))
	target.AppendChild(s)
	return s
}
