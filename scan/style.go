package scan

// DefaultStyle sizes emoji images to the surrounding text.
const DefaultStyle = `img.emoji {
	height: 1.15em !important;
	width: 1.15em !important;
	vertical-align: -0.22em !important;
	margin: 0 0.05em !important;
	display: inline-block !important;
	image-rendering: auto !important;
	transform: translateZ(0);
	contain: layout paint style;
}
`
