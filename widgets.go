package lvgo

//go:generate go run ./tools/generate -manifest widgets.toml

// SetText replaces the label's text. The engine copies it.
func (l *Label[C]) SetText(text string) *Label[C] {
	l.live().LabelSetText(l.raw, text)
	return l
}
