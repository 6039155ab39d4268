package encode

type Option func(*encState)

// Indent sets the indent increment for block collections.
func Indent(n int) Option {
	return func(es *encState) {
		if n > 0 {
			es.indent = n
		}
	}
}

// WithColors enables colorized output.
func WithColors(c *Colors) Option {
	return func(es *encState) { es.color = c.Color }
}
