package token

import "fmt"

// Mark is a source position. Line and Column are 1-based; the zero Mark
// means the position is unknown.
type Mark struct {
	Line   int
	Column int
}

func (m Mark) IsZero() bool {
	return m.Line == 0 && m.Column == 0
}

func (m Mark) String() string {
	return fmt.Sprintf("%d:%d", m.Line, m.Column)
}
