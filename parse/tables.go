package parse

import "github.com/huzife/cyaml/token"

type firstSet map[token.Type]bool

func newFirstSet(ts ...token.Type) firstSet {
	s := firstSet{}
	for _, t := range ts {
		s[t] = true
	}
	return s
}

var (
	propertiesFirst = newFirstSet(token.TAnchor)

	blockContentFirst = newFirstSet(
		token.TScalar, token.TBlockMapStart, token.TBlockSeqStart,
		token.TFlowMapStart, token.TFlowSeqStart)

	flowContentFirst = newFirstSet(
		token.TScalar, token.TFlowMapStart, token.TFlowSeqStart)

	blockCollectionFirst = newFirstSet(
		token.TBlockMapStart, token.TBlockSeqStart)

	flowCollectionFirst = newFirstSet(
		token.TFlowMapStart, token.TFlowSeqStart)

	indentlessSeqFirst = newFirstSet(token.TBlockEntry)

	blockNodeFirst = newFirstSet(
		token.TAlias, token.TAnchor,
		token.TScalar, token.TBlockMapStart, token.TBlockSeqStart,
		token.TFlowMapStart, token.TFlowSeqStart)

	blockNodeOrIndentlessSeqFirst = newFirstSet(
		token.TAlias, token.TAnchor,
		token.TScalar, token.TBlockMapStart, token.TBlockSeqStart,
		token.TFlowMapStart, token.TFlowSeqStart, token.TBlockEntry)

	flowNodeFirst = newFirstSet(
		token.TAlias, token.TAnchor,
		token.TScalar, token.TFlowMapStart, token.TFlowSeqStart)
)
