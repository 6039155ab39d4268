package token

import "fmt"

type Type int

const (
	TNone Type = iota
	TDocStart
	TDocEnd
	TBlockEntry
	TBlockMapStart
	TBlockMapEnd
	TBlockSeqStart
	TBlockSeqEnd
	TFlowEntry
	TFlowMapStart
	TFlowMapEnd
	TFlowSeqStart
	TFlowSeqEnd
	TKey
	TValue
	TScalar
	TAnchor
	TAlias
)

func (t Type) String() string {
	return map[Type]string{
		TNone:          "TNone",
		TDocStart:      "TDocStart",
		TDocEnd:        "TDocEnd",
		TBlockEntry:    "TBlockEntry",
		TBlockMapStart: "TBlockMapStart",
		TBlockMapEnd:   "TBlockMapEnd",
		TBlockSeqStart: "TBlockSeqStart",
		TBlockSeqEnd:   "TBlockSeqEnd",
		TFlowEntry:     "TFlowEntry",
		TFlowMapStart:  "TFlowMapStart",
		TFlowMapEnd:    "TFlowMapEnd",
		TFlowSeqStart:  "TFlowSeqStart",
		TFlowSeqEnd:    "TFlowSeqEnd",
		TKey:           "TKey",
		TValue:         "TValue",
		TScalar:        "TScalar",
		TAnchor:        "TAnchor",
		TAlias:         "TAlias",
	}[t]
}

// ScalarStyle records how a scalar token was written in the source.
type ScalarStyle int

const (
	PlainScalar ScalarStyle = iota
	SingleQuoted
	DoubleQuoted
	SpecialScalar // literal or folded block scalar
)

type Token struct {
	Type  Type
	Value string
	Style ScalarStyle
	// Null is set on plain scalars that read "~" or "null", or that are
	// empty; literal, folded and quoted scalars never set it.
	Null bool
	Mark Mark
}

func (t Token) Info() string {
	if t.Value == "" {
		return t.Type.String()
	}
	return fmt.Sprintf("%s %q", t.Type, t.Value)
}
