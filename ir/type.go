package ir

import "fmt"

type Type int

const (
	VarType Type = iota
	TrueType
	FalseType
	NotType
	AndType
	OrType
	ImpType
	IffType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		VarType:   "Var",
		TrueType:  "True",
		FalseType: "False",
		NotType:   "Not",
		AndType:   "And",
		OrType:    "Or",
		ImpType:   "Imp",
		IffType:   "Iff",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Var":   VarType,
		"True":  TrueType,
		"False": FalseType,
		"Not":   NotType,
		"And":   AndType,
		"Or":    OrType,
		"Imp":   ImpType,
		"Iff":   IffType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		VarType,
		TrueType,
		FalseType,
		NotType,
		AndType,
		OrType,
		ImpType,
		IffType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case VarType, TrueType, FalseType:
		return true
	default:
		return false
	}
}

func (t Type) IsBinary() bool {
	switch t {
	case AndType, OrType, ImpType, IffType:
		return true
	default:
		return false
	}
}

// opName is the operator name used in hash fingerprints.
func (t Type) opName() string {
	switch t {
	case AndType:
		return "AND"
	case OrType:
		return "OR"
	case ImpType:
		return "IMP"
	case IffType:
		return "IFF"
	default:
		panic("type")
	}
}

// symbol is the canonical output spelling of a binary operator.
func (t Type) symbol() string {
	switch t {
	case AndType:
		return "&"
	case OrType:
		return "|"
	case ImpType:
		return "=>"
	case IffType:
		return "<=>"
	default:
		panic("type")
	}
}
