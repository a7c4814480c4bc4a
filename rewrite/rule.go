// Package rewrite holds the catalogue of equivalence-preserving rules and
// the driver that enumerates their applications over an expression tree.
//
// A rule acts only at the root of the expression handed to it; locating a
// suitable subexpression is the driver's job. Apply is partial: calling it
// where CanApply is false is a contract violation and yields
// ErrNotApplicable.
package rewrite

import (
	"errors"
	"fmt"

	"github.com/matteo-psnt/proof-generator/ir"
)

type Category string

const (
	CommAssoc Category = "comm_assoc"
	Neg       Category = "neg"
	LEM       Category = "lem"
	Contr     Category = "contr"
	DM        Category = "dm"
	Impl      Category = "impl"
	Contrapos Category = "contrapos"
	Distr     Category = "distr"
	Idemp     Category = "idemp"
	Equiv     Category = "equiv"
	Simp1     Category = "simp1"
	Simp2     Category = "simp2"
)

func Categories() []Category {
	return []Category{
		CommAssoc,
		Neg,
		LEM,
		Contr,
		DM,
		Impl,
		Contrapos,
		Distr,
		Idemp,
		Equiv,
		Simp1,
		Simp2,
	}
}

var ErrNotApplicable = errors.New("rule not applicable")

type Rule interface {
	Name() string
	Category() Category
	Description() string
	CanApply(e *ir.Node) bool
	Apply(e *ir.Node) (*ir.Node, error)
}

type rule struct {
	name     string
	category Category
	desc     string
}

func (r rule) Name() string {
	return r.name
}

func (r rule) Category() Category {
	return r.category
}

func (r rule) Description() string {
	return r.desc
}

func (r rule) errNotApplicable(e *ir.Node) error {
	return fmt.Errorf("%w: %s on %s", ErrNotApplicable, r.name, e)
}
