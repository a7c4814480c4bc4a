package rewrite

import "slices"

// Catalogue returns the full rule set in canonical order. Proof search is
// deterministic for a fixed rule order; this is that order.
func Catalogue() []Rule {
	return []Rule{
		CommuteAnd(),
		CommuteOr(),
		CommuteIff(),
		CommuteAndAnd(),
		CommuteOrOr(),
		DoubleNegation(),
		ExcludedMiddle(),
		Contradiction(),
		DeMorganAnd(),
		DeMorganOr(),
		DeMorganAndReverse(),
		DeMorganOrReverse(),
		ImplicationElim(),
		ImplicationIntro(),
		Contrapositive(),
		DistributeAnd(),
		DistributeOr(),
		FactorAnd(),
		FactorOr(),
		IdempotentAnd(),
		IdempotentOr(),
		ExpandIdempotentAnd(),
		ExpandIdempotentOr(),
		IffExpand(),
		IffContract(),
		SimplifyTrue(),
		SimplifyFalse(),
		ExpandAndTrue(),
		ExpandOrFalse(),
		OrTrue(),
		AndFalse(),
		AbsorbOr(),
		AbsorbAnd(),
	}
}

// Without filters the catalogue by category.
func Without(rules []Rule, cats ...Category) []Rule {
	res := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if slices.Contains(cats, r.Category()) {
			continue
		}
		res = append(res, r)
	}
	return res
}
