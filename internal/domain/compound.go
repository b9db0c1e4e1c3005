package domain

// ElementCounts maps an element symbol (one uppercase letter followed by
// zero or more lowercase letters, e.g. "Na", "O") to its atom count in a
// single compound. Every stored count is >= 1; an absent symbol means zero
// atoms of that element.
type ElementCounts map[string]int

// Compound is a chemical formula term together with its parsed atomic
// composition. It is immutable once constructed. Two compounds with the
// same formula text are independent instances; parsing is deterministic,
// so identical text always yields identical counts.
type Compound struct {
	// Formula is the original formula text as written in the reaction.
	Formula string

	// Counts is the parsed atomic composition.
	Counts ElementCounts
}

// Reaction holds the ordered reactant and product compounds of one
// reaction. Both sides are non-empty (enforced by the reaction parser).
type Reaction struct {
	Reactants []Compound
	Products  []Compound
}

// Compounds returns all compounds in combined order: reactants first, then
// products. This order defines the column order of the stoichiometry
// matrix and of every coefficient vector downstream.
func (r Reaction) Compounds() []Compound {
	all := make([]Compound, 0, len(r.Reactants)+len(r.Products))
	all = append(all, r.Reactants...)
	all = append(all, r.Products...)
	return all
}
