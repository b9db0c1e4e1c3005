// Package domain contains the core entities and value objects for chembal.
//
// This is the innermost layer: it has no dependencies on parsing, linear
// algebra, logging, or any other infrastructure concern, and holds only the
// vocabulary the rest of the module speaks.
//
// # Entities
//
//   - [ElementCounts]: atomic composition of one compound
//   - [Compound]: a formula string plus its parsed composition
//   - [Reaction]: ordered reactant and product compounds
//   - [BalancedReaction]: integer coefficients zipped back onto formulas
//
// All entities are constructed fresh per balancing request and never shared
// or mutated afterwards, so every balance call is a pure function of its
// input string.
package domain
