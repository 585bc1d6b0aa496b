// Package validate audits a submitted solution: a tour over a location set
// together with the fitness its author claims for it.
//
// Checks accumulate instead of short-circuiting, so one call reports every
// independent problem:
//  1. no location index is repeated (ReasonDuplicate);
//  2. the tour visits every location, checked only when (1) passed (ReasonIncomplete);
//  3. the tour starts at the origin, index 0 (ReasonNotOrigin);
//  4. the fitness recomputed with ga.Cost equals the claim once both are
//     rounded to 4 decimal digits (ReasonFitness).
//
// Indices outside the location set add ReasonUnknownLocation and suppress (4),
// since no fitness is defined for them. An empty tour suppresses (3) and (4).
//
// Validation failures are results, not errors. The error return is reserved
// for an empty location set and for distance failures during the recomputation.
package validate
