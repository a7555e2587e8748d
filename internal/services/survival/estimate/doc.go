// Package estimate computes the survival rate estimate from the reference
// mortality tables.
//
// The model is additive and unclamped: the demographic rate and each selected
// condition rate are summed and subtracted from 100. A selection whose
// reference rows are missing fails with a lookup error instead of defaulting.
package estimate
