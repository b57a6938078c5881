// Package product contains the Product aggregate and its Category enumeration.
// A product's stock is mutated only through ReduceStock, which enforces the
// non-negativity invariant; availability is derived from the stock level.
package product
