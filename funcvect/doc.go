// Package funcvect defines FuncVect, the dense vector-id -> hash-value
// array produced by evaluating one InputFunc over an entire RegVec store.
package funcvect
