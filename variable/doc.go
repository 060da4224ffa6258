// Package variable implements Variable and InputFunc: the classifiers the
// solver selects and the hash functions built from them.
//
// A Variable is an unordered, deduplicated, nonempty set of input-bit
// positions; it classifies a vector.RegVec to the parity of the selected
// bits. An InputFunc is a tagged variant over {VarFunc, XorFunc} — both
// are, mechanically, p independent Variables packed into one p-bit output —
// rather than an interface with two implementations, following the source
// material's preference for a flat dispatch over virtual calls.
package variable
