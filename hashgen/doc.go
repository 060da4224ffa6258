// Package hashgen implements RandHashGen, the random XOR hash function
// generator the PHF engine and outer driver use to try candidate hash
// functions.
//
// Its PRNG substrate is a siphash-2-4 keyed hash run in counter mode
// (github.com/dchest/siphash, carried over from the retrieved pack's
// SnellerInc-sneller stack), rather than math/rand: a seed produces the
// same stream of draws independent of process or platform, the way the
// source material's dedicated RandGen class does.
package hashgen
