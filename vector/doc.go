// Package vector defines RegVec, the immutable registered bit-vector at the
// bottom of the IGU synthesis pipeline.
//
// A RegVec packs n bits into ⌈n/64⌉ 64-bit words and carries a dense id
// assigned by its owning store (see package regvec). Two RegVecs are equal
// iff every bit matches; id does not participate in equality.
package vector
