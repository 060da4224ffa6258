// Package regvec implements RvMgr, the exclusive owner of the registered
// vector set: it parses the vector-dump format, deduplicates lines, assigns
// dense ids, and evaluates InputFuncs over the stored vectors to produce
// FuncVects.
//
// RvMgr is created empty, filled by a single Load call, and read-only
// thereafter — mirroring the teacher's core.Graph lifecycle (construct,
// mutate under a documented contract, then query) but without the need for
// locking: an RvMgr is never mutated concurrently with reads (see §5 of the
// specification this module implements).
package regvec
