// Package edge implements the fixed-size packed directed-edge record stored
// in the edge array of a routable graph tile.
//
// One record packs roughly forty attributes (geometry, speeds, access
// permissions, turn semantics, hierarchy links) into 56 bytes so that a
// country-scale graph can be memory-mapped and traversed with minimal I/O
// and cache pressure. Every field has a narrow bit budget, several fields
// share machine words, and slope/grade use non-linear quantization to extend
// range within a few bits.
//
// # Mutation discipline
//
// Records are populated field-by-field by a single-threaded tile builder and
// become immutable once serialized into a tile. Setters are total over their
// input domain: out-of-range values are clamped or masked to a legal value,
// per-index operations with a bad index are no-ops, and in both cases the
// setter returns a *Diagnostic describing the correction instead of logging.
// The one exception is SetEdgeInfoOffset, whose overflow indicates
// unrecoverable upstream corruption and returns an error.
//
// Getters perform no mutation and no allocation, so any number of concurrent
// readers may share one mapped record without synchronization.
//
// # Layout stability
//
// The bit layout is append-only across format versions: existing field
// positions are never repurposed, new fields may only consume reserved bits.
// Two independently compiled readers must interpret an identical byte
// sequence identically.
package edge
