// Package purefn provides memoization for pure numeric functions such as area formulas.
//
// Tableize is not just a utility to add memoization.
// Tableize is a tool that *forces the developer to ask*:
//
//	→ "Is this area formula really pure?"
//	→ "Can it be treated as a lazy table of dimensions to areas?"
//
// Fractal sequences evaluate the same formula on the same scaled dimensions over and
// over: every SumArea call regenerates its sequence, and sweeps over iteration counts
// share their prefixes. A tableized formula answers those repeats from memory.
//
// Features:
//   - Tableize: memoizes a variadic func(...I) (O, error) keyed by its arguments.
//   - Trie-based bounded cache with dual-map rotation.
//   - Errors are never cached; a failing call is retried on the next lookup.
//   - Safe for concurrent use.
//
// WARNING: Do not use Tableize on impure functions (e.g., those depending on time, I/O, etc).
package purefn
