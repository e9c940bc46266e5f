package purefn

import "math"

// Tableize memoizes a pure variadic function by its argument vector.
// Successful results are cached in a Trie bounded by maxTableSize; errors pass
// through uncached. Calls with no arguments are never cached.
func Tableize[I comparable, O any](
	pureFn func(...I) (O, error),
	maxTableSize uint32,
) func(...I) (O, error) {
	memo := NewTrie[I, O](maxTableSize)
	return func(args ...I) (O, error) {
		if len(args) == 0 {
			return pureFn()
		}
		if v, ok := memo.Load(args); ok {
			return v, nil
		}
		v, err := pureFn(args...)
		if err != nil {
			return v, err
		}
		memo.Store(args, v)
		return v, nil
	}
}

// TableizeFloat64 is Tableize over float64 argument vectors.
//
// float64 keys are compared with ==, which makes NaN unequal to itself and would
// leak a fresh entry per call; vectors holding NaN bypass the table.
func TableizeFloat64[O any](
	pureFn func(...float64) (O, error),
	maxTableSize uint32,
) func(...float64) (O, error) {
	tableized := Tableize(pureFn, maxTableSize)
	return func(args ...float64) (O, error) {
		for _, a := range args {
			if math.IsNaN(a) {
				return pureFn(args...)
			}
		}
		return tableized(args...)
	}
}
