package patch

import "maps"

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// MergeMap returns a copy of base with every entry of overlay written over it.
func MergeMap[K comparable, V any](base, overlay map[K]V) map[K]V {
	out := make(map[K]V, len(base)+len(overlay))
	maps.Copy(out, base)
	maps.Copy(out, overlay)
	return out
}
