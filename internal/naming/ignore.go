package naming

// IgnoreSet holds names that are never treated as media.
type IgnoreSet map[string]struct{}

// NewIgnoreSet builds an IgnoreSet from names.
func NewIgnoreSet(names ...string) IgnoreSet {
	set := make(IgnoreSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// Contains reports whether name is ignored. Comparison is exact.
func (s IgnoreSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}
