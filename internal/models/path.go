package models

// Path is a materialized position in a reply tree: the ids of every
// ancestor from the root down to the post itself. Ascending Path order is
// depth-first pre-order, and the subtree of a post is exactly the set of
// paths it prefixes.
type Path []int64

// Compare orders paths lexicographically by component; a proper prefix
// sorts before any of its extensions.
func (p Path) Compare(o Path) int {
	for i := 0; i < len(p) && i < len(o); i++ {
		switch {
		case p[i] < o[i]:
			return -1
		case p[i] > o[i]:
			return 1
		}
	}
	switch {
	case len(p) < len(o):
		return -1
	case len(p) > len(o):
		return 1
	}
	return 0
}

// Child returns a new path extending p by one component.
func (p Path) Child(component int64) Path {
	child := make(Path, len(p), len(p)+1)
	copy(child, p)
	return append(child, component)
}

// Root returns the tree-group component, or 0 for an empty path.
func (p Path) Root() int64 {
	if len(p) == 0 {
		return 0
	}
	return p[0]
}
