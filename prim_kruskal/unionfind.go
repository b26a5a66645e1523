package prim_kruskal

// UnionFind is a disjoint-set forest over vertex IDs with path compression.
// The zero value is not usable; create one with NewUnionFind.
type UnionFind struct {
	parent map[string]string
}

// NewUnionFind returns a UnionFind where every id is its own singleton set.
func NewUnionFind(ids []string) *UnionFind {
	parent := make(map[string]string, len(ids))
	for _, id := range ids {
		parent[id] = id
	}

	return &UnionFind{parent: parent}
}

// Find returns the representative of id's set, compressing the path it
// walked. An unknown id is added as a singleton.
func (u *UnionFind) Find(id string) string {
	if _, ok := u.parent[id]; !ok {
		u.parent[id] = id
		return id
	}
	root := id
	for u.parent[root] != root {
		root = u.parent[root]
	}
	// Path compression: point every vertex on the walk straight at root.
	for id != root {
		next := u.parent[id]
		u.parent[id] = root
		id = next
	}

	return root
}

// Union merges the sets of a and b by attaching root(b) under root(a). It
// reports false when a and b were already in the same set.
func (u *UnionFind) Union(a, b string) bool {
	ra, rb := u.Find(a), u.Find(b)
	if ra == rb {
		return false
	}
	u.parent[rb] = ra

	return true
}

// Connected reports whether a and b are in the same set.
func (u *UnionFind) Connected(a, b string) bool {
	return u.Find(a) == u.Find(b)
}
