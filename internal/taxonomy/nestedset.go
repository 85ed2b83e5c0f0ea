package taxonomy

import (
	"fmt"

	"github.com/audiogrambase/ingest/internal/model"
)

// Index assigns nested-interval bounds to the registered taxonomy tree by
// pre-order traversal from the single phylum root. Children keep registry
// registration order. For any two taxa A and B, A is an ancestor of B exactly
// when A.lft < B.lft and B.rgt < A.rgt; the root gets lft 1 and
// rgt 2*(taxon count)-1.
//
// A missing phylum root is fatal: it means upstream resolution produced a
// malformed tree, and indexing a partial forest would corrupt the bounds of
// every taxon.
func Index(reg *model.Registry) error {
	var root *model.Taxon
	for _, t := range reg.Taxa {
		if t.Rank == "phylum" {
			root = t
			break
		}
	}
	if root == nil {
		return fmt.Errorf("taxonomy has no phylum root, cannot index %d taxa", len(reg.Taxa))
	}

	// One pass to group children by parent; the recursion then never
	// rescans the whole collection.
	children := make(map[int64][]*model.Taxon, len(reg.Taxa))
	for _, t := range reg.Taxa {
		if t.Parent.Valid {
			children[t.Parent.Int64] = append(children[t.Parent.Int64], t)
		}
	}

	assignBounds(root, children, 1)
	return nil
}

// assignBounds sets the bounds of t's subtree, with t.lft = lft, and returns
// the subtree's node count. Each node's rgt closes over its descendants:
// lft + 2*(subtree size - 1), so a leaf collapses to lft == rgt and every
// descendant interval nests strictly inside its ancestors'.
func assignBounds(t *model.Taxon, children map[int64][]*model.Taxon, lft int64) int64 {
	t.Lft = model.Int(lft)
	next := lft + 1
	size := int64(1)
	for _, child := range children[t.OttID] {
		size += assignBounds(child, children, next)
		next = child.Rgt.Int64 + 1
	}
	t.Rgt = model.Int(lft + 2*(size-1))
	return size
}
