package tree

import (
	"github.com/Natali-Skv/forum_tree/internal/store"
	"github.com/Natali-Skv/forum_tree/internal/tools/errors"
)

type Mode string

const (
	Flat       Mode = "flat"
	Tree       Mode = "tree"
	ParentTree Mode = "parent_tree"
)

// ParseMode maps the sort query parameter. An empty value means flat.
func ParseMode(raw string) (Mode, error) {
	switch Mode(raw) {
	case "", Flat:
		return Flat, nil
	case Tree:
		return Tree, nil
	case ParentTree:
		return ParentTree, nil
	}
	return "", errors.ErrUnknownSort
}

// scan is the store primitive a plan runs.
type scan int

const (
	scanPosts scan = iota
	scanGroups
)

// boundary is what the since post contributes to the scan.
type boundary int

const (
	noBoundary boundary = iota
	idBoundary
	pathBoundary
	groupBoundary
)

type planKey struct {
	mode     Mode
	desc     bool
	hasSince bool
}

type plan struct {
	scan     scan
	order    store.PostOrder
	boundary boundary
}

var plans = map[planKey]plan{
	{Flat, false, false}: {scanPosts, store.OrderByID, noBoundary},
	{Flat, false, true}:  {scanPosts, store.OrderByID, idBoundary},
	{Flat, true, false}:  {scanPosts, store.OrderByID, noBoundary},
	{Flat, true, true}:   {scanPosts, store.OrderByID, idBoundary},

	{Tree, false, false}: {scanPosts, store.OrderByPath, noBoundary},
	{Tree, false, true}:  {scanPosts, store.OrderByPath, pathBoundary},
	{Tree, true, false}:  {scanPosts, store.OrderByPath, noBoundary},
	{Tree, true, true}:   {scanPosts, store.OrderByPath, pathBoundary},

	{ParentTree, false, false}: {scanGroups, store.OrderByPath, noBoundary},
	{ParentTree, false, true}:  {scanGroups, store.OrderByPath, groupBoundary},
	{ParentTree, true, false}:  {scanGroups, store.OrderByPath, noBoundary},
	{ParentTree, true, true}:   {scanGroups, store.OrderByPath, groupBoundary},
}

func lookupPlan(mode Mode, desc, hasSince bool) (plan, error) {
	p, ok := plans[planKey{mode, desc, hasSince}]
	if !ok {
		return plan{}, errors.ErrUnknownSort
	}
	return p, nil
}
