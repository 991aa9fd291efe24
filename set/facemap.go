package set

import (
	"github.com/benbjohnson/immutable"
)

// Slot sentinels. A fresh Slot reads Unknown until the caller assigns a node
// index or marks it Unwanted.
const (
	Unknown  = -1 // face never seen
	Unwanted = -2 // face seen and rejected by a cut
)

// Slot is a stable handle to the index stored for one face in a FaceMap.
// Handles stay valid for the lifetime of the map; writing through a Slot
// updates the map.
type Slot struct {
	index int
}

// Index returns the stored node index, Unknown or Unwanted.
func (s *Slot) Index() int { return s.index }

// IsUnknown reports whether the face has never been assigned.
func (s *Slot) IsUnknown() bool { return s.index == Unknown }

// IsUnwanted reports whether the face was rejected earlier.
func (s *Slot) IsUnwanted() bool { return s.index == Unwanted }

// SetIndex stores a node index (must be >= 0).
func (s *Slot) SetIndex(i int) { s.index = i }

// MarkUnwanted records that the face was rejected.
func (s *Slot) MarkUnwanted() { s.index = Unwanted }

// intComparer orders trie keys.
type intComparer struct{}

func (intComparer) Compare(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

// trieNode is one level of the face trie: the path from the root spells a
// sorted face prefix; slot is non-nil once the exact prefix was looked up.
type trieNode struct {
	children *immutable.SortedMap[int, *trieNode]
	slot     *Slot
}

func newTrieNode() *trieNode {
	return &trieNode{children: immutable.NewSortedMap[int, *trieNode](intComparer{})}
}

// FaceMap maps faces to node indices. It is keyed incrementally by the sorted
// elements of a face, so two faces sharing a prefix share the path to it and
// no full Set key is ever hashed or copied.
//
// Complexity: Find is O(|face| · log d) where d is the fan-out at each level.
//
// A FaceMap is single-owner and not safe for concurrent use.
type FaceMap struct {
	root  *trieNode
	slots int
}

// NewFaceMap returns an empty map.
func NewFaceMap() *FaceMap {
	return &FaceMap{root: newTrieNode()}
}

// Find returns the slot for face, creating an Unknown slot on first sight.
func (m *FaceMap) Find(face Set) *Slot {
	cur := m.root
	for _, x := range face {
		next, ok := cur.children.Get(x)
		if !ok {
			next = newTrieNode()
			cur.children = cur.children.Set(x, next)
		}
		cur = next
	}
	if cur.slot == nil {
		cur.slot = &Slot{index: Unknown}
		m.slots++
	}

	return cur.slot
}

// Lookup returns the stored index without creating a slot; ok is false when
// the face was never passed to Find.
func (m *FaceMap) Lookup(face Set) (int, bool) {
	cur := m.root
	for _, x := range face {
		next, ok := cur.children.Get(x)
		if !ok {
			return Unknown, false
		}
		cur = next
	}
	if cur.slot == nil {
		return Unknown, false
	}

	return cur.slot.index, true
}

// Len returns the number of faces ever looked up with Find.
func (m *FaceMap) Len() int { return m.slots }

// Each visits every face with a slot in lexicographic order.
func (m *FaceMap) Each(fn func(face Set, index int)) {
	var walk func(n *trieNode, prefix Set)
	walk = func(n *trieNode, prefix Set) {
		if n.slot != nil {
			fn(prefix.clone(), n.slot.index)
		}
		itr := n.children.Iterator()
		for !itr.Done() {
			k, child, _ := itr.Next()
			walk(child, append(prefix, k))
		}
	}
	walk(m.root, Set{})
}
