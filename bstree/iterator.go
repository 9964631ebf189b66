package bstree

import "golang.org/x/exp/constraints"

// Iterator は中間順の双方向カーソル。ツリーへの参照と現在のノードだけを持ち、ノードを所有しない。
//
// ノードは親へのリンクを持たないので、子をたどれないときはルートから探索し直して
// 後継・前任を求める。1ステップあたり O(depth) かかる。
type Iterator[K constraints.Ordered, V any] struct {
	tree *Tree[K, V]
	cur  handle
}

// Begin は最小のキーを持つノードを指すイテレータを返す。空のツリーなら End と等しい。
func (t *Tree[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{tree: t, cur: t.min(t.root)}
}

// RBegin は最大のキーを持つノードを指すイテレータを返す。
func (t *Tree[K, V]) RBegin() Iterator[K, V] {
	return Iterator[K, V]{tree: t, cur: t.max(t.root)}
}

func (t *Tree[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{tree: t, cur: nilHandle}
}

// Valid はイテレータがノードを指している場合に true を返す。
func (it Iterator[K, V]) Valid() bool {
	return it.tree != nil && it.cur != nilHandle
}

func (it Iterator[K, V]) Key() (K, error) {
	if !it.Valid() {
		var zero K
		return zero, ErrIteratorEnd
	}
	return it.tree.node(it.cur).key, nil
}

// Value は現在のノードの値を返す。
func (it Iterator[K, V]) Value() (V, error) {
	ref, err := it.Ref()
	if err != nil {
		var zero V
		return zero, err
	}
	return *ref, nil
}

// Ref は現在のノードの値へのポインタを返す。
func (it Iterator[K, V]) Ref() (*V, error) {
	if !it.Valid() {
		return nil, ErrIteratorEnd
	}
	return &it.tree.node(it.cur).value, nil
}

// Next は後継ノードへ進む。後継がなければ End になる。
func (it *Iterator[K, V]) Next() error {
	if !it.Valid() {
		return ErrIteratorEnd
	}
	it.cur = it.tree.neighbor(it.cur, rightSide)
	return nil
}

// Prev は前任ノードへ戻る。前任がなければ End になる。
func (it *Iterator[K, V]) Prev() error {
	if !it.Valid() {
		return ErrIteratorEnd
	}
	it.cur = it.tree.neighbor(it.cur, leftSide)
	return nil
}

// Equal は両方が終端にあるか、同じツリーの同じノードを指しているときに true を返す。
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	if !it.Valid() && !other.Valid() {
		return true
	}
	return it.tree == other.tree && it.cur == other.cur
}

// neighbor は h の隣（s が rightSide なら後継、leftSide なら前任）を返す。
func (t *Tree[K, V]) neighbor(h handle, s side) handle {
	if c := t.child(h, s); c != nilHandle {
		if s == rightSide {
			return t.min(c)
		}
		return t.max(c)
	}

	// ルートから降りながら、h が逆側の部分木に入る最後の祖先を覚えておく。
	key := t.node(h).key
	found := nilHandle
	for cur := t.root; cur != nilHandle && cur != h; {
		n := t.node(cur)
		if key < n.key {
			if s == rightSide {
				found = cur
			}
			cur = n.left
		} else {
			if s == leftSide {
				found = cur
			}
			cur = n.right
		}
	}
	return found
}
