package bstree

import (
	"golang.org/x/exp/constraints"
)

type (
	// Treeは、平衡化を行わない二分探索木による順序付きマップである。
	// 木の形は挿入順だけで決まる。複数のゴルーチンから同時に使うことは想定していない。
	Tree[K constraints.Ordered, V any] struct {
		root    handle
		length  int
		nodes   *arena[K, V]
		visited int
	}

	// ItemIteratorは、Ascend/Descend の呼び出し元がツリーを順番に走査することを可能にします。
	// この関数が false を返すと、走査はその場で終了します。
	ItemIterator[K constraints.Ordered, V any] func(key K, value V) bool

	side int
)

const (
	leftSide side = iota
	rightSide
)

func New[K constraints.Ordered, V any]() *Tree[K, V] {
	return NewWithCapacity[K, V](0)
}

// NewWithCapacity は、size 個分のノードスロットをあらかじめ確保した空のツリーを作成します。
func NewWithCapacity[K constraints.Ordered, V any](size int) *Tree[K, V] {
	return &Tree[K, V]{
		root:  nilHandle,
		nodes: newArena[K, V](size),
	}
}

func (t *Tree[K, V]) node(h handle) *node[K, V] {
	return t.nodes.get(h)
}

func (t *Tree[K, V]) child(h handle, s side) handle {
	if s == leftSide {
		return t.node(h).left
	}
	return t.node(h).right
}

// link は parent の s 側に c を付け替える。parent が nilHandle ならルートを置き換える。
func (t *Tree[K, V]) link(parent handle, s side, c handle) {
	switch {
	case parent == nilHandle:
		t.root = c
	case s == leftSide:
		t.node(parent).left = c
	default:
		t.node(parent).right = c
	}
}

// Insert は、与えられたキーと値をツリーに追加する。同じキーがすでにある場合は何も変更せずに false を返す。
func (t *Tree[K, V]) Insert(key K, value V) bool {
	t.visited = 0
	if t.root == nilHandle {
		t.root = t.nodes.newNode(key, value)
		t.length++
		return true
	}

	parent, s := nilHandle, leftSide
	for cur := t.root; cur != nilHandle; {
		t.visited++
		n := t.node(cur)
		parent = cur
		switch {
		case key == n.key:
			return false
		case key < n.key:
			cur, s = n.left, leftSide
		default:
			cur, s = n.right, rightSide
		}
	}

	t.link(parent, s, t.nodes.newNode(key, value))
	t.length++
	return true
}

// find は key を持つノードとその親、親から見た向きを返す。見つからなければ cur は nilHandle。
func (t *Tree[K, V]) find(key K) (cur, parent handle, s side) {
	t.visited = 0
	cur, parent, s = t.root, nilHandle, leftSide
	for cur != nilHandle {
		t.visited++
		n := t.node(cur)
		if key == n.key {
			return
		}
		parent = cur
		if key < n.key {
			cur, s = n.left, leftSide
		} else {
			cur, s = n.right, rightSide
		}
	}
	return
}

// Remove は、key に等しいキーを持つ項目をツリーから削除する。そのような項目がなければ false を返す。
//
// 子が2つあるノードを削除する場合、ノード自体は木の中に残し、
// 右部分木の最小ノード（後継）のキーと値をコピーしてから後継ノードを取り除く。
func (t *Tree[K, V]) Remove(key K) bool {
	cur, parent, s := t.find(key)
	if cur == nilHandle {
		return false
	}

	n := t.node(cur)
	if n.left != nilHandle && n.right != nilHandle {
		succ, succParent, succSide := n.right, cur, rightSide
		for t.node(succ).left != nilHandle {
			t.visited++
			succParent, succSide = succ, leftSide
			succ = t.node(succ).left
		}
		sn := t.node(succ)
		n.key, n.value = sn.key, sn.value
		// 後継には左の子がないので、0個または1個の子のケースに帰着する。
		cur, parent, s = succ, succParent, succSide
		n = sn
	}

	repl := n.left
	if repl == nilHandle {
		repl = n.right
	}
	t.link(parent, s, repl)
	t.nodes.freeNode(cur)
	t.length--
	return true
}

// At は key に対応する値を返す。ツリーが空、またはキーが存在しない場合は ErrKeyNotFound を返す。
func (t *Tree[K, V]) At(key K) (V, error) {
	ref, err := t.Ref(key)
	if err != nil {
		var zero V
		return zero, err
	}
	return *ref, nil
}

// Ref は key に対応する値へのポインタを返す。書き換えはツリーにそのまま反映される。
// ポインタは次の Remove または Clear まで有効。
func (t *Tree[K, V]) Ref(key K) (*V, error) {
	if t.root == nilHandle {
		t.visited = 0
		return nil, keyNotFound(key)
	}
	cur, _, _ := t.find(key)
	if cur == nilHandle {
		return nil, keyNotFound(key)
	}
	return &t.node(cur).value, nil
}

// Has は与えられたキーがツリー内にある場合に true を返します。
func (t *Tree[K, V]) Has(key K) bool {
	cur, _, _ := t.find(key)
	return cur != nilHandle
}

// Len は、現在ツリーにある項目の数を返します。
func (t *Tree[K, V]) Len() int {
	return t.length
}

func (t *Tree[K, V]) IsEmpty() bool {
	return t.length == 0
}

// Visited は直前の Insert / Remove / At / Ref / Has が調べたノード数を返す。
func (t *Tree[K, V]) Visited() int {
	return t.visited
}

// Clear は、ツリーからすべての項目を削除します。各ノードは freelist に戻され、以降の Insert で再利用されます。
func (t *Tree[K, V]) Clear() {
	if t.root != nilHandle {
		stack := []handle{t.root}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			n := t.node(cur)
			if n.left != nilHandle {
				stack = append(stack, n.left)
			}
			if n.right != nilHandle {
				stack = append(stack, n.right)
			}
			t.nodes.freeNode(cur)
		}
	}
	t.root, t.length, t.visited = nilHandle, 0, 0
}

// Clone はツリーの完全な複製を作成します。再挿入は行わず、元の木の形（左右の構造）をそのまま写します。
// 戻り値のツリーは元のツリーとノードを一切共有しません。
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	out := NewWithCapacity[K, V](t.length)
	if t.root == nilHandle {
		return out
	}

	type work struct {
		src    handle
		parent handle
		s      side
	}
	stack := []work{{src: t.root, parent: nilHandle}}
	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.node(w.src)
		dst := out.nodes.newNode(n.key, n.value)
		out.link(w.parent, w.s, dst)

		if n.right != nilHandle {
			stack = append(stack, work{src: n.right, parent: dst, s: rightSide})
		}
		if n.left != nilHandle {
			stack = append(stack, work{src: n.left, parent: dst, s: leftSide})
		}
	}
	out.length = t.length
	return out
}

// min は h をルートとする部分木の最小ノードを返す。
func (t *Tree[K, V]) min(h handle) handle {
	if h == nilHandle {
		return nilHandle
	}
	for t.node(h).left != nilHandle {
		h = t.node(h).left
	}
	return h
}

// max は h をルートとする部分木の最大ノードを返す。
func (t *Tree[K, V]) max(h handle) handle {
	if h == nilHandle {
		return nilHandle
	}
	for t.node(h).right != nilHandle {
		h = t.node(h).right
	}
	return h
}

// Minは，木の中で最も小さい項目を返し，木が空の場合は ok=false を返す。
func (t *Tree[K, V]) Min() (key K, value V, ok bool) {
	if h := t.min(t.root); h != nilHandle {
		return t.node(h).key, t.node(h).value, true
	}
	return
}

// Maxは，木の中で最大の項目を返し，木が空であれば ok=false を返す。
func (t *Tree[K, V]) Max() (key K, value V, ok bool) {
	if h := t.max(t.root); h != nilHandle {
		return t.node(h).key, t.node(h).value, true
	}
	return
}

// walk は中間順（dir が leftSide なら昇順、rightSide なら降順）にノードを訪れ、iter が false を返したら止まる。
func (t *Tree[K, V]) walk(dir side, iter ItemIterator[K, V]) {
	near, far := leftSide, rightSide
	if dir == rightSide {
		near, far = rightSide, leftSide
	}
	var stack []handle
	cur := t.root
	for cur != nilHandle || len(stack) > 0 {
		if cur != nilHandle {
			stack = append(stack, cur)
			cur = t.child(cur, near)
			continue
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.node(cur)
		if !iter(n.key, n.value) {
			return
		}
		cur = t.child(cur, far)
	}
}

// Ascend は、[first, last] の範囲内にあるツリーのすべての値に対して、iterator が false を返すまで iterator を呼び出します。
func (t *Tree[K, V]) Ascend(iterator ItemIterator[K, V]) {
	t.walk(leftSide, iterator)
}

// Descend calls the iterator for every value in the tree within the range [last, first], until iterator returns false.
func (t *Tree[K, V]) Descend(iterator ItemIterator[K, V]) {
	t.walk(rightSide, iterator)
}

// Keys は、すべてのキーを昇順（L -> t -> R）で返す。
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.length)
	t.Ascend(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// ExternalPathLength は外部路長を返す。葉（子のないノード）の深さ（ルートは0）を合計する。
func (t *Tree[K, V]) ExternalPathLength() int {
	return t.pathLength(func(n *node[K, V]) bool {
		return n.left == nilHandle && n.right == nilHandle
	})
}

// UnfilledPathLength は子が2つ未満のノード（葉と子が1つのノード）の深さを合計する。
// 子を1つだけ持つノードも数える点で ExternalPathLength と異なる。
func (t *Tree[K, V]) UnfilledPathLength() int {
	return t.pathLength(func(n *node[K, V]) bool {
		return n.left == nilHandle || n.right == nilHandle
	})
}

func (t *Tree[K, V]) pathLength(counts func(n *node[K, V]) bool) int {
	if t.root == nilHandle {
		return 0
	}
	type entry struct {
		h     handle
		depth int
	}
	total := 0
	stack := []entry{{h: t.root}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.node(e.h)
		if counts(n) {
			total += e.depth
		}
		if n.left != nilHandle {
			stack = append(stack, entry{h: n.left, depth: e.depth + 1})
		}
		if n.right != nilHandle {
			stack = append(stack, entry{h: n.right, depth: e.depth + 1})
		}
	}
	return total
}

// Height は木の段数を返す。空の木は0、ルートだけなら1。
func (t *Tree[K, V]) Height() int {
	if t.root == nilHandle {
		return 0
	}
	type entry struct {
		h     handle
		level int
	}
	height := 0
	stack := []entry{{h: t.root, level: 1}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if e.level > height {
			height = e.level
		}
		n := t.node(e.h)
		if n.left != nilHandle {
			stack = append(stack, entry{h: n.left, level: e.level + 1})
		}
		if n.right != nilHandle {
			stack = append(stack, entry{h: n.right, level: e.level + 1})
		}
	}
	return height
}
