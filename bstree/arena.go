package bstree

type (
	// handle はアリーナ内のノードを指す添字。nilHandle は「ノードなし」を表す。
	handle int

	node[K any, V any] struct {
		key   K
		value V
		left  handle
		right handle
	}

	// arena はツリーが排他的に所有するノード置き場。
	// 解放されたスロットは freelist に積まれ、次の newNode で再利用される。
	arena[K any, V any] struct {
		slots    []*node[K, V]
		freelist []handle
	}
)

const (
	nilHandle handle = -1

	DefaultFreeListSize = 32
)

func newArena[K any, V any](size int) *arena[K, V] {
	if size < 0 {
		size = 0
	}
	return &arena[K, V]{
		slots:    make([]*node[K, V], 0, size),
		freelist: make([]handle, 0, DefaultFreeListSize),
	}
}

// newNode は freelist の末尾のスロットを取り出して返す。空なら新しいスロットを追加する。
func (a *arena[K, V]) newNode(key K, value V) handle {
	index := len(a.freelist) - 1
	if index < 0 {
		a.slots = append(a.slots, &node[K, V]{key: key, value: value, left: nilHandle, right: nilHandle})
		return handle(len(a.slots) - 1)
	}
	h := a.freelist[index]
	a.freelist = a.freelist[:index]
	n := a.slots[h]
	n.key, n.value = key, value
	n.left, n.right = nilHandle, nilHandle
	return h
}

// freeNode は与えられたノードを freelist に戻す。key/value はGCのためにゼロ値にする。
func (a *arena[K, V]) freeNode(h handle) {
	var (
		zk K
		zv V
	)
	n := a.slots[h]
	n.key, n.value = zk, zv
	n.left, n.right = nilHandle, nilHandle
	a.freelist = append(a.freelist, h)
}

func (a *arena[K, V]) get(h handle) *node[K, V] {
	return a.slots[h]
}

// live は現在使用中のノード数を返す。
func (a *arena[K, V]) live() int {
	return len(a.slots) - len(a.freelist)
}
