package bstree

import (
	"fmt"
	"io"

	"github.com/xlab/treeprint"
)

// テスト/デバッグのために使用されます。
// 右の子を左の子より先に表示し、各枝に L/R の印を付ける。
func (t *Tree[K, V]) render() treeprint.Tree {
	if t.root == nilHandle {
		return treeprint.NewWithRoot("(empty)")
	}

	type entry struct {
		h      handle
		branch treeprint.Tree
	}
	root := t.node(t.root)
	out := treeprint.NewWithRoot(label(root.key, root.value))
	stack := []entry{{h: t.root, branch: out}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.node(e.h)
		if n.right != nilHandle {
			c := t.node(n.right)
			stack = append(stack, entry{h: n.right, branch: e.branch.AddMetaBranch("R", label(c.key, c.value))})
		}
		if n.left != nilHandle {
			c := t.node(n.left)
			stack = append(stack, entry{h: n.left, branch: e.branch.AddMetaBranch("L", label(c.key, c.value))})
		}
	}
	return out
}

func label(key, value interface{}) string {
	return fmt.Sprintf("%v: %v", key, value)
}

// String は木の形をテキストで返す。
func (t *Tree[K, V]) String() string {
	return t.render().String()
}

// Print は木の形を w に書き出す。
func (t *Tree[K, V]) Print(w io.Writer) error {
	_, err := io.WriteString(w, t.String())
	return err
}
