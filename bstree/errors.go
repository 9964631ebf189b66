package bstree

import "github.com/pkg/errors"

var (
	// ErrKeyNotFound は検索したキーがツリーに存在しない（またはツリーが空である）ことを示す。
	ErrKeyNotFound = errors.New("bstree: key not found")

	// ErrIteratorEnd はイテレータが終端にある状態で参照・移動しようとしたことを示す。
	// ErrKeyNotFound をラップしているので errors.Is(err, ErrKeyNotFound) も真になる。
	ErrIteratorEnd = errors.Wrap(ErrKeyNotFound, "bstree: iterator not positioned")
)

func keyNotFound(key interface{}) error {
	return errors.Wrapf(ErrKeyNotFound, "key %v", key)
}
