package bench

import "sort"

// Defaultdb は比較用の素朴なマップ実装。
type Defaultdb struct {
	mp map[int]int
}

func NewDefaultdb() *Defaultdb {
	return &Defaultdb{mp: make(map[int]int)}
}

func (db *Defaultdb) Get(key int) (int, bool) {
	value, ok := db.mp[key]
	return value, ok
}

func (db *Defaultdb) Set(key int, value int) {
	db.mp[key] = value
}

func (db *Defaultdb) Delete(key int) {
	delete(db.mp, key)
}

func (db *Defaultdb) Close() {
	db.mp = nil
}

func (db *Defaultdb) Len() int {
	return len(db.mp)
}

// Keys は昇順に並べたキーを返す。ツリーの中間順走査と比べるためにソートが必要。
func (db *Defaultdb) Keys() []int {
	keys := make([]int, 0, len(db.mp))
	for key := range db.mp {
		keys = append(keys, key)
	}
	sort.Ints(keys)
	return keys
}
