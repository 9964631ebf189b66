package helper

import (
	"math/rand"
	"time"
)

// Random は一様分布の整数を返す乱数源。
type Random struct {
	r *rand.Rand
}

// NewRandom は seed で初期化した乱数源を返す。seed が 0 の場合は現在時刻を使う。
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Random{r: rand.New(rand.NewSource(seed))}
}

// NextInt は [min, max] の範囲（両端を含む）の整数を返す。min > max の場合はパニックになる。
func (r *Random) NextInt(min, max int) int {
	if min > max {
		panic("helper: NextInt called with min > max")
	}
	return min + int(r.r.Int63n(int64(max)-int64(min)+1))
}

// Perm は [0, n) の並べ替えを返す。
func (r *Random) Perm(n int) []int {
	return r.r.Perm(n)
}
