package helper

import "time"

// Timer は経過時間を測る。NewTimer の時点から計測を開始する。
type Timer struct {
	begin time.Time
}

func NewTimer() *Timer {
	return &Timer{begin: time.Now()}
}

func (t *Timer) Reset() {
	t.begin = time.Now()
}

func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.begin)
}

// ElapsedSeconds は経過時間を秒で返す。
func (t *Timer) ElapsedSeconds() float64 {
	return t.Elapsed().Seconds()
}

// Measure は fn の実行にかかった時間を返す。
func (t *Timer) Measure(fn func()) time.Duration {
	t.Reset()
	fn()
	return t.Elapsed()
}
