package recipe

import (
	"math/rand"
	"slices"
	"time"
)

// Rand 食譜組合所用的隨機來源
//
// *math/rand.Rand 即可滿足；測試可注入固定序列。
// 同一個 Rand 不可在多個 goroutine 間共用。
type Rand interface {
	Intn(n int) int
}

// NewRand 以目前時間為種子建立隨機來源
func NewRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// pick 從清單中均勻挑選一項，清單為空時回傳空字串
func pick(rng Rand, items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[rng.Intn(len(items))]
}

// pickSome 不放回抽樣最多 n 項
func pickSome(rng Rand, items []string, n int) []string {
	pool := slices.Clone(items)
	out := make([]string, 0, min(n, len(pool)))
	for len(pool) > 0 && len(out) < n {
		i := rng.Intn(len(pool))
		out = append(out, pool[i])
		pool = slices.Delete(pool, i, i+1)
	}
	return out
}
