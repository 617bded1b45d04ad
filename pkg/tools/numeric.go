package tools

import (
	"errors"
	"math/big"
	"sort"
	"sync"
)

// Interval is an inclusive [Lo, Hi] integer range.
type Interval struct {
	Lo, Hi int
}

// MergeIntervals sorts intervals by start and coalesces overlapping or
// touching ranges into the minimal covering set.
func MergeIntervals(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}
	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Lo < sorted[j].Lo })

	merged := []Interval{sorted[0]}
	for _, cur := range sorted[1:] {
		last := &merged[len(merged)-1]
		if cur.Lo <= last.Hi {
			if cur.Hi > last.Hi {
				last.Hi = cur.Hi
			}
		} else {
			merged = append(merged, cur)
		}
	}
	return merged
}

// ErrNoInverse is returned by CRT when the moduli are not pairwise coprime.
var ErrNoInverse = errors.New("tools: moduli are not pairwise coprime")

// CRT solves x ≡ a[i] (mod n[i]) for pairwise-coprime moduli via the
// Chinese Remainder Theorem, returning the smallest non-negative solution.
func CRT(n, a []int64) (int64, error) {
	if len(n) != len(a) {
		return 0, errors.New("tools: CRT needs equally many moduli and residues")
	}
	prod := big.NewInt(1)
	for _, ni := range n {
		prod.Mul(prod, big.NewInt(ni))
	}
	sum := new(big.Int)
	for i := range n {
		p := new(big.Int).Div(prod, big.NewInt(n[i]))
		pModN := new(big.Int).Mod(p, big.NewInt(n[i]))
		inv, ok := modInverse(pModN.Int64(), n[i])
		if !ok {
			return 0, ErrNoInverse
		}
		term := new(big.Int).Mul(big.NewInt(a[i]), p)
		term.Mul(term, big.NewInt(inv))
		sum.Add(sum, term)
	}
	return sum.Mod(sum, prod).Int64(), nil
}

// modInverse returns a^-1 mod m via the extended Euclidean algorithm.
func modInverse(a, m int64) (int64, bool) {
	g, x, _ := extGCD(((a%m)+m)%m, m)
	if g != 1 {
		return 0, false
	}
	return ((x % m) + m) % m, true
}

func extGCD(a, b int64) (g, x, y int64) {
	if a == 0 {
		return b, 0, 1
	}
	g, x1, y1 := extGCD(b%a, a)
	return g, y1 - (b/a)*x1, x1
}

// Memoize wraps fn with a cache keyed by argument. The wrapper is safe for
// concurrent use; fn may run more than once for the same key under races
// but the cached result is stable.
func Memoize[K comparable, V any](fn func(K) V) func(K) V {
	var mu sync.RWMutex
	cache := map[K]V{}
	return func(k K) V {
		mu.RLock()
		v, ok := cache[k]
		mu.RUnlock()
		if ok {
			return v
		}
		v = fn(k)
		mu.Lock()
		cache[k] = v
		mu.Unlock()
		return v
	}
}
