package utils

import "math"

// CreateRankList numbers already sorted items from 1.
// Ranks saturate at math.MaxUint16 for very long lists.
func CreateRankList[T any](items []T) []uint16 {
	ranks := make([]uint16, len(items))
	for i := range items {
		ranks[i] = uint16(min(i+1, math.MaxUint16))
	}
	return ranks
}
