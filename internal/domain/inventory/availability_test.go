package inventory

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func days(codes ...int) []DayAvailability {
	out := make([]DayAvailability, 0, len(codes))
	for _, c := range codes {
		out = append(out, DayAvailability{Status: c})
	}
	return out
}

func TestFullyAvailable(t *testing.T) {
	require.True(t, FullyAvailable(days(5, 5, 5), 5))
	require.False(t, FullyAvailable(days(5, 5, 3), 5), "partial availability is rejected")
	require.False(t, FullyAvailable(days(), 5), "empty range never qualifies")
	require.False(t, FullyAvailable(nil, 5))
}

func TestEvaluateAvailability(t *testing.T) {
	roofed := map[int]Resource{
		10: {ID: 10, CategoryID: 4, Name: "Birch Cabin"},
		11: {ID: 11, CategoryID: 4, Name: "Maple Cabin"},
	}
	daily := map[int][]DayAvailability{
		10: days(5, 5, 5),
		11: days(5, 3, 5), // one booked night disqualifies
		12: days(5, 5, 5), // not roofed
	}

	got := EvaluateAvailability(daily, roofed, 5)
	require.Len(t, got, 1)
	require.Equal(t, AvailableResource{ResourceID: 10, Name: "Birch Cabin", CategoryID: 4}, got[0])
}

func TestEvaluateAvailability_CustomCode(t *testing.T) {
	roofed := map[int]Resource{20: {ID: 20, CategoryID: 9, Name: "Yurt 3"}}
	daily := map[int][]DayAvailability{20: days(7, 7)}
	require.Empty(t, EvaluateAvailability(daily, roofed, 5))
	require.Len(t, EvaluateAvailability(daily, roofed, 7), 1)
}

func TestEvaluateAvailability_Idempotent(t *testing.T) {
	roofed := map[int]Resource{
		1: {ID: 1, CategoryID: 4, Name: "A"},
		2: {ID: 2, CategoryID: 4, Name: "B"},
	}
	daily := map[int][]DayAvailability{1: days(5), 2: days(5)}

	first := EvaluateAvailability(daily, roofed, 5)
	second := EvaluateAvailability(daily, roofed, 5)
	sort.Slice(first, func(i, j int) bool { return first[i].Name < first[j].Name })
	sort.Slice(second, func(i, j int) bool { return second[i].Name < second[j].Name })
	require.Equal(t, first, second)
}
