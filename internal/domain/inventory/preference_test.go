package inventory

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchPreference_ExactCaseInsensitive(t *testing.T) {
	idx, ok := MatchPreference("Birch Cabin", []string{"Site 12", "birch cabin"})
	require.True(t, ok)
	require.Equal(t, 1, idx)
}

func TestMatchPreference_NumericToken(t *testing.T) {
	idx, ok := MatchPreference("Site 472", []string{"472"})
	require.True(t, ok)
	require.Equal(t, 0, idx)
}

func TestMatchPreference_NoDigitsNoFalseMatch(t *testing.T) {
	// neither side has digits, and names differ: no match
	_, ok := MatchPreference("Birch Cabin", []string{"Maple Cabin"})
	require.False(t, ok)
}

func TestMatchPreference_EmptyPreferences(t *testing.T) {
	_, ok := MatchPreference("Site 472", nil)
	require.False(t, ok)
}

func TestBestMatch_LowestIndexWins(t *testing.T) {
	available := []AvailableResource{
		{ResourceID: 2, Name: "Birch Cabin"},
		{ResourceID: 1, Name: "Site 472"},
	}
	m, ok := BestMatch(available, []string{"472", "Birch Cabin"})
	require.True(t, ok)
	require.Equal(t, 0, m.PreferenceIndex)
	require.Equal(t, "Site 472", m.Resource.Name)
}

func TestBestMatch_TieKeepsInputOrder(t *testing.T) {
	available := []AvailableResource{
		{ResourceID: 1, Name: "Cabin 7"},
		{ResourceID: 2, Name: "Site 7"},
	}
	// both extract digits "7" and match preference index 0
	m, ok := BestMatch(available, []string{"7"})
	require.True(t, ok)
	require.Equal(t, 1, m.Resource.ResourceID)
}

func TestBestMatch_NoMatch(t *testing.T) {
	available := []AvailableResource{{ResourceID: 1, Name: "Site 9"}}
	_, ok := BestMatch(available, []string{"472"})
	require.False(t, ok)
}
