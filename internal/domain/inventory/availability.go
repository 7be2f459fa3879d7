package inventory

// DefaultAvailableCode is the daily status the provider reports for an open
// night. Observed as "Available" in testing.
const DefaultAvailableCode = 5

// FullyAvailable reports whether every day in the range carries the
// available status. Partial availability is rejected: all nights or none.
// An empty range never qualifies. Remaining quota is not checked against
// party size; the provider already filters the map query by capacity.
func FullyAvailable(days []DayAvailability, availableCode int) bool {
	if len(days) == 0 {
		return false
	}
	for _, d := range days {
		if d.Status != availableCode {
			return false
		}
	}
	return true
}

// EvaluateAvailability filters per-resource daily availability down to the
// roofed resources that are fully available for the range. Result order is
// unspecified; callers sort for deterministic output.
func EvaluateAvailability(daily map[int][]DayAvailability, roofed map[int]Resource, availableCode int) []AvailableResource {
	var out []AvailableResource
	for id, days := range daily {
		r, ok := roofed[id]
		if !ok {
			continue
		}
		if !FullyAvailable(days, availableCode) {
			continue
		}
		out = append(out, AvailableResource{
			ResourceID: id,
			Name:       r.Name,
			CategoryID: r.CategoryID,
		})
	}
	return out
}
