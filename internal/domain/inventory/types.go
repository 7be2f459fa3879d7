package inventory

// Location is a park, resolved from the provider's resourceLocation listing.
type Location struct {
	ID   int
	Name string
}

// Category is a provider resource category (e.g. "Cabin", "Yurt", "Campsite").
type Category struct {
	ID   int
	Name string
}

// Resource is a single bookable unit (a specific cabin or site) at a location.
type Resource struct {
	ID         int
	CategoryID int
	Name       string
}

// DayAvailability is one day of a resource's availability over the requested
// range. RemainingQuota is nil when the provider omits it.
type DayAvailability struct {
	Status         int
	RemainingQuota *int
}

// AvailableResource is a resource that passed the full-range availability test.
type AvailableResource struct {
	ResourceID int    `json:"resourceId"`
	Name       string `json:"name"`
	CategoryID int    `json:"categoryId"`
}

// Match pairs an available resource with its position in the caller's
// preference list. Lower index means more preferred.
type Match struct {
	PreferenceIndex int               `json:"preferenceIndex"`
	Resource        AvailableResource `json:"resource"`
}

// ParkResult is the per-park outcome of a scan.
type ParkResult struct {
	Park               string              `json:"park"`
	ResourceLocationID int                 `json:"resourceLocationId"`
	Available          []AvailableResource `json:"available"`
	PreferredMatch     *Match              `json:"preferredMatch"`
}
