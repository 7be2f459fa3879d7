// Package cart models the provider's transactional cart and builds the
// commit payload that places a hold on a resource. The commit endpoint is
// schema-strict: collections must be present as arrays (never null) and the
// booking/blocker identifiers must cross-reference exactly.
package cart

import "encoding/json"

const (
	// AnyCapacityCategoryID is the provider's sentinel for "any capacity
	// category" in capacity counts and rate categories.
	AnyCapacityCategoryID = -32768

	// RoofedBookingCategoryID is the provider's booking category for
	// roofed accommodation.
	RoofedBookingCategoryID = 2
)

// Cart is the provider's cart as fetched from GET /api/cart. Entries already
// in the cart are kept as raw JSON so a commit round-trips them untouched.
type Cart struct {
	CartUID              string       `json:"cartUid"`
	CreateTransactionUID string       `json:"createTransactionUid,omitempty"`
	NewTransaction       *Transaction `json:"newTransaction,omitempty"`

	Bookings                    []json.RawMessage `json:"bookings"`
	ResourceBlockers            []json.RawMessage `json:"resourceBlockers"`
	ResourceNonSpecificBlockers []json.RawMessage `json:"resourceNonSpecificBlockers"`
	ResourceZoneBlockers        []json.RawMessage `json:"resourceZoneBlockers"`
	ResourceZoneEntryBlockers   []json.RawMessage `json:"resourceZoneEntryBlockers"`
	WaitlistApplications        []json.RawMessage `json:"waitlistApplications"`
	LineItems                   []json.RawMessage `json:"lineItems"`
	Sales                       []json.RawMessage `json:"sales"`
	Shipments                   []json.RawMessage `json:"shipments"`
	GiftCards                   []json.RawMessage `json:"giftCards"`
}

// Transaction is the session-scoped transaction nested under a fresh cart.
type Transaction struct {
	CartTransactionUID string `json:"cartTransactionUid"`
}

// TransactionUID resolves the cart's transaction identifier: the nested new
// transaction wins, then the top-level create-transaction field. Empty when
// neither is present.
func (c *Cart) TransactionUID() string {
	if c.NewTransaction != nil && c.NewTransaction.CartTransactionUID != "" {
		return c.NewTransaction.CartTransactionUID
	}
	return c.CreateTransactionUID
}

// HasItems reports whether the cart already holds bookings or merchandise.
// Used to refuse auto-reserve on a cart the user is mid-checkout with.
func (c *Cart) HasItems() bool {
	return len(c.Bookings) > 0 ||
		len(c.LineItems) > 0 ||
		len(c.Sales) > 0 ||
		len(c.Shipments) > 0 ||
		len(c.GiftCards) > 0
}

// Booking is a reservation entry appended to the cart for commit.
type Booking struct {
	BookingUID             string            `json:"bookingUid"`
	CartUID                string            `json:"cartUid"`
	BookingCategoryID      int               `json:"bookingCategoryId"`
	BookingModel           int               `json:"bookingModel"`
	NewVersion             BookingVersion    `json:"newVersion"`
	CreateTransactionUID   string            `json:"createTransactionUid"`
	CurrentVersion         *BookingVersion   `json:"currentVersion"`
	History                []json.RawMessage `json:"history"`
	Drafts                 []json.RawMessage `json:"drafts"`
	ReferenceNumberPostfix string            `json:"referenceNumberPostfix"`
}

// BookingVersion carries the booking's editable state. The provider expects
// every listed field even when empty.
type BookingVersion struct {
	CartTransactionUID             string            `json:"cartTransactionUid"`
	BookingMembers                 []json.RawMessage `json:"bookingMembers"`
	BookingVehicles                []json.RawMessage `json:"bookingVehicles"`
	BookingBoats                   []json.RawMessage `json:"bookingBoats"`
	BookingCapacityCategoryCounts  []CapacityCount   `json:"bookingCapacityCategoryCounts"`
	RateCategoryID                 int               `json:"rateCategoryId"`
	ResourceBlockerUIDs            []string          `json:"resourceBlockerUids"`
	ResourceNonSpecificBlockerUIDs []string          `json:"resourceNonSpecificBlockerUids"`
	ResourceZoneBlockerUIDs        []string          `json:"resourceZoneBlockerUids"`
	ResourceZoneEntryBlockerUIDs   []string          `json:"resourceZoneEntryBlockerUids"`
	StartDate                      string            `json:"startDate"`
	EndDate                        string            `json:"endDate"`
	ReleasePersonalInformation     bool              `json:"releasePersonalInformation"`
	EquipmentCategoryID            *int              `json:"equipmentCategoryId"`
	SubEquipmentCategoryID         *int              `json:"subEquipmentCategoryId"`
	Occupant                       Occupant          `json:"occupant"`
	RequiresCheckout               bool              `json:"requiresCheckout"`
	BookingStatus                  int               `json:"bookingStatus"`
	CompletedDate                  string            `json:"completedDate"`
	ArrivalComment                 string            `json:"arrivalComment"`
	EntryPointResourceID           *int              `json:"entryPointResourceId"`
	ExitPointResourceID            *int              `json:"exitPointResourceId"`
	BookingSurcharges              []json.RawMessage `json:"bookingSurcharges"`
	ConsentToRelease               bool              `json:"consentToRelease"`
	EquipmentDescription           string            `json:"equipmentDescription"`
	GroupHoldUID                   string            `json:"groupHoldUid"`
	OrganizationName               string            `json:"organizationName"`
	PassExpiryDate                 *string           `json:"passExpiryDate"`
	PassNumber                     string            `json:"passNumber"`
	ResourceLocationID             int               `json:"resourceLocationId"`
	CheckInTime                    *string           `json:"checkInTime"`
	CheckOutTime                   *string           `json:"checkOutTime"`
	DeferredPayment                bool              `json:"deferredPayment"`
}

// CapacityCount is one party-size entry in a booking or availability query.
type CapacityCount struct {
	CapacityCategoryID    int  `json:"capacityCategoryId"`
	SubCapacityCategoryID *int `json:"subCapacityCategoryId"`
	Count                 int  `json:"count"`
}

// Occupant is the contact skeleton the provider requires on a new booking.
// Values stay empty except the preferred locale; the user fills the rest in
// the provider's own checkout UI.
type Occupant struct {
	Contact              OccupantContact `json:"contact"`
	Address              struct{}        `json:"address"`
	AllowMarketing       bool            `json:"allowMarketing"`
	PhoneNumbers         struct{}        `json:"phoneNumbers"`
	PreferredCultureName string          `json:"preferredCultureName"`
	FirstName            string          `json:"firstName"`
	LastName             string          `json:"lastName"`
}

type OccupantContact struct {
	Email                  string  `json:"email"`
	ContactName            string  `json:"contactName"`
	PhoneNumberCountryCode *string `json:"phoneNumberCountryCode"`
	PhoneNumber            string  `json:"phoneNumber"`
}

// ResourceBlocker is the temporary hold paired with a booking. Its
// bookingUid must equal the booking's own uid or the provider rejects the
// commit.
type ResourceBlocker struct {
	BlockerType        int            `json:"blockerType"`
	CartUID            string         `json:"cartUid"`
	ResourceBlockerUID string         `json:"resourceBlockerUid"`
	BookingUID         string         `json:"bookingUid"`
	GroupHoldUID       string         `json:"groupHoldUid"`
	IsReservation      bool           `json:"isReservation"`
	NewVersion         BlockerVersion `json:"newVersion"`
}

type BlockerVersion struct {
	CreationDate       string `json:"creationDate"`
	CartTransactionUID string `json:"cartTransactionUid"`
	StartDate          string `json:"startDate"`
	EndDate            string `json:"endDate"`
	ResourceID         int    `json:"resourceId"`
	ResourceLocationID int    `json:"resourceLocationId"`
	Status             int    `json:"status"`
}

// CommitRequest is the literal body of POST /api/cart/commit.
type CommitRequest struct {
	Cart commitCart `json:"cart"`
}

// commitCart extends the fetched cart with the typed booking and blocker
// being committed, so the request carries both the round-tripped entries and
// the new ones under the same keys.
type commitCart struct {
	Cart
	Bookings         []any `json:"bookings"`
	ResourceBlockers []any `json:"resourceBlockers"`
}
