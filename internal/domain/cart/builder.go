package cart

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidCart means the fetched cart lacks the identifiers a commit
// payload needs. Refreshing the exported cookies usually fixes it.
var ErrInvalidCart = fmt.Errorf("cart missing cartUid or cartTransactionUid")

// UIDSource mints the unique identifiers assigned to new bookings and
// blockers. Injectable so tests can pin ids and assert exact payloads.
type UIDSource interface {
	NewUID() string
}

type randomUIDs struct{}

func (randomUIDs) NewUID() string { return uuid.NewString() }

// HoldRequest names the resource and stay to build a commit payload for.
type HoldRequest struct {
	ResourceID         int
	ResourceLocationID int
	StartDate          string // ISO date, e.g. 2026-07-15
	EndDate            string
	PartySize          int
	BookingCategoryID  int    // 0 means RoofedBookingCategoryID
	PreferredLocale    string // occupant preferredCultureName, e.g. en-CA
}

// Builder assembles cart commit payloads. The zero value uses random UUIDs
// and the wall clock.
type Builder struct {
	UIDs UIDSource
	Now  func() time.Time
}

// BuildCommitPayload returns the commit envelope holding a hold on the
// requested resource. The fetched cart is copied, never mutated, so a failed
// commit leaves it reusable. Every call mints fresh booking and blocker uids.
func (b Builder) BuildCommitPayload(fetched *Cart, req HoldRequest) (*CommitRequest, error) {
	txUID := fetched.TransactionUID()
	if fetched.CartUID == "" || txUID == "" {
		return nil, ErrInvalidCart
	}

	uids := b.UIDs
	if uids == nil {
		uids = randomUIDs{}
	}
	now := b.Now
	if now == nil {
		now = time.Now
	}
	stamp := now().UTC().Format(time.RFC3339Nano)

	categoryID := req.BookingCategoryID
	if categoryID == 0 {
		categoryID = RoofedBookingCategoryID
	}

	bookingUID := uids.NewUID()
	blockerUID := uids.NewUID()

	booking := Booking{
		BookingUID:        bookingUID,
		CartUID:           fetched.CartUID,
		BookingCategoryID: categoryID,
		BookingModel:      0,
		NewVersion: BookingVersion{
			CartTransactionUID: txUID,
			BookingMembers:     []json.RawMessage{},
			BookingVehicles:    []json.RawMessage{},
			BookingBoats:       []json.RawMessage{},
			BookingCapacityCategoryCounts: []CapacityCount{
				{CapacityCategoryID: AnyCapacityCategoryID, SubCapacityCategoryID: nil, Count: req.PartySize},
			},
			RateCategoryID:                 AnyCapacityCategoryID,
			ResourceBlockerUIDs:            []string{blockerUID},
			ResourceNonSpecificBlockerUIDs: []string{},
			ResourceZoneBlockerUIDs:        []string{},
			ResourceZoneEntryBlockerUIDs:   []string{},
			StartDate:                      req.StartDate,
			EndDate:                        req.EndDate,
			Occupant: Occupant{
				PreferredCultureName: req.PreferredLocale,
			},
			BookingStatus:      0,
			CompletedDate:      stamp,
			BookingSurcharges:  []json.RawMessage{},
			ResourceLocationID: req.ResourceLocationID,
		},
		CreateTransactionUID: txUID,
		CurrentVersion:       nil,
		History:              []json.RawMessage{},
		Drafts:               []json.RawMessage{},
	}

	blocker := ResourceBlocker{
		BlockerType:        0,
		CartUID:            fetched.CartUID,
		ResourceBlockerUID: blockerUID,
		BookingUID:         bookingUID,
		IsReservation:      true,
		NewVersion: BlockerVersion{
			CreationDate:       stamp,
			CartTransactionUID: txUID,
			StartDate:          req.StartDate,
			EndDate:            req.EndDate,
			ResourceID:         req.ResourceID,
			ResourceLocationID: req.ResourceLocationID,
			Status:             0,
		},
	}

	// Value copy of the fetched cart; collection fields are reassigned
	// below, never appended to, so the caller's slices stay untouched.
	copied := *fetched
	copied.CreateTransactionUID = txUID

	bookings := make([]any, 0, len(fetched.Bookings)+1)
	for _, raw := range fetched.Bookings {
		bookings = append(bookings, raw)
	}
	bookings = append(bookings, booking)

	blockers := make([]any, 0, len(fetched.ResourceBlockers)+1)
	for _, raw := range fetched.ResourceBlockers {
		blockers = append(blockers, raw)
	}
	blockers = append(blockers, blocker)

	// The commit endpoint rejects missing collection keys, so every
	// expected collection must serialize as at least an empty array.
	copied.ResourceNonSpecificBlockers = ensure(copied.ResourceNonSpecificBlockers)
	copied.ResourceZoneBlockers = ensure(copied.ResourceZoneBlockers)
	copied.ResourceZoneEntryBlockers = ensure(copied.ResourceZoneEntryBlockers)
	copied.WaitlistApplications = ensure(copied.WaitlistApplications)
	copied.LineItems = ensure(copied.LineItems)
	copied.Sales = ensure(copied.Sales)
	copied.Shipments = ensure(copied.Shipments)
	copied.GiftCards = ensure(copied.GiftCards)

	return &CommitRequest{
		Cart: commitCart{
			Cart:             copied,
			Bookings:         bookings,
			ResourceBlockers: blockers,
		},
	}, nil
}

func ensure(s []json.RawMessage) []json.RawMessage {
	if s == nil {
		return []json.RawMessage{}
	}
	return s
}
