package cart_test

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/Nelluk/OntarioParks/internal/domain/cart"
)

type seqUIDs struct{ n int }

func (s *seqUIDs) NewUID() string {
	s.n++
	return fmt.Sprintf("uid-%d", s.n)
}

func fixedNow() time.Time {
	return time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
}

func fetchedCart() *cart.Cart {
	return &cart.Cart{
		CartUID:        "cart-123",
		NewTransaction: &cart.Transaction{CartTransactionUID: "tx-456"},
	}
}

func testHold() cart.HoldRequest {
	return cart.HoldRequest{
		ResourceID:         472,
		ResourceLocationID: 101,
		StartDate:          "2026-07-15",
		EndDate:            "2026-07-17",
		PartySize:          2,
		PreferredLocale:    "en-CA",
	}
}

func TestBuildCommitPayload_CrossReferences(t *testing.T) {
	b := cart.Builder{UIDs: &seqUIDs{}, Now: fixedNow}

	env, err := b.BuildCommitPayload(fetchedCart(), testHold())
	require.NoError(t, err)

	require.Len(t, env.Cart.Bookings, 1)
	require.Len(t, env.Cart.ResourceBlockers, 1)

	booking, ok := env.Cart.Bookings[0].(cart.Booking)
	require.True(t, ok)
	blocker, ok := env.Cart.ResourceBlockers[0].(cart.ResourceBlocker)
	require.True(t, ok)

	require.Equal(t, []string{blocker.ResourceBlockerUID}, booking.NewVersion.ResourceBlockerUIDs)
	require.Equal(t, booking.BookingUID, blocker.BookingUID)
	require.Equal(t, "tx-456", booking.NewVersion.CartTransactionUID)
	require.Equal(t, "tx-456", booking.CreateTransactionUID)
	require.Equal(t, "tx-456", blocker.NewVersion.CartTransactionUID)
	require.Equal(t, "cart-123", booking.CartUID)
	require.Equal(t, "cart-123", blocker.CartUID)
	require.Equal(t, "tx-456", env.Cart.CreateTransactionUID)

	require.Equal(t, cart.RoofedBookingCategoryID, booking.BookingCategoryID)
	require.Equal(t, 472, blocker.NewVersion.ResourceID)
	require.Equal(t, 101, blocker.NewVersion.ResourceLocationID)
	require.True(t, blocker.IsReservation)
	require.Equal(t, 0, blocker.NewVersion.Status)

	require.Equal(t, []cart.CapacityCount{
		{CapacityCategoryID: cart.AnyCapacityCategoryID, SubCapacityCategoryID: nil, Count: 2},
	}, booking.NewVersion.BookingCapacityCategoryCounts)
	require.Equal(t, cart.AnyCapacityCategoryID, booking.NewVersion.RateCategoryID)
	require.Equal(t, "en-CA", booking.NewVersion.Occupant.PreferredCultureName)
	require.Empty(t, booking.NewVersion.Occupant.Contact.Email)
}

func TestBuildCommitPayload_DoesNotMutateFetchedCart(t *testing.T) {
	fetched := fetchedCart()
	fetched.LineItems = []json.RawMessage{json.RawMessage(`{"lineItemId":1}`)}
	before := *fetched
	beforeLineItems := append([]json.RawMessage(nil), fetched.LineItems...)

	b := cart.Builder{UIDs: &seqUIDs{}, Now: fixedNow}
	_, err := b.BuildCommitPayload(fetched, testHold())
	require.NoError(t, err)

	require.Empty(t, cmp.Diff(before, *fetched))
	require.Empty(t, cmp.Diff(beforeLineItems, fetched.LineItems))
	require.Nil(t, fetched.Bookings)
	require.Nil(t, fetched.ResourceBlockers)
}

func TestBuildCommitPayload_SchemaCollectionsNeverNull(t *testing.T) {
	b := cart.Builder{UIDs: &seqUIDs{}, Now: fixedNow}
	env, err := b.BuildCommitPayload(fetchedCart(), testHold())
	require.NoError(t, err)

	data, err := json.Marshal(env)
	require.NoError(t, err)

	var decoded struct {
		Cart map[string]json.RawMessage `json:"cart"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	for _, key := range []string{
		"bookings", "resourceBlockers", "resourceNonSpecificBlockers",
		"resourceZoneBlockers", "resourceZoneEntryBlockers",
		"waitlistApplications", "lineItems", "sales", "shipments", "giftCards",
	} {
		raw, ok := decoded.Cart[key]
		require.True(t, ok, "missing collection %q", key)
		require.NotEqual(t, "null", string(raw), "collection %q must be an array", key)
	}
}

func TestBuildCommitPayload_TransactionUIDSources(t *testing.T) {
	b := cart.Builder{UIDs: &seqUIDs{}, Now: fixedNow}

	// top-level createTransactionUid is the fallback
	fallback := &cart.Cart{CartUID: "cart-1", CreateTransactionUID: "tx-top"}
	env, err := b.BuildCommitPayload(fallback, testHold())
	require.NoError(t, err)
	require.Equal(t, "tx-top", env.Cart.CreateTransactionUID)

	// the nested new transaction wins over the top-level field
	both := &cart.Cart{
		CartUID:              "cart-1",
		CreateTransactionUID: "tx-top",
		NewTransaction:       &cart.Transaction{CartTransactionUID: "tx-new"},
	}
	env, err = b.BuildCommitPayload(both, testHold())
	require.NoError(t, err)
	booking := env.Cart.Bookings[0].(cart.Booking)
	require.Equal(t, "tx-new", booking.NewVersion.CartTransactionUID)
}

func TestBuildCommitPayload_InvalidCart(t *testing.T) {
	b := cart.Builder{UIDs: &seqUIDs{}, Now: fixedNow}

	_, err := b.BuildCommitPayload(&cart.Cart{NewTransaction: &cart.Transaction{CartTransactionUID: "tx"}}, testHold())
	require.ErrorIs(t, err, cart.ErrInvalidCart)

	_, err = b.BuildCommitPayload(&cart.Cart{CartUID: "cart-1"}, testHold())
	require.ErrorIs(t, err, cart.ErrInvalidCart)
}

func TestBuildCommitPayload_FreshUIDsPerCall(t *testing.T) {
	// zero-value builder uses random UUIDs
	var b cart.Builder
	fetched := fetchedCart()

	first, err := b.BuildCommitPayload(fetched, testHold())
	require.NoError(t, err)
	second, err := b.BuildCommitPayload(fetched, testHold())
	require.NoError(t, err)

	b1 := first.Cart.Bookings[0].(cart.Booking)
	b2 := second.Cart.Bookings[0].(cart.Booking)
	require.NotEqual(t, b1.BookingUID, b2.BookingUID)
	require.NotEqual(t, b1.NewVersion.ResourceBlockerUIDs, b2.NewVersion.ResourceBlockerUIDs)
}

func TestBuildCommitPayload_RoundTripsExistingEntries(t *testing.T) {
	fetched := fetchedCart()
	existing := json.RawMessage(`{"bookingUid":"earlier"}`)
	fetched.Bookings = []json.RawMessage{existing}

	b := cart.Builder{UIDs: &seqUIDs{}, Now: fixedNow}
	env, err := b.BuildCommitPayload(fetched, testHold())
	require.NoError(t, err)

	require.Len(t, env.Cart.Bookings, 2)
	require.Equal(t, existing, env.Cart.Bookings[0])
}
