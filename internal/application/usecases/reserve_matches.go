package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Nelluk/OntarioParks/internal/domain/cart"
	"github.com/Nelluk/OntarioParks/internal/domain/inventory"
)

// Reserve modes: stop after the first successful hold, or attempt every
// match.
const (
	ReserveFirst = "first"
	ReserveAll   = "all"
)

type ReserveRequest struct {
	Cart    *cart.Cart
	Results []inventory.ParkResult

	StartDate string
	EndDate   string
	PartySize int
	Locale    string // occupant preferredCultureName

	Mode              string // ReserveFirst (default) or ReserveAll
	AllowExistingCart bool
}

// ReserveOutcome is the per-match result of a reserve attempt.
type ReserveOutcome struct {
	Park     string
	Resource inventory.AvailableResource
	Err      error
}

func (o ReserveOutcome) Reserved() bool { return o.Err == nil }

// ReserveMatches commits a cart hold for each park result that carries a
// preferred match. Attempts run in sequence; one failed commit is reported
// and does not block the remaining matches.
type ReserveMatches struct {
	Provider Provider
	Builder  cart.Builder
}

func (u ReserveMatches) Execute(ctx context.Context, req ReserveRequest) ([]ReserveOutcome, error) {
	if u.Provider == nil {
		return nil, fmt.Errorf("provider is nil")
	}
	if req.Cart == nil {
		return nil, cart.ErrInvalidCart
	}
	if req.Cart.HasItems() && !req.AllowExistingCart {
		return nil, fmt.Errorf("cart already has items; pass allow-existing-cart to reserve anyway")
	}
	mode := req.Mode
	if mode == "" {
		mode = ReserveFirst
	}

	var outcomes []ReserveOutcome
	for _, r := range req.Results {
		if r.PreferredMatch == nil {
			continue
		}
		m := r.PreferredMatch.Resource

		env, err := u.Builder.BuildCommitPayload(req.Cart, cart.HoldRequest{
			ResourceID:         m.ResourceID,
			ResourceLocationID: r.ResourceLocationID,
			StartDate:          req.StartDate,
			EndDate:            req.EndDate,
			PartySize:          req.PartySize,
			PreferredLocale:    req.Locale,
		})
		if err != nil {
			// A cart without identifiers can never produce a valid
			// payload, so stop rather than fail every match the same way.
			if errors.Is(err, cart.ErrInvalidCart) {
				return outcomes, err
			}
			outcomes = append(outcomes, ReserveOutcome{Park: r.Park, Resource: m, Err: err})
			continue
		}

		err = u.Provider.CommitCart(ctx, env)
		outcomes = append(outcomes, ReserveOutcome{Park: r.Park, Resource: m, Err: err})
		if err != nil {
			log.Error().Err(err).Str("park", r.Park).Str("resource", m.Name).Msg("reserve failed")
			continue
		}
		log.Info().Str("park", r.Park).Str("resource", m.Name).Int("resourceId", m.ResourceID).Msg("reserved")
		if mode == ReserveFirst {
			break
		}
	}
	return outcomes, nil
}
