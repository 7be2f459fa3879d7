package usecases

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/Nelluk/OntarioParks/internal/domain/cart"
	"github.com/Nelluk/OntarioParks/internal/domain/inventory"
	"github.com/Nelluk/OntarioParks/internal/infrastructure/ontario"
)

// Provider is the slice of the Ontario Parks API the usecases consume.
// *ontario.Client satisfies it; tests supply fakes.
type Provider interface {
	Locations(ctx context.Context) ([]inventory.Location, error)
	Categories(ctx context.Context) ([]inventory.Category, error)
	Resources(ctx context.Context, locationID int) (map[int]inventory.Resource, error)
	MapIDs(ctx context.Context, locationID int) ([]int, error)
	MapAvailability(ctx context.Context, q ontario.AvailabilityQuery) (map[int][]inventory.DayAvailability, error)
	FetchCart(ctx context.Context) (*cart.Cart, error)
	CommitCart(ctx context.Context, env *cart.CommitRequest) error
}

// ParkQuery is one park to scan plus its ordered site preferences.
type ParkQuery struct {
	Name           string
	PreferredSites []string
}

type ScanRequest struct {
	Parks         []ParkQuery
	StartDate     string // ISO date
	EndDate       string
	PartySize     int
	AvailableCode int      // 0 means inventory.DefaultAvailableCode
	Keywords      []string // nil means inventory.DefaultKeywords
}

// ScanReport is the run's output surface, serialized as-is to stdout by the
// CLI. Cart is carried for a subsequent reserve step, not reported.
type ScanReport struct {
	StartDate     string                 `json:"start"`
	EndDate       string                 `json:"end"`
	PartySize     int                    `json:"partySize"`
	AvailableCode int                    `json:"availableCode"`
	Results       []inventory.ParkResult `json:"results"`

	Cart *cart.Cart `json:"-"`
}

// ScanParks checks each requested park for fully available roofed
// accommodation over the date range. Parks are processed one at a time,
// in order; a failure scanning one park is logged and does not abort the
// rest.
type ScanParks struct {
	Provider Provider
}

func (u ScanParks) Execute(ctx context.Context, req ScanRequest) (*ScanReport, error) {
	if u.Provider == nil {
		return nil, fmt.Errorf("provider is nil")
	}

	code := req.AvailableCode
	if code == 0 {
		code = inventory.DefaultAvailableCode
	}
	keywords := req.Keywords
	if keywords == nil {
		keywords = inventory.DefaultKeywords
	}

	locations, err := u.Provider.Locations(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching locations: %w", err)
	}
	categories, err := u.Provider.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching categories: %w", err)
	}
	roofed := make(map[int]struct{})
	for _, id := range inventory.RoofedCategoryIDs(categories, keywords) {
		roofed[id] = struct{}{}
	}

	fetched, err := u.Provider.FetchCart(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching cart: %w", err)
	}
	cartUID := fetched.CartUID
	txUID := fetched.TransactionUID()
	if cartUID == "" || txUID == "" {
		// Availability queries tolerate empty cart identifiers; only a
		// reserve step needs them.
		log.Warn().Msg("cart identifiers missing; availability only, reserving will fail")
	}

	report := &ScanReport{
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		PartySize:     req.PartySize,
		AvailableCode: code,
		Results:       []inventory.ParkResult{},
		Cart:          fetched,
	}

	for _, park := range req.Parks {
		loc, err := inventory.ResolveLocation(locations, park.Name)
		if err != nil {
			var nf *inventory.NotFoundError
			var amb *inventory.AmbiguousMatchError
			if errors.As(err, &nf) || errors.As(err, &amb) {
				log.Error().Err(err).Str("park", park.Name).Msg("skipping park")
				continue
			}
			return nil, err
		}

		result, err := u.scanPark(ctx, loc, park.PreferredSites, roofed, cartUID, txUID, req, code)
		if err != nil {
			log.Error().Err(err).Str("park", loc.Name).Msg("park scan failed")
			continue
		}
		report.Results = append(report.Results, result)
	}

	return report, nil
}

func (u ScanParks) scanPark(
	ctx context.Context,
	loc inventory.Location,
	preferred []string,
	roofedIDs map[int]struct{},
	cartUID, txUID string,
	req ScanRequest,
	availableCode int,
) (inventory.ParkResult, error) {
	resources, err := u.Provider.Resources(ctx, loc.ID)
	if err != nil {
		return inventory.ParkResult{}, fmt.Errorf("fetching resources: %w", err)
	}
	roofed := make(map[int]inventory.Resource)
	for id, r := range resources {
		if _, ok := roofedIDs[r.CategoryID]; ok {
			roofed[id] = r
		}
	}

	mapIDs, err := u.Provider.MapIDs(ctx, loc.ID)
	if err != nil {
		return inventory.ParkResult{}, fmt.Errorf("fetching maps: %w", err)
	}

	available := []inventory.AvailableResource{}
	for _, mapID := range mapIDs {
		daily, err := u.Provider.MapAvailability(ctx, ontario.AvailabilityQuery{
			MapID:              mapID,
			CartUID:            cartUID,
			CartTransactionUID: txUID,
			StartDate:          req.StartDate,
			EndDate:            req.EndDate,
			PartySize:          req.PartySize,
		})
		if err != nil {
			return inventory.ParkResult{}, fmt.Errorf("fetching availability for map %d: %w", mapID, err)
		}
		available = append(available, inventory.EvaluateAvailability(daily, roofed, availableCode)...)
	}

	sort.Slice(available, func(i, j int) bool { return available[i].Name < available[j].Name })

	result := inventory.ParkResult{
		Park:               loc.Name,
		ResourceLocationID: loc.ID,
		Available:          available,
	}
	if m, ok := inventory.BestMatch(available, preferred); ok {
		result.PreferredMatch = &m
	}
	return result, nil
}
