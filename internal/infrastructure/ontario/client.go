// Package ontario is a client for the Ontario Parks reservation system's
// private booking API. It speaks the same schema-strict request shapes the
// provider's own UI sends; authentication rides on cookies exported from a
// real browser session.
package ontario

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Nelluk/OntarioParks/internal/domain/cart"
	"github.com/Nelluk/OntarioParks/internal/domain/inventory"
)

const (
	DefaultBaseURL = "https://reservations.ontarioparks.ca"

	// DefaultAppLanguage and DefaultAppVersion mirror the headers the
	// provider's UI sends. The version string drifts with UI releases.
	DefaultAppLanguage = "en-CA"
	DefaultAppVersion  = "5.105.203"
)

type Client struct {
	http        *resty.Client
	appLanguage string
	appVersion  string
	xsrfToken   string
	now         func() time.Time
}

// Options configures a Client. Zero fields fall back to the defaults above.
type Options struct {
	BaseURL     string
	AppLanguage string
	AppVersion  string

	// Cookies are the browser-exported session cookies; XSRFToken is the
	// value of the XSRF-TOKEN cookie, required only for cart commits.
	Cookies   []*http.Cookie
	XSRFToken string
}

func NewClient(opts Options) *Client {
	base := opts.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	lang := opts.AppLanguage
	if lang == "" {
		lang = DefaultAppLanguage
	}
	version := opts.AppVersion
	if version == "" {
		version = DefaultAppVersion
	}

	hc := resty.New()
	hc.SetBaseURL(base)
	hc.SetTimeout(30 * time.Second)
	hc.SetCookies(opts.Cookies)
	hc.SetHeader("accept", "application/json")

	return &Client{
		http:        hc,
		appLanguage: lang,
		appVersion:  version,
		xsrfToken:   opts.XSRFToken,
		now:         time.Now,
	}
}

// CanCommit reports whether the session carries the anti-forgery token the
// commit endpoint requires.
func (c *Client) CanCommit() bool { return c.xsrfToken != "" }

// --- wire shapes ---

type localizedValue struct {
	FullName string `json:"fullName"`
	Name     string `json:"name"`
}

type locationJSON struct {
	ResourceLocationID int              `json:"resourceLocationId"`
	LocalizedValues    []localizedValue `json:"localizedValues"`
}

type categoryJSON struct {
	ResourceCategoryID int              `json:"resourceCategoryId"`
	LocalizedValues    []localizedValue `json:"localizedValues"`
}

type resourceJSON struct {
	ResourceCategoryID int              `json:"resourceCategoryId"`
	LocalizedValues    []localizedValue `json:"localizedValues"`
}

type mapJSON struct {
	MapID        int               `json:"mapId"`
	MapResources []json.RawMessage `json:"mapResources"`
}

type dayJSON struct {
	Availability   int  `json:"availability"`
	RemainingQuota *int `json:"remainingQuota"`
}

type mapAvailabilityJSON struct {
	ResourceAvailabilities map[string][]dayJSON `json:"resourceAvailabilities"`
}

func fullName(values []localizedValue) string {
	if len(values) == 0 {
		return ""
	}
	return values[0].FullName
}

func localName(values []localizedValue) string {
	if len(values) == 0 {
		return ""
	}
	return values[0].Name
}

// --- endpoints ---

// Locations lists every bookable park.
func (c *Client) Locations(ctx context.Context) ([]inventory.Location, error) {
	var raw []locationJSON
	if err := c.get(ctx, "/api/resourceLocation", nil, &raw); err != nil {
		return nil, err
	}
	out := make([]inventory.Location, 0, len(raw))
	for _, l := range raw {
		out = append(out, inventory.Location{ID: l.ResourceLocationID, Name: fullName(l.LocalizedValues)})
	}
	return out, nil
}

// Categories lists every resource category across the system.
func (c *Client) Categories(ctx context.Context) ([]inventory.Category, error) {
	var raw []categoryJSON
	if err := c.get(ctx, "/api/resourcecategory", nil, &raw); err != nil {
		return nil, err
	}
	out := make([]inventory.Category, 0, len(raw))
	for _, cat := range raw {
		out = append(out, inventory.Category{ID: cat.ResourceCategoryID, Name: localName(cat.LocalizedValues)})
	}
	return out, nil
}

// Resources returns the park's bookable units keyed by resource id.
func (c *Client) Resources(ctx context.Context, locationID int) (map[int]inventory.Resource, error) {
	var raw map[string]resourceJSON
	params := map[string]string{"resourceLocationId": strconv.Itoa(locationID)}
	if err := c.get(ctx, "/api/resourcelocation/resources", params, &raw); err != nil {
		return nil, err
	}
	out := make(map[int]inventory.Resource, len(raw))
	for idStr, r := range raw {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			return nil, fmt.Errorf("ontario: non-numeric resource id %q: %w", idStr, err)
		}
		name := localName(r.LocalizedValues)
		if name == "" {
			name = idStr
		}
		out[id] = inventory.Resource{ID: id, CategoryID: r.ResourceCategoryID, Name: name}
	}
	return out, nil
}

// MapIDs lists the park's availability maps that actually carry resources.
func (c *Client) MapIDs(ctx context.Context, locationID int) ([]int, error) {
	var raw []mapJSON
	params := map[string]string{"resourceLocationId": strconv.Itoa(locationID)}
	if err := c.get(ctx, "/api/maps", params, &raw); err != nil {
		return nil, err
	}
	var out []int
	for _, m := range raw {
		if len(m.MapResources) > 0 {
			out = append(out, m.MapID)
		}
	}
	return out, nil
}

// AvailabilityQuery names one map availability request. Cart identifiers may
// be empty when only reading availability.
type AvailabilityQuery struct {
	MapID              int
	CartUID            string
	CartTransactionUID string
	StartDate          string
	EndDate            string
	PartySize          int
}

// MapAvailability fetches per-resource daily availability for one map over
// the date range. The parameter set is fixed: the endpoint rejects requests
// missing any of these keys.
func (c *Client) MapAvailability(ctx context.Context, q AvailabilityQuery) (map[int][]inventory.DayAvailability, error) {
	counts, err := json.Marshal([]cart.CapacityCount{
		{CapacityCategoryID: cart.AnyCapacityCategoryID, SubCapacityCategoryID: nil, Count: q.PartySize},
	})
	if err != nil {
		return nil, err
	}

	params := map[string]string{
		"mapId":                        strconv.Itoa(q.MapID),
		"bookingCategoryId":            strconv.Itoa(cart.RoofedBookingCategoryID),
		"equipmentCategoryId":          "",
		"subEquipmentCategoryId":       "",
		"cartUid":                      q.CartUID,
		"cartTransactionUid":           q.CartTransactionUID,
		"bookingUid":                   "",
		"groupHoldUid":                 "",
		"startDate":                    q.StartDate,
		"endDate":                      q.EndDate,
		"getDailyAvailability":         "true",
		"isReserving":                  "true",
		"filterData":                   "[]",
		"boatLength":                   "0",
		"boatDraft":                    "0",
		"boatWidth":                    "0",
		"peopleCapacityCategoryCounts": string(counts),
		"numEquipment":                 "0",
		"seed":                         c.now().UTC().Format(time.RFC3339Nano),
	}

	var raw mapAvailabilityJSON
	if err := c.get(ctx, "/api/availability/map", params, &raw); err != nil {
		return nil, err
	}

	out := make(map[int][]inventory.DayAvailability, len(raw.ResourceAvailabilities))
	for idStr, days := range raw.ResourceAvailabilities {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			return nil, fmt.Errorf("ontario: non-numeric resource id %q: %w", idStr, err)
		}
		daily := make([]inventory.DayAvailability, 0, len(days))
		for _, d := range days {
			daily = append(daily, inventory.DayAvailability{Status: d.Availability, RemainingQuota: d.RemainingQuota})
		}
		out[id] = daily
	}
	return out, nil
}

// FetchCart retrieves the session's cart and its transaction identifiers.
func (c *Client) FetchCart(ctx context.Context) (*cart.Cart, error) {
	var out cart.Cart
	if err := c.get(ctx, "/api/cart", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CommitCart posts the commit envelope, placing the hold it describes.
func (c *Client) CommitCart(ctx context.Context, env *cart.CommitRequest) error {
	if c.xsrfToken == "" {
		return fmt.Errorf("ontario: XSRF-TOKEN cookie missing; cannot commit cart")
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("x-xsrf-token", c.xsrfToken).
		SetHeader("app-language", c.appLanguage).
		SetHeader("app-version", c.appVersion).
		SetQueryParams(map[string]string{
			"isCompleted":   "false",
			"isSelfCheckIn": "false",
		}).
		SetBody(env).
		Post("/api/cart/commit")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return newAPIError(resp)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, params map[string]string, out any) error {
	req := c.http.R().SetContext(ctx)
	if params != nil {
		req.SetQueryParams(params)
	}
	resp, err := req.Get(path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return newAPIError(resp)
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("ontario: decoding %s: %w", path, err)
	}
	return nil
}
