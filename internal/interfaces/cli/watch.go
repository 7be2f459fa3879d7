package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Nelluk/OntarioParks/internal/application/usecases"
	"github.com/Nelluk/OntarioParks/internal/infrastructure/config"
	"github.com/Nelluk/OntarioParks/internal/infrastructure/ontario"
)

const defaultCookieFile = "tmp/op_cookies.json"

func NewWatchCmd() *cobra.Command {
	var (
		configPath        string
		start             string
		end               string
		partySize         int
		parksCSV          string
		parkFlags         []string
		cookieFile        string
		availableCode     int
		keywords          []string
		reserve           bool
		reserveMode       string
		allowExistingCart bool
		appVersion        string
		appLanguage       string
	)

	c := &cobra.Command{
		Use:   "watch",
		Short: "Scan parks for fully available roofed sites over a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg config.Config
			if configPath != "" {
				var err error
				cfg, err = config.Load(configPath)
				if err != nil {
					return err
				}
			}

			// File values apply only where the flag was left at its default.
			changed := cmd.Flags().Changed
			if !changed("start") && cfg.Start != "" {
				start = cfg.Start
			}
			if !changed("end") && cfg.End != "" {
				end = cfg.End
			}
			if !changed("party-size") && cfg.PartySize > 0 {
				partySize = cfg.PartySize
			}
			if !changed("cookie-file") && cfg.CookieFile != "" {
				cookieFile = cfg.CookieFile
			}
			if !changed("available-code") && cfg.AvailableCode != 0 {
				availableCode = cfg.AvailableCode
			}
			if !changed("category-keyword") && len(cfg.Keywords) > 0 {
				keywords = cfg.Keywords
			}
			if !changed("reserve") && cfg.AutoReserve {
				reserve = true
			}
			if !changed("reserve-mode") && cfg.ReserveMode != "" {
				reserveMode = cfg.ReserveMode
			}
			if !changed("allow-existing-cart") && cfg.AllowExistingCart {
				allowExistingCart = true
			}
			if !changed("app-version") && cfg.AppVersion != "" {
				appVersion = cfg.AppVersion
			}
			if !changed("app-language") && cfg.AppLanguage != "" {
				appLanguage = cfg.AppLanguage
			}

			if err := checkDate(start); err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			if err := checkDate(end); err != nil {
				return fmt.Errorf("--end: %w", err)
			}
			if reserveMode != usecases.ReserveFirst && reserveMode != usecases.ReserveAll {
				return fmt.Errorf("--reserve-mode must be %q or %q", usecases.ReserveFirst, usecases.ReserveAll)
			}

			parks := collectParks(cfg, parksCSV, parkFlags)
			if len(parks) == 0 {
				return fmt.Errorf("provide at least one park via --parks/--park or a config file")
			}

			cookies, xsrf, err := ontario.LoadCookies(cookieFile)
			if err != nil {
				return err
			}
			client := ontario.NewClient(ontario.Options{
				AppLanguage: appLanguage,
				AppVersion:  appVersion,
				Cookies:     cookies,
				XSRFToken:   xsrf,
			})

			ctx := context.Background()
			scan := usecases.ScanParks{Provider: client}
			report, err := scan.Execute(ctx, usecases.ScanRequest{
				Parks:         parks,
				StartDate:     start,
				EndDate:       end,
				PartySize:     partySize,
				AvailableCode: availableCode,
				Keywords:      keywords,
			})
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, string(out))

			matched := false
			for _, r := range report.Results {
				if r.PreferredMatch == nil {
					continue
				}
				matched = true
				log.Info().
					Str("park", r.Park).
					Str("resource", r.PreferredMatch.Resource.Name).
					Int("resourceId", r.PreferredMatch.Resource.ResourceID).
					Msg("match")
			}

			if !reserve || !matched {
				return nil
			}
			if !client.CanCommit() {
				return fmt.Errorf("XSRF-TOKEN cookie missing; cannot auto-reserve")
			}

			locale := appLanguage
			if locale == "" {
				locale = ontario.DefaultAppLanguage
			}
			rm := usecases.ReserveMatches{Provider: client}
			_, err = rm.Execute(ctx, usecases.ReserveRequest{
				Cart:              report.Cart,
				Results:           report.Results,
				StartDate:         start,
				EndDate:           end,
				PartySize:         partySize,
				Locale:            locale,
				Mode:              reserveMode,
				AllowExistingCart: allowExistingCart,
			})
			return err
		},
	}

	c.Flags().StringVar(&configPath, "config", "", "path to a JSON5 config file")
	c.Flags().StringVar(&start, "start", "", "start date (YYYY-MM-DD)")
	c.Flags().StringVar(&end, "end", "", "end date (YYYY-MM-DD)")
	c.Flags().IntVar(&partySize, "party-size", 2, "number of occupants")
	c.Flags().StringVar(&parksCSV, "parks", "", "comma-separated park names")
	c.Flags().StringArrayVar(&parkFlags, "park", nil, "park name (repeatable)")
	c.Flags().StringVar(&cookieFile, "cookie-file", defaultCookieFile, "browser-exported cookie file")
	c.Flags().IntVar(&availableCode, "available-code", 0, "daily status code meaning available (default 5)")
	c.Flags().StringArrayVar(&keywords, "category-keyword", nil, "roofed-category keyword (repeatable, overrides defaults)")
	c.Flags().BoolVar(&reserve, "reserve", false, "attempt to add the best match to the cart")
	c.Flags().StringVar(&reserveMode, "reserve-mode", usecases.ReserveFirst, "reserve the first match only or all matches")
	c.Flags().BoolVar(&allowExistingCart, "allow-existing-cart", false, "auto-reserve even if the cart already has items")
	c.Flags().StringVar(&appVersion, "app-version", "", "override app-version header for cart commit")
	c.Flags().StringVar(&appLanguage, "app-language", "", "override app-language header for cart commit")

	return c
}

func checkDate(s string) error {
	if s == "" {
		return fmt.Errorf("required (YYYY-MM-DD)")
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use ISO date format YYYY-MM-DD")
	}
	return nil
}

// collectParks merges config-file parks with CLI park names. CLI names pick
// up preference lists from the config when the names line up.
func collectParks(cfg config.Config, parksCSV string, parkFlags []string) []usecases.ParkQuery {
	prefs := make(map[string][]string, len(cfg.Parks))
	var out []usecases.ParkQuery
	for _, p := range cfg.Parks {
		if p.Name == "" {
			continue
		}
		prefs[p.Name] = p.PreferredSites
		out = append(out, usecases.ParkQuery{Name: p.Name, PreferredSites: p.PreferredSites})
	}

	var names []string
	for _, p := range strings.Split(parksCSV, ",") {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	names = append(names, parkFlags...)
	for _, n := range names {
		out = append(out, usecases.ParkQuery{Name: n, PreferredSites: prefs[n]})
	}
	return out
}
