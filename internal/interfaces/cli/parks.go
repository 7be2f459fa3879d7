package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Nelluk/OntarioParks/internal/infrastructure/ontario"
)

func NewParksCmd() *cobra.Command {
	var cookieFile string

	c := &cobra.Command{
		Use:   "parks",
		Short: "List every park name known to the provider",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cookieFile)
			if err != nil {
				return err
			}
			locations, err := client.Locations(context.Background())
			if err != nil {
				return err
			}
			for _, l := range locations {
				fmt.Println(l.Name)
			}
			return nil
		},
	}
	c.Flags().StringVar(&cookieFile, "cookie-file", defaultCookieFile, "browser-exported cookie file")
	return c
}

func newClient(cookieFile string) (*ontario.Client, error) {
	cookies, xsrf, err := ontario.LoadCookies(cookieFile)
	if err != nil {
		return nil, err
	}
	return ontario.NewClient(ontario.Options{Cookies: cookies, XSRFToken: xsrf}), nil
}
