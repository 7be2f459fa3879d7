package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Nelluk/OntarioParks/internal/domain/inventory"
)

func NewCategoriesCmd() *cobra.Command {
	var (
		cookieFile string
		keywords   []string
	)

	c := &cobra.Command{
		Use:   "categories",
		Short: "List the resource categories classified as roofed",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cookieFile)
			if err != nil {
				return err
			}
			categories, err := client.Categories(context.Background())
			if err != nil {
				return err
			}
			keys := keywords
			if keys == nil {
				keys = inventory.DefaultKeywords
			}
			roofed := make(map[int]struct{})
			for _, id := range inventory.RoofedCategoryIDs(categories, keys) {
				roofed[id] = struct{}{}
			}
			for _, cat := range categories {
				if _, ok := roofed[cat.ID]; ok {
					fmt.Printf("%d: %s\n", cat.ID, cat.Name)
				}
			}
			return nil
		},
	}
	c.Flags().StringVar(&cookieFile, "cookie-file", defaultCookieFile, "browser-exported cookie file")
	c.Flags().StringArrayVar(&keywords, "category-keyword", nil, "roofed-category keyword (repeatable, overrides defaults)")
	return c
}
