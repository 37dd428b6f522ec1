package main

import (
	"fmt"
	"strings"

	"github.com/aromax/storefront/internal/domain"
	"github.com/aromax/storefront/internal/usecase"
	"github.com/spf13/cobra"
)

func newSearchCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "search <query>",
		Short:   "Search the catalog",
		Example: `  aromactl search "fresh citrus under $80"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := joinArgs(args)
			result, err := c.search.Search(cmd.Context(), query)
			if err != nil {
				return err
			}
			recs, err := c.search.Recommendations(cmd.Context(), query)
			if err != nil {
				return err
			}

			if c.outputJSON {
				return c.writeJSON(struct {
					*domain.SearchResult
					Recommendations []string `json:"recommendations"`
				}{result, recs})
			}

			c.ui.Header("%d %s for %q", result.Count, plural(result.Count, "fragrance"), query)
			if result.Count == 0 {
				c.ui.Warning("No fragrances matched. Try a scent family, a note or a price like \"under $80\".")
				if result.DidYouMean != "" {
					c.ui.Info(fmt.Sprintf("Did you mean %q?", result.DidYouMean))
				}
			}
			for _, p := range result.Products {
				c.ui.Product(p)
			}
			for _, r := range recs {
				c.ui.Info(r)
			}
			return nil
		},
	}
}

func newParseCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <query>",
		Short: "Show the structured filter a query produces",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := c.search.ParseQuery(cmd.Context(), joinArgs(args))
			if err != nil {
				return err
			}

			if c.outputJSON {
				return c.writeJSON(filter)
			}

			c.ui.Header("Parsed filter")
			c.ui.Field("price min", formatBound(filter.PriceMin))
			c.ui.Field("price max", formatBound(filter.PriceMax))
			c.ui.Field("season", orDash(string(filter.Season)))
			c.ui.Field("profiles", orDash(strings.Join(filter.ScentProfiles, ", ")))
			c.ui.Field("notes", orDash(strings.Join(filter.Notes, ", ")))
			c.ui.Field("keywords", orDash(strings.Join(filter.Keywords, ", ")))
			if filter.IsEmpty() {
				c.ui.Warning("No structure recognized; search falls back to a plain substring match.")
			}
			return nil
		},
	}
}

func newSuggestCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest",
		Short: "List search suggestions for the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			suggestions, err := c.search.Suggestions(cmd.Context())
			if err != nil {
				return err
			}

			if c.outputJSON {
				return c.writeJSON(map[string][]string{"suggestions": suggestions})
			}

			c.ui.Header("Try searching for")
			for _, s := range suggestions {
				c.ui.Bullet(s)
			}
			return nil
		},
	}
}

func newRecommendCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "recommend <query>",
		Short: "Show contextual hints for a query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := c.search.Recommendations(cmd.Context(), joinArgs(args))
			if err != nil {
				return err
			}

			if c.outputJSON {
				return c.writeJSON(map[string][]string{"recommendations": recs})
			}

			if len(recs) == 0 {
				c.ui.Warning("Nothing to recommend for this query.")
			}
			for _, r := range recs {
				c.ui.Info(r)
			}
			return nil
		},
	}
}

func newAskCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <message>",
		Short: "Ask the fragrance assistant a question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reply := usecase.NewAssistant(nil).Reply(joinArgs(args))

			if c.outputJSON {
				return c.writeJSON(map[string]string{"reply": reply})
			}
			c.ui.Reply(reply)
			return nil
		},
	}
}

func newTrackCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "track <order-number>",
		Short:   "Show delivery status for an order",
		Example: "  aromactl track ARO-ABC123XYZ",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := usecase.NewDeliveryTracker(nil).Track(args[0])
			if err != nil {
				return err
			}

			if c.outputJSON {
				return c.writeJSON(order)
			}

			c.ui.Header("Order %s", order.OrderNumber)
			c.ui.Field("status", string(order.Status))
			c.ui.Field("items", strings.Join(order.Items, ", "))
			c.ui.Field("location", order.CurrentLocation)
			c.ui.Field("estimated", order.EstimatedDelivery)
			for _, e := range order.Timeline {
				c.ui.Step(e)
			}
			return nil
		},
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func formatBound(b *int) string {
	if b == nil {
		return "-"
	}
	return fmt.Sprintf("$%d", *b)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
