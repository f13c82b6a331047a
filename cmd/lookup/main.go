// Command lookup resolves characters from the terminal, through the same
// normalization, fetch, and derivation stack as the API server.
//
// Usage:
//
//	tonywow-lookup character eu ysondre moussman
//	tonywow-lookup links "Demon Hunter"
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Tony1885/tonyWoW/internal/cache"
	"github.com/Tony1885/tonyWoW/internal/config"
	"github.com/Tony1885/tonyWoW/internal/derive"
	"github.com/Tony1885/tonyWoW/internal/raiderio"
	"github.com/Tony1885/tonyWoW/internal/wow"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "tonywow-lookup",
		Short: "Resolve WoW characters against Raider.io",
	}

	root.AddCommand(characterCmd())
	root.AddCommand(linksCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// character command
// --------------------------------------------------------------------------

func characterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "character <region> <realm> <name>",
		Short: "Resolve a character and print its profile and derived view",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			client := raiderio.NewClient(cfg.RaiderIOBaseURL, cfg.ProviderPerMinute, cfg.ProviderTimeout, logger)
			service := wow.NewService(client, cache.New(false), cfg.CacheTTL, cfg.NegativeCacheTTL, logger)
			deriver := derive.New(derive.DefaultConfig())

			profile, err := service.GetCharacterProfile(ctx, args[0], args[1], args[2])
			if err != nil {
				return err
			}
			if profile == nil {
				return fmt.Errorf("character %q not found on %s-%s", args[2], args[0], args[1])
			}

			printProfile(profile, deriver)
			return nil
		},
	}
}

func printProfile(p *wow.CharacterProfile, deriver *derive.Deriver) {
	tier := deriver.ScoreTier(p.Score())

	fmt.Printf("%s — %s %s (%s)\n", p.Name, p.ActiveSpecName, p.Class, p.Faction)
	fmt.Printf("  %s-%s\n", strings.ToUpper(p.Region), p.Realm)
	fmt.Printf("  Item level: %.1f / %.1f\n", p.Gear.ItemLevelEquipped, p.Gear.ItemLevelTotal)
	fmt.Printf("  M+ score:   %.1f (%s)\n", p.Score(), tier.Name)

	keystones := deriver.KeystoneCounts(p.Name)
	if keystones != (derive.KeystoneCounts{}) {
		fmt.Printf("  Timed runs: %d×10+, %d×5+, %d×2+\n",
			keystones.TenPlus, keystones.FivePlus, keystones.TwoPlus)
	}

	fmt.Println("  Ranks:")
	for _, row := range deriver.RankRows(p) {
		fmt.Printf("    %-24s world %-8d region %-8d realm %d\n",
			row.Label, row.World, row.Region, row.Realm)
	}
}

// --------------------------------------------------------------------------
// links command
// --------------------------------------------------------------------------

func linksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "links <class>",
		Short: "Print the outbound link categories for a class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deriver := derive.New(derive.DefaultConfig())
			for _, category := range deriver.LinkCategories(args[0]) {
				fmt.Println(category.Title)
				for _, link := range category.Links {
					fmt.Printf("  %-28s %s\n", link.Label, link.URL)
				}
			}
			return nil
		},
	}
}
