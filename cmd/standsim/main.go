// Command standsim runs a headless season of the lemonade stand with a
// simple buy-mix-sell strategy. Useful for balancing: run a few hundred
// days and watch where the money goes.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/lemonworks/lemonstand/internal/entropy"
	"github.com/lemonworks/lemonstand/internal/game"
	"github.com/lemonworks/lemonstand/internal/recipe"
	"github.com/lemonworks/lemonstand/internal/sale"
	"github.com/lemonworks/lemonstand/internal/traffic"
)

func main() {
	days := flag.Int("days", 30, "number of days to simulate")
	seed := flag.Int64("seed", 42, "random seed")
	verbose := flag.Bool("v", false, "log every sale")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	src := entropy.NewSeeded(*seed)
	s := game.New(src)
	slog.Info("season opens", "money", money(s.Money), "date", fmt.Sprintf("%s %d", s.MonthName, s.DayNum))

	prices := sale.Prices{Small: 1.50, Medium: 2.40, Large: 3.60}
	for i := 0; i < *days; i++ {
		restock(s)

		batch, err := s.MixLemonade(recipe.LemonCounts{Normal: s.Inventory.Lemons.Normal},
			sugarFor(s), waterFor(s), recipe.OneGal)
		if err != nil {
			slog.Debug("skipped mixing", "reason", err)
		}

		if len(s.Inventory.LemonadeBatches) > 0 {
			ids := make([]string, 0, len(s.Inventory.LemonadeBatches))
			for _, b := range s.Inventory.LemonadeBatches {
				ids = append(ids, b.ID)
			}
			sess, err := s.StartSale(src, traffic.Driveway, ids, prices)
			if err == nil {
				res := sess.Run()
				s.ApplySale(traffic.Driveway, res)
				slog.Info("day closed",
					"day", s.DayCount,
					"date", fmt.Sprintf("%s %d", s.MonthName, s.DayNum),
					"weather", s.Weather.CurrentWeather,
					"temp", s.Weather.CurrentTemp,
					"served", res.TotalSales,
					"revenue", money(res.TotalRevenue),
					"tips", money(res.TotalTips),
					"quality", batch.Quality,
				)
			} else {
				slog.Warn("could not open stand", "reason", err)
			}
		}

		s.AdvanceDay()
	}

	fmt.Println()
	fmt.Printf("After %s days:\n", humanize.Comma(int64(*days)))
	fmt.Printf("  cash        %s\n", money(s.Money))
	fmt.Printf("  tip savings %s\n", money(s.TipsSavings))
	fmt.Printf("  earned      %s across %s customers\n",
		money(s.Statistics.TotalEarned), humanize.Comma(int64(s.Statistics.TotalServed)))
	fmt.Printf("  spent       %s groceries, %s supplies\n",
		money(s.Statistics.TotalSpentGrocery), money(s.Statistics.TotalSpentSupplies))
	if rating, count := s.ReviewRating(traffic.Driveway); count > 0 {
		fmt.Printf("  reviews     %.1f stars from %s reviews\n", rating, humanize.Comma(int64(count)))
	}
}

func money(v float64) string {
	return "$" + humanize.CommafWithDigits(v, 2)
}

// restock tops the pantry up for one gallon batch a day.
func restock(s *game.State) {
	cart := map[string]int{}
	if s.Inventory.Lemons.Normal < 10 {
		cart["lemons_normal"] = 10 - s.Inventory.Lemons.Normal
	}
	if s.Inventory.SugarLbs < 0.5 {
		cart["sugar_lbs"] = 1
	}
	if s.Inventory.Containers[recipe.OneGal] < 1 {
		cart["container_one_gal"] = 1
	}
	if len(cart) == 0 {
		return
	}
	if err := s.BuyItems(cart); err != nil {
		slog.Debug("restock skipped", "reason", err)
	}
}

// sugarFor keeps the 25 g per 8 oz ratio for today's juice yield.
func sugarFor(s *game.State) float64 {
	juice := recipe.JuiceYield(s.Inventory.Lemons, s.Inventory.JuicerLevel)
	return (juice + waterFor(s)) / (recipe.PerfectWaterOz + recipe.PerfectJuiceOz) * recipe.PerfectSugarGram
}

// waterFor is three parts water to one part juice.
func waterFor(s *game.State) float64 {
	return recipe.JuiceYield(s.Inventory.Lemons, s.Inventory.JuicerLevel) * 3
}
