package customers

import "github.com/lemonworks/lemonstand/internal/entropy"

// Per-star review text pools shown on the reviews board.
var reviewTexts = map[int][]string{
	5: {
		"Best lemonade I've ever had! Worth every penny.",
		"Absolutely perfect. Sweet, tart, and ice cold.",
		"This stand is my new summer tradition!",
		"Incredible! The kids begged to come back tomorrow.",
		"Five stars. Tastes like real lemons, not powder.",
		"Refreshing and delicious. Highly recommend!",
	},
	4: {
		"Really good lemonade, just a touch pricey.",
		"Tasty! Would have loved a bigger cup.",
		"Solid stand, friendly service, good drink.",
		"Almost perfect, maybe a little more sugar next time.",
	},
	3: {
		"It was fine. Nothing special.",
		"Decent lemonade but I've had better.",
		"Okay for the price, I guess.",
		"Average. Quenched my thirst at least.",
	},
	2: {
		"Pretty watery. Expected more.",
		"Too sour for me, couldn't finish it.",
		"Overpriced for what you get.",
		"Meh. The cup was mostly ice.",
	},
	1: {
		"Terrible. Tasted like lemon-scented water.",
		"Waste of money. Avoid this stand.",
		"Undrinkable. How do you mess up lemonade?",
		"One star is generous.",
	},
}

func randomReviewText(src entropy.Source, stars int) string {
	pool := reviewTexts[stars]
	if len(pool) == 0 {
		return ""
	}
	return entropy.Pick(src, pool)
}
