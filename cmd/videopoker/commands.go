package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"videopoker/pkg/deck"
	"videopoker/pkg/handanalyzer"
	"videopoker/pkg/paytable"
	"videopoker/pkg/strategy"
)

// ClassifyCmd names the category of a hand
type ClassifyCmd struct {
	Cards []string `arg:"" help:"Five cards, e.g. 'As Ks Qs Js Ts' or As,Ks,Qs,Js,Ts"`
}

// Run classifies the hand and prints what it pays
func (c *ClassifyCmd) Run(a *app) error {
	cards, err := parseCards(c.Cards)
	if err != nil {
		return err
	}

	h, err := handanalyzer.New(cards, a.opts.Variant)
	if err != nil {
		return err
	}

	category := h.GetHand()
	units := paytable.Payout(category, a.opts.BetLevel, a.opts.Variant)

	fmt.Printf("%s  %s\n", formatCards(cards), categoryStyle.Render(category.String()))
	if wilds := h.GetWilds(); wilds > 0 {
		fmt.Printf("Wild cards: %d\n", wilds)
	}

	style := loseStyle
	if units > 0 {
		style = winStyle
	}

	fmt.Println(style.Render(fmt.Sprintf("Pays %d credits ($%.2f) at %d coins",
		units, paytable.Credits(units, a.opts.Denomination), a.opts.BetLevel)))

	return nil
}

// HoldCmd recommends a hold and shows the best alternatives
type HoldCmd struct {
	Cards []string `arg:"" help:"Five cards, e.g. 'Jc Jd 3h 7s 9c'"`
	Top   int      `short:"n" help:"Number of holds to list" default:"5"`
}

// Run evaluates all 32 holds and prints the top ones by expected value
func (c *HoldCmd) Run(ctx context.Context, a *app) error {
	hand, err := parseCards(c.Cards)
	if err != nil {
		return err
	}

	o := a.cfg.Optimizer(a.logger, a.opts.Variant, a.opts.BetLevel, a.cfg.Generator())
	decisions, err := o.Evaluate(ctx, hand, deck.Hand(deck.Build()).Without(hand))
	if err != nil {
		return err
	}

	ranked := o.Rank(decisions)
	top := min(max(c.Top, 1), len(ranked))

	fmt.Println(headerStyle.Render(fmt.Sprintf("%s, %d coins", a.opts.Variant.Name(), a.opts.BetLevel)))
	fmt.Printf("Hand: %s\n\n", formatCards(hand))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tHOLD\tCARDS\tEV\tTRIALS\tMETHOD")
	for i, d := range ranked[:top] {
		method := "sampled"
		if d.Exact {
			method = "exact"
		}

		held := "(draw five)"
		if d.Mask.Count() > 0 {
			held = deck.Hand(d.Mask.Apply(hand)).String()
		}

		fmt.Fprintf(w, "%d\t%s\t%s\t%.4f\t%d\t%s\n", i+1, d.Mask, held, d.EV, d.Trials, method)
	}

	if err := w.Flush(); err != nil {
		return err
	}

	best := ranked[0]
	fmt.Printf("\nBest hold: %s\n", heldStyle.Render(formatHold(hand, best.Mask)))

	return nil
}

// PaytableCmd prints the pay table for every bet level
type PaytableCmd struct{}

// Run prints the configured variant's pay table
func (c *PaytableCmd) Run(a *app) error {
	v := a.opts.Variant
	fmt.Println(headerStyle.Render(v.Name()))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(w, "HAND\t")
	for bet := paytable.MinBet; bet <= paytable.MaxBet; bet++ {
		fmt.Fprintf(w, "%d COIN\t", bet)
	}
	fmt.Fprintln(w)

	for _, row := range paytable.ForVariant(v).Rows(v) {
		fmt.Fprintf(w, "%s\t", row.Category)
		for _, pays := range row.Pays {
			fmt.Fprintf(w, "%d\t", pays)
		}
		fmt.Fprintln(w)
	}

	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nDenominations: ")
	for i, d := range paytable.Denominations(v) {
		if i > 0 {
			fmt.Print(", ")
		}
		fmt.Printf("$%.2f", d)
	}
	fmt.Println()

	return nil
}

// formatHold marks the held slots of the hand with brackets
func formatHold(hand []deck.Card, mask strategy.HoldMask) string {
	out := ""
	for i, c := range hand {
		if i > 0 {
			out += " "
		}

		if mask.Holds(i) {
			out += "[" + c.String() + "]"
		} else {
			out += " " + c.String() + " "
		}
	}

	return out
}
