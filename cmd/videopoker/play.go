package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"videopoker/pkg/game"
	"videopoker/pkg/handanalyzer"
	"videopoker/pkg/strategy"
)

var errQuit = errors.New("quit")

// PlayCmd deals hands until the player quits
type PlayCmd struct {
	Hands int  `short:"n" help:"Number of hands to play; 0 plays until quit" default:"0"`
	Auto  bool `short:"a" help:"Always hold the recommended cards"`
	Hint  bool `help:"Show the recommended hold before each draw"`
}

// Run plays the session, reading holds from in
func (c *PlayCmd) Run(ctx context.Context, a *app, in io.Reader) error {
	g := a.cfg.Generator()
	opts := a.opts
	opts.ShowBestPlay = opts.ShowBestPlay || c.Hint || c.Auto

	session := game.NewSession(a.logger, g, a.cfg.Optimizer(a.logger, opts.Variant, opts.BetLevel, g))
	scanner := bufio.NewScanner(in)

	fmt.Println(headerStyle.Render(game.NameFromOptions(opts)))

	for hand := 1; c.Hands == 0 || hand <= c.Hands; hand++ {
		r, err := session.Deal(opts)
		if err != nil {
			return err
		}

		fmt.Printf("\nHand %d: %s\n", hand, formatCards(r.Hand()))
		fmt.Println("        1  2  3  4  5")

		var hint strategy.HoldMask
		if opts.ShowBestPlay {
			mask, _, err := r.Recommendation(ctx)
			if err != nil {
				return err
			}

			hint = mask
			fmt.Printf("Best play: %s\n", heldStyle.Render(formatHold(r.Hand(), mask)))
		}

		mask, quit := hint, false
		if !c.Auto {
			mask, err = promptHold(scanner)
			if errors.Is(err, errQuit) {
				// the wager is already taken; settle the hand with nothing held
				mask, quit = strategy.NoneHeld, true
			} else if err != nil {
				return err
			}
		}

		if err := r.SetHold(mask); err != nil {
			return err
		}

		outcome, err := session.Draw(r)
		if err != nil {
			return err
		}

		printOutcome(outcome, session)

		if quit {
			break
		}
	}

	printStats(&session.Stats)
	return nil
}

func promptHold(scanner *bufio.Scanner) (strategy.HoldMask, error) {
	for {
		fmt.Print("Hold (slots like 1 3 5, a mask like 10100, enter to draw, q to quit): ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return strategy.NoneHeld, err
			}

			return strategy.NoneHeld, errQuit
		}

		mask, err := parseHolds(scanner.Text())
		if err == nil || errors.Is(err, errQuit) {
			return mask, err
		}

		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

// parseHolds accepts either a five character mask or a list of 1-based slots
func parseHolds(s string) (strategy.HoldMask, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "":
		return strategy.NoneHeld, nil
	case "q", "quit":
		return strategy.NoneHeld, errQuit
	case "a", "all":
		return strategy.AllHeld, nil
	}

	if len(s) == 5 && strings.Trim(s, "01") == "" {
		return strategy.ParseHoldMask(s)
	}

	mask := strategy.NoneHeld
	for _, field := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' }) {
		for _, r := range field {
			if r < '1' || r > '5' {
				return strategy.NoneHeld, fmt.Errorf("invalid slot %q: slots are 1 to 5", string(r))
			}

			slot := int(r - '1')
			if mask.Holds(slot) {
				return strategy.NoneHeld, fmt.Errorf("slot %d given twice", slot+1)
			}

			mask = mask.Toggle(slot)
		}
	}

	return mask, nil
}

func printOutcome(outcome *game.Outcome, session *game.Session) {
	fmt.Printf("Drew:   %s\n", formatCards(outcome.Hand))

	if outcome.PayoutUnits > 0 {
		fmt.Println(winStyle.Render(fmt.Sprintf("%s! Won %d credits ($%s)",
			outcome.Category, outcome.PayoutUnits, game.FormatMoney(outcome.Payout))))
	} else {
		fmt.Println(loseStyle.Render(outcome.Category.String()))
	}

	fmt.Printf("Net: $%s  Streak: %s\n", game.FormatMoney(session.Stats.Net()), session.Stats.StreakLabel())
}

func printStats(stats *game.Stats) {
	fmt.Println()
	fmt.Println(headerStyle.Render("Session"))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Hands played\t%d\n", stats.HandsPlayed)
	fmt.Fprintf(w, "Wagered\t$%s\n", game.FormatMoney(stats.TotalWagered))
	fmt.Fprintf(w, "Won\t$%s\n", game.FormatMoney(stats.TotalWon))
	fmt.Fprintf(w, "Net\t$%s\n", game.FormatMoney(stats.Net()))
	fmt.Fprintf(w, "Return\t%.1f%%\n", stats.RTP())

	categories := make([]handanalyzer.Category, 0, len(stats.HandCounts))
	for c := range stats.HandCounts {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i] > categories[j]
	})

	for _, c := range categories {
		fmt.Fprintf(w, "%s\t%d\n", categoryStyle.Render(c.String()), stats.HandCounts[c])
	}

	_ = w.Flush()
}
