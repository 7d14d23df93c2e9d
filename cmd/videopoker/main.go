package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"videopoker/internal/config"
	"videopoker/pkg/deck"
	"videopoker/pkg/game"
)

var cli struct {
	Variant      string  `short:"v" help:"Game variant (jacks-or-better, deuces-wild)"`
	Bet          int     `short:"b" help:"Coins bet per hand (1-5)"`
	Denomination float64 `short:"d" help:"Coin size in dollars"`
	Seed         int64   `help:"Random seed for reproducible deals and sampling; 0 uses crypto/rand"`
	Debug        bool    `help:"Enable debug logging"`
	NoColor      bool    `help:"Disable colored output"`

	Classify ClassifyCmd `cmd:"" help:"Classify a five card hand and show its payout"`
	Hold     HoldCmd     `cmd:"" help:"Find the hold with the highest expected payout"`
	Paytable PaytableCmd `cmd:"" help:"Show the pay table"`
	Play     PlayCmd     `cmd:"" help:"Deal and draw hands interactively"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	redSuitStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))

	heldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	winStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	loseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)

// app carries what every command needs once flags and config are merged
type app struct {
	cfg    config.Config
	opts   game.Options
	logger *logrus.Logger
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("videopoker"),
		kong.Description("Video poker: Jacks or Better and Deuces Wild"),
		kong.UsageOnError(),
	)

	if cli.NoColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}

	switch ctx.Command() {
	case "classify <cards>":
		err = cli.Classify.Run(a)
	case "hold <cards>":
		err = cli.Hold.Run(context.Background(), a)
	case "paytable":
		err = cli.Paytable.Run(a)
	case "play":
		err = cli.Play.Run(context.Background(), a, os.Stdin)
	default:
		err = fmt.Errorf("unknown command: %s", ctx.Command())
	}

	ctx.FatalIfErrorf(err)
}

func newApp() (*app, error) {
	if err := config.Load(); err != nil {
		return nil, err
	}

	cfg := config.Instance()
	if cli.Variant != "" {
		cfg.Game.Variant = cli.Variant
	}

	if cli.Bet != 0 {
		cfg.Game.BetLevel = cli.Bet
	}

	if cli.Denomination != 0 {
		cfg.Game.Denomination = cli.Denomination
	}

	if cli.Seed != 0 {
		cfg.Seed = cli.Seed
	}

	if cli.Debug {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts, err := cfg.GameOptions()
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if err := cfg.SetupLogger(logger); err != nil {
		return nil, err
	}

	return &app{
		cfg:    cfg,
		opts:   opts,
		logger: logger,
	}, nil
}

// parseCards reads exactly five distinct cards from one or more arguments
func parseCards(args []string) ([]deck.Card, error) {
	cards, err := deck.CardsFromString(strings.Join(args, " "))
	if err != nil {
		return nil, err
	}

	if len(cards) != 5 {
		return nil, fmt.Errorf("hand must contain exactly 5 cards, got %d", len(cards))
	}

	if dup, ok := deck.Hand(cards).Duplicate(); ok {
		return nil, fmt.Errorf("duplicate card: %s", deck.CardToString(dup))
	}

	return cards, nil
}

func formatCard(c deck.Card) string {
	if c.Suit == deck.Hearts || c.Suit == deck.Diamonds {
		return redSuitStyle.Render(c.String())
	}

	return handStyle.Render(c.String())
}

func formatCards(cards []deck.Card) string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = formatCard(c)
	}

	return strings.Join(out, " ")
}
