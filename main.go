package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/big"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"

	"github.com/tipsypastels/balatro/blind"
	"github.com/tipsypastels/balatro/card"
	"github.com/tipsypastels/balatro/config"
	"github.com/tipsypastels/balatro/hand"
	"github.com/tipsypastels/balatro/joker"
	"github.com/tipsypastels/balatro/loghandler"
	"github.com/tipsypastels/balatro/random"
	"github.com/tipsypastels/balatro/scoring"
	"github.com/tipsypastels/balatro/slate"
	"github.com/tipsypastels/balatro/storage"
)

type options struct {
	configPath string
	hand       string
	jokers     string
	planets    string
	cards      string
	blind      string
	ante       uint
	seed       uint64
	history    int
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("balatro", flag.ContinueOnError)
	fs.StringVar(&o.configPath, "config", "", "config file (YAML or JSON); defaults to config.yaml/config.json if present")
	fs.StringVar(&o.hand, "hand", "high card", "hand type to score, e.g. \"full house\"")
	fs.StringVar(&o.jokers, "jokers", "", "comma-separated jokers in slot order, e.g. \"joker,stencil,misprint:negative\"")
	fs.StringVar(&o.planets, "planets", "", "comma-separated planets to use before scoring; \"black hole\" levels every hand")
	fs.StringVar(&o.cards, "cards", "", "comma-separated cards held in hand, e.g. \"AS,10h,kd:foil\"")
	fs.StringVar(&o.blind, "blind", "small", "blind being played: small, big or a boss such as \"the hook\"")
	fs.UintVar(&o.ante, "ante", 1, "current ante, starting at 1")
	fs.Uint64Var(&o.seed, "seed", 0, "random seed; 0 uses the configured seed or a fresh one")
	fs.IntVar(&o.history, "history", 0, "after scoring, list this many recent plays from the telemetry store")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	return o, nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found; using environment variables", "tag", "main")
	}

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		slog.Error("failed to load config", "tag", "main", "err", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "tag", "main", "err", err)
		os.Exit(1)
	}
	level, _ := loghandler.ParseLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(loghandler.NewCompactHandler(os.Stderr, level)))

	slog.Debug("configuration", "tag", "main",
		"joker_slots", cfg.JokerSlots,
		"consumable_slots", cfg.ConsumableSlots,
		"hand_size", cfg.HandSize,
	)

	if err := run(context.Background(), os.Stdout, cfg, opts); err != nil {
		slog.Error("play failed", "tag", "main", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer, cfg *config.Config, opts options) error {
	registry := joker.NewRegistry()
	joker.RegisterAll(registry, &cfg.Jokers)

	seed, err := pickSeed(opts.seed, cfg.Seed)
	if err != nil {
		return err
	}

	h, err := hand.ParseHandType(opts.hand)
	if err != nil {
		return err
	}
	b := blind.Small
	if opts.blind != "" {
		if b, err = blind.Parse(opts.blind); err != nil {
			return err
		}
	}
	var ante blind.Ante // ante 1 when unset
	if opts.ante > 0 {
		ante, _ = blind.NewAnte(uint8(min(opts.ante, math.MaxUint8)))
	}
	consumables, err := buildConsumables(cfg.ConsumableSlots, opts.planets)
	if err != nil {
		return err
	}
	states := useConsumables(hand.States{}, consumables)
	held, err := buildHand(cfg.HandSize, opts.cards)
	if err != nil {
		return err
	}
	jokers, err := buildJokers(registry, cfg.JokerSlots, opts.jokers)
	if err != nil {
		return err
	}

	var pipeline scoring.Pipeline
	store, err := storage.NewStore(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Warn("telemetry disabled", "tag", "storage", "err", err)
	} else if store != nil {
		defer store.Close()
		pipeline.Sink = &storage.Recorder{
			Store:   store,
			Timeout: time.Duration(cfg.StoreTimeoutMS) * time.Millisecond,
		}
	}

	res, err := pipeline.Play(scoring.Request{
		States:   states,
		HandType: h,
		Jokers:   jokers,
		Rand:     random.New(seed),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s, %s: reward %s, score x%d\n", b, ante, b.Reward(), b.ScoreMult())
	printHand(out, held)
	printResult(out, res, jokers, seed)

	if opts.history > 0 && store != nil {
		plays, err := store.ListPlays(ctx, opts.history)
		if err != nil {
			return fmt.Errorf("list plays: %w", err)
		}
		printHistory(out, plays)
	}
	return nil
}

func pickSeed(flagSeed, cfgSeed uint64) (uint64, error) {
	switch {
	case flagSeed != 0:
		return flagSeed, nil
	case cfgSeed != 0:
		return cfgSeed, nil
	default:
		return random.NewSeed()
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// consumable is a planet card waiting in a consumable slot.
type consumable struct {
	name string
	use  func(hand.States) hand.States
}

func (consumable) IsNegative() bool { return false }

func parseConsumable(name string) (consumable, error) {
	switch strings.ToLower(name) {
	case "black hole", "black_hole", "blackhole":
		return consumable{name: "Black Hole", use: hand.States.UseBlackHole}, nil
	}
	p, err := hand.ParsePlanet(name)
	if err != nil {
		return consumable{}, err
	}
	return consumable{
		name: p.String(),
		use:  func(s hand.States) hand.States { return s.UsePlanet(p) },
	}, nil
}

func buildConsumables(slots int, list string) (*slate.Slate[consumable], error) {
	s := slate.New[consumable](slots)
	for _, name := range splitList(list) {
		c, err := parseConsumable(name)
		if err != nil {
			return nil, err
		}
		if err := s.Push(c); err != nil {
			return nil, fmt.Errorf("cannot hold %s: %w", c.name, err)
		}
	}
	return s, nil
}

// useConsumables applies every held consumable in slot order.
func useConsumables(states hand.States, held *slate.Slate[consumable]) hand.States {
	for c := range held.Values() {
		states = c.use(states)
	}
	return states
}

func buildHand(size int, list string) (*slate.Slate[card.Card], error) {
	s := slate.New[card.Card](size)
	for _, spec := range splitList(list) {
		c, err := card.Parse(spec)
		if err != nil {
			return nil, err
		}
		if err := s.Push(c); err != nil {
			return nil, fmt.Errorf("cannot hold %s: %w", c, err)
		}
	}
	return s, nil
}

func buildJokers(r *joker.Registry, slots int, list string) (*slate.Slate[joker.Joker], error) {
	s := slate.New[joker.Joker](slots)
	for _, spec := range splitList(list) {
		j, err := r.Parse(spec)
		if err != nil {
			return nil, err
		}
		if err := s.Push(j); err != nil {
			return nil, fmt.Errorf("cannot add %s: %w", j, err)
		}
	}
	return s, nil
}

func commas(v uint64) string {
	return humanize.BigComma(new(big.Int).SetUint64(v))
}

func printHand(w io.Writer, held *slate.Slate[card.Card]) {
	if held.Len() == 0 {
		return
	}
	names := make([]string, 0, held.Len())
	for c := range held.Values() {
		names = append(names, c.String())
	}
	fmt.Fprintf(w, "hand %d/%d: %s\n", held.Len(), held.Cap(), strings.Join(names, "  "))
}

func printResult(w io.Writer, res scoring.Result, jokers *slate.Slate[joker.Joker], seed uint64) {
	fmt.Fprintf(w, "%s (level %d): %s chips x %s mult\n",
		res.HandType, res.Level, commas(res.BaseChips.Value()), commas(res.BaseMult.Value()))
	for _, st := range res.Steps {
		j := jokers.At(st.Index)
		fmt.Fprintf(w, "  %s slot  %-20s %-6s -> %s chips x %s mult\n",
			humanize.Ordinal(st.Index+1), j, j.Price(), commas(st.Chips.Value()), commas(st.Mult.Value()))
	}
	fmt.Fprintf(w, "total: %s  (slots %d/%d, seed %d, play %s)\n",
		commas(res.Total()), jokers.Len(), jokers.Cap(), seed, res.ID)
}

func printHistory(w io.Writer, plays []storage.PlayRecord) {
	fmt.Fprintf(w, "\nrecent plays:\n")
	for _, p := range plays {
		fmt.Fprintf(w, "  %-16s lvl %-3d %14s  %d jokers  %s\n",
			p.HandType, p.Level, commas(p.Total), len(p.Effects), humanize.Time(p.PlayedAt))
	}
}
