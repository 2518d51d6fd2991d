package joker

import (
	"fmt"
	"strings"

	"github.com/tipsypastels/balatro/config"
	"github.com/tipsypastels/balatro/gameerrors"
	"github.com/tipsypastels/balatro/score"
)

// Registry holds the known joker kinds indexed by ID.
type Registry struct {
	kinds map[string]Kind
	order []string // registration order for deterministic All()
}

// Entry is a registered kind and its ID.
type Entry struct {
	ID   string
	Kind Kind
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{kinds: make(map[string]Kind)}
}

// Register adds kind under id. Registering an id again replaces the kind
// but keeps its original position.
func (r *Registry) Register(id string, kind Kind) {
	if _, exists := r.kinds[id]; !exists {
		r.order = append(r.order, id)
	}
	r.kinds[id] = kind
}

// Get returns the kind registered under id.
func (r *Registry) Get(id string) (Kind, bool) {
	k, ok := r.kinds[id]
	return k, ok
}

// New builds a joker of the kind registered under id.
func (r *Registry) New(id string, opts ...Option) (Joker, error) {
	k, ok := r.kinds[id]
	if !ok {
		return Joker{}, fmt.Errorf("%w: %q", gameerrors.ErrUnknownJoker, id)
	}
	return New(k, opts...), nil
}

// Parse builds a joker from "id" or "id:edition", e.g. "misprint:negative".
func (r *Registry) Parse(s string) (Joker, error) {
	id, ed, hasEdition := strings.Cut(strings.TrimSpace(s), ":")
	var opts []Option
	if hasEdition {
		e, err := ParseEdition(ed)
		if err != nil {
			return Joker{}, err
		}
		opts = append(opts, WithEdition(e))
	}
	return r.New(strings.ToLower(id), opts...)
}

// ParseEdition maps an edition name to a joker edition. The empty string
// and "none" mean no edition.
func ParseEdition(s string) (Edition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return Edition{}, nil
	case "foil":
		return Foil(), nil
	case "holographic", "holo":
		return Holographic(), nil
	case "polychrome", "poly":
		return Polychrome(), nil
	case "negative", "neg":
		return Negative(), nil
	default:
		return Edition{}, fmt.Errorf("%w: %q", gameerrors.ErrUnknownEdition, s)
	}
}

// All returns every registered kind in registration order.
func (r *Registry) All() []Entry {
	out := make([]Entry, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, Entry{ID: id, Kind: r.kinds[id]})
	}
	return out
}

// IDs for the built-in kinds.
const (
	IDJimbo      = "joker"
	IDMisprint   = "misprint"
	IDStencil    = "stencil"
	IDCreditCard = "credit_card"
)

// RegisterAll registers the built-in kinds using cfg. A nil cfg uses
// config.Defaults().
func RegisterAll(r *Registry, cfg *config.JokersConfig) {
	if cfg == nil {
		cfg = &config.Defaults().Jokers
	}
	r.Register(IDJimbo, &Jimbo{PriceValue: score.Money(cfg.Jimbo.Price), Mult: cfg.Jimbo.Mult})
	r.Register(IDMisprint, &Misprint{
		PriceValue: score.Money(cfg.Misprint.Price),
		MinMult:    cfg.Misprint.MinMult,
		MaxMult:    cfg.Misprint.MaxMult,
	})
	r.Register(IDStencil, &Stencil{PriceValue: score.Money(cfg.Stencil.Price)})
	r.Register(IDCreditCard, &CreditCard{PriceValue: score.Money(cfg.CreditCard.Price)})
}
