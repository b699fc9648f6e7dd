// Package social handles pairing between villagers. Marriage is mutual and
// exclusive, and there is no path back to single.
package social

import (
	"errors"
	"fmt"

	"github.com/talgya/hamlet/internal/agents"
	"github.com/talgya/hamlet/internal/config"
	"github.com/talgya/hamlet/internal/entropy"
)

var (
	ErrSelfMarriage   = errors.New("a villager cannot marry itself")
	ErrNotAlive       = errors.New("villager is not alive")
	ErrAlreadyMarried = errors.New("villager is already married")
)

// Eligible reports whether v may be picked for marriage.
func Eligible(v *agents.Villager, cfg config.MarriageConfig) bool {
	return v.Alive &&
		v.IsSingle() &&
		v.Status.Health >= cfg.MinHealth &&
		v.Status.Hunger >= cfg.MinHunger &&
		v.Coins >= cfg.MinCoins &&
		v.Inventory.Count("food") >= cfg.MinFood
}

// Candidates filters villagers down to the eligible ones, preserving order.
func Candidates(villagers []*agents.Villager, cfg config.MarriageConfig) []*agents.Villager {
	var out []*agents.Villager
	for _, v := range villagers {
		if Eligible(v, cfg) {
			out = append(out, v)
		}
	}
	return out
}

// PickPair draws two distinct candidates. It takes exactly two draws when
// there are at least two candidates and none otherwise.
func PickPair(candidates []*agents.Villager, rng *entropy.Source) (*agents.Villager, *agents.Villager, bool) {
	n := len(candidates)
	if n < 2 {
		return nil, nil, false
	}
	i := rng.Intn(n)
	j := rng.Intn(n - 1)
	if j >= i {
		j++
	}
	return candidates[i], candidates[j], true
}

// Marry links a and b to each other. Nothing changes on error.
func Marry(a, b *agents.Villager) error {
	if a.ID == b.ID {
		return ErrSelfMarriage
	}
	for _, v := range []*agents.Villager{a, b} {
		if !v.Alive {
			return fmt.Errorf("villager %d: %w", v.ID, ErrNotAlive)
		}
		if !v.IsSingle() {
			return fmt.Errorf("villager %d: %w", v.ID, ErrAlreadyMarried)
		}
	}
	a.Relationship, a.Partner = agents.Married, b.ID
	b.Relationship, b.Partner = agents.Married, a.ID
	return nil
}
