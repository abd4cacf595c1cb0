package core

import (
	"errors"
	"fmt"
	"sort"
)

// MaxScrambleMoves caps the number of toggles any policy may request.
const MaxScrambleMoves = 1 << 20

// ErrUnknownPolicy is returned when a policy name is not registered.
var ErrUnknownPolicy = errors.New("unknown scramble policy")

// Policy decides how many random toggles a scramble applies for a grid of the
// given dimensions and color count.
type Policy func(width, height, colors int) int

// LinearPolicy applies one toggle per cell.
func LinearPolicy(width, height, colors int) int {
	return saturatingMul(width, height)
}

// QuadraticPolicy applies width*height*colors² toggles.
func QuadraticPolicy(width, height, colors int) int {
	return saturatingMul(saturatingMul(width, height), saturatingMul(colors, colors))
}

// ExponentialPolicy applies width^height toggles.
func ExponentialPolicy(width, height, colors int) int {
	if height <= 0 || width <= 0 {
		return 0
	}
	n := 1
	for i := 0; i < height; i++ {
		n = saturatingMul(n, width)
		if n == MaxScrambleMoves {
			break
		}
	}
	return n
}

func saturatingMul(a, b int) int {
	if a <= 0 || b <= 0 {
		return 0
	}
	if a > MaxScrambleMoves/b {
		return MaxScrambleMoves
	}
	return a * b
}

var policies = map[string]Policy{}

// RegisterPolicy adds a scramble policy under the provided name.
func RegisterPolicy(name string, p Policy) {
	if name == "" || p == nil {
		return
	}
	policies[name] = p
}

// LookupPolicy returns the policy registered under name.
func LookupPolicy(name string) (Policy, error) {
	p, ok := policies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
	return p, nil
}

// PolicyNames lists the registered policies in sorted order.
func PolicyNames() []string {
	names := make([]string, 0, len(policies))
	for name := range policies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultPolicyName names the policy used when none is configured.
const DefaultPolicyName = "linear"

func init() {
	RegisterPolicy("linear", LinearPolicy)
	RegisterPolicy("quadratic", QuadraticPolicy)
	RegisterPolicy("exponential", ExponentialPolicy)
}

// Scramble clears the grid and applies policy-many forward toggles at
// uniformly random cells. The applied coordinates are returned in order;
// undoing them in reverse with reverse toggles restores the zero grid, so the
// result is always solvable.
func Scramble(g *Grid, mode Mode, colors int, rng *RNG, policy Policy) []Coord {
	g.Clear()
	if policy == nil {
		policy = LinearPolicy
	}
	n := policy(g.W, g.H, colors)
	if n <= 0 || colors < MinColors || colors > MaxColors {
		return nil
	}
	if n > MaxScrambleMoves {
		n = MaxScrambleMoves
	}
	moves := make([]Coord, 0, n)
	for i := 0; i < n; i++ {
		x := rng.IntN(g.W)
		y := rng.IntN(g.H)
		if _, err := Toggle(g, x, y, mode, colors, false); err != nil {
			continue
		}
		moves = append(moves, Coord{X: x, Y: y})
	}
	return moves
}
