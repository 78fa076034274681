package config

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultAIDepth is the search depth of "ai" tokens without a usable depth.
const DefaultAIDepth = 3

// PlayerKind distinguishes interactive from computer players.
type PlayerKind int

const (
	Human PlayerKind = iota
	Computer
)

// PlayerConfig selects the player for one side.
type PlayerConfig struct {
	Kind PlayerKind
	// Depth is the search depth of a Computer player.
	Depth int
}

// String returns the token ParsePlayerToken reads back: "cli" or "ai<depth>".
func (p PlayerConfig) String() string {
	if p.Kind == Human {
		return "cli"
	}
	return fmt.Sprintf("ai%d", p.Depth)
}

// ParsePlayerToken reads a player token. "cli" selects the interactive
// player; "ai" followed by digits selects a computer player searching at
// that depth. Any other token, including a bare "ai", selects a computer
// player at DefaultAIDepth.
func ParsePlayerToken(token string) PlayerConfig {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "cli" {
		return PlayerConfig{Kind: Human}
	}
	if digits, ok := strings.CutPrefix(token, "ai"); ok {
		if depth, err := strconv.Atoi(digits); err == nil && depth >= 0 {
			return PlayerConfig{Kind: Computer, Depth: depth}
		}
	}
	return PlayerConfig{Kind: Computer, Depth: DefaultAIDepth}
}
