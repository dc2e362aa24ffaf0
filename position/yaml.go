// Package position reads board snapshots from YAML documents and from
// bgammon game states.
package position

import (
	"fmt"
	"os"
	"strings"

	"codeberg.org/tslocum/bgboard/board"
	"gopkg.in/yaml.v3"
)

type document struct {
	Board       []int          `yaml:"board"`
	Turn        string         `yaml:"turn"`
	Dice        diceDoc        `yaml:"dice"`
	Cube        cubeDoc        `yaml:"cube"`
	Match       matchDoc       `yaml:"match"`
	BorneOff    borneOffDoc    `yaml:"borne_off"`
	Resignation resignationDoc `yaml:"resignation"`
}

type diceDoc struct {
	Values []int  `yaml:"values"`
	Owner  string `yaml:"owner"`
}

type cubeDoc struct {
	Value             int    `yaml:"value"`
	PlayerMayDouble   bool   `yaml:"player_may_double"`
	OpponentMayDouble bool   `yaml:"opponent_may_double"`
	DoubledBy         string `yaml:"doubled_by"`
}

type matchDoc struct {
	Length        int  `yaml:"length"`
	PlayerScore   int  `yaml:"player_score"`
	OpponentScore int  `yaml:"opponent_score"`
	Crawford      bool `yaml:"crawford"`
}

type borneOffDoc struct {
	Player   int `yaml:"player"`
	Opponent int `yaml:"opponent"`
}

type resignationDoc struct {
	Offered bool   `yaml:"offered"`
	Value   int    `yaml:"value"`
	By      string `yaml:"by"`
}

// Load reads a snapshot document from path.
func Load(path string) (*board.Snapshot, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	snap, err := Parse(buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return snap, nil
}

// Parse decodes a snapshot document. An omitted board is the starting
// position. An omitted dice owner is the side on turn.
func Parse(buf []byte) (*board.Snapshot, error) {
	var doc document
	if err := yaml.Unmarshal(buf, &doc); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}

	snap := &board.Snapshot{
		Cube: board.Cube{
			Value:             doc.Cube.Value,
			PlayerMayDouble:   doc.Cube.PlayerMayDouble,
			OpponentMayDouble: doc.Cube.OpponentMayDouble,
		},
		Match: board.Match{
			Length:        doc.Match.Length,
			PlayerScore:   doc.Match.PlayerScore,
			OpponentScore: doc.Match.OpponentScore,
			Crawford:      doc.Match.Crawford,
		},
		BorneOff: board.BorneOff{
			Player:   doc.BorneOff.Player,
			Opponent: doc.BorneOff.Opponent,
		},
		Resignation: board.Resignation{
			Offered: doc.Resignation.Offered,
			Value:   doc.Resignation.Value,
		},
	}

	switch len(doc.Board) {
	case 0:
		snap.Board = board.StartingBoard()
	case board.BoardSpaces:
		copy(snap.Board[:], doc.Board)
	default:
		return nil, fmt.Errorf("board has %d spaces, expected %d", len(doc.Board), board.BoardSpaces)
	}

	var err error
	if snap.Turn, err = ParseSide(doc.Turn); err != nil {
		return nil, fmt.Errorf("turn: %w", err)
	}
	if snap.Cube.DoubledBy, err = ParseSide(doc.Cube.DoubledBy); err != nil {
		return nil, fmt.Errorf("cube: %w", err)
	}
	if snap.Resignation.By, err = ParseSide(doc.Resignation.By); err != nil {
		return nil, fmt.Errorf("resignation: %w", err)
	}

	if len(doc.Dice.Values) > 2 {
		return nil, fmt.Errorf("dice: %d values, expected at most 2", len(doc.Dice.Values))
	}
	for i, v := range doc.Dice.Values {
		if v < 0 || v > 6 {
			return nil, fmt.Errorf("dice: invalid face %d", v)
		}
		snap.Dice.Values[i] = v
	}
	snap.Dice.Owner = snap.Turn
	if doc.Dice.Owner != "" {
		if snap.Dice.Owner, err = ParseSide(doc.Dice.Owner); err != nil {
			return nil, fmt.Errorf("dice: %w", err)
		}
	}
	return snap, nil
}

// ParseSide parses none, player or opponent. An empty string is none.
func ParseSide(s string) (board.Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return board.SideNone, nil
	case "player":
		return board.SidePlayer, nil
	case "opponent":
		return board.SideOpponent, nil
	default:
		return board.SideNone, fmt.Errorf("unknown side %q", s)
	}
}
