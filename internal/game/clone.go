/*
Package game
File: clone.go
Description:
    Deep copy of a GameState. Every successful action returns a new,
    structurally independent snapshot; the input snapshot is never touched.
    The Universe content tables are static and shared by pointer.
*/

package game

// Clone returns a structurally independent copy of the state. Mutating the
// clone never affects the original, which is what lets callers keep old
// snapshots around (the presentation layer's undo is exactly that).
func (s *GameState) Clone() *GameState {
	c := *s

	c.Board.Probes = make([]Probe, len(s.Board.Probes))
	for i, p := range s.Board.Probes {
		c.Board.Probes[i] = p
		if p.Position != nil {
			pos := *p.Position
			c.Board.Probes[i].Position = &pos
		}
	}
	c.Board.Discovered = make(map[string]bool, len(s.Board.Discovered))
	for k, v := range s.Board.Discovered {
		c.Board.Discovered[k] = v
	}

	c.Players = make([]Player, len(s.Players))
	for i, p := range s.Players {
		c.Players[i] = p
		c.Players[i].Hand = append([]string(nil), p.Hand...)
		c.Players[i].Technologies = append([]string(nil), p.Technologies...)
		c.Players[i].Probes = append([]string(nil), p.Probes...)
		c.Players[i].Milestones = append([]int(nil), p.Milestones...)
	}

	c.Deck = append([]string(nil), s.Deck...)
	c.Discard = append([]string(nil), s.Discard...)
	c.Row = append([]string(nil), s.Row...)

	return &c
}
