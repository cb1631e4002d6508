/*
Package game
File: economy.go
Description:
    The resource/card/technology collaborators. These are pure functions the
    action engine calls to apply economic side effects: drawing cards,
    granting bonuses, buying from the shared row and converting resources.
    They own the cost tables; the action engine treats them as black boxes
    and merges their results into its own.
*/

package game

import "fmt"

// Trade exchange values in credit-equivalents. Media coverage is earned,
// never traded; cards change hands only through draws and purchases.
var tradeValue = map[string]int{
	"credits": 1,
	"energy":  1,
	"data":    2,
}

// gainMedia raises media coverage, clamped to the configured cap.
func gainMedia(s *GameState, pl *Player, amount int) {
	pl.Media += amount
	if pl.Media > s.Universe.Balance.MediaCap {
		pl.Media = s.Universe.Balance.MediaCap
	}
	if pl.Media < 0 {
		pl.Media = 0
	}
}

// gainData raises data, clamped to the configured cap.
func gainData(s *GameState, pl *Player, amount int) {
	pl.Data += amount
	if pl.Data > s.Universe.Balance.DataCap {
		pl.Data = s.Universe.Balance.DataCap
	}
	if pl.Data < 0 {
		pl.Data = 0
	}
}

// gainScore adds score and claims any milestone the new total crossed.
// Each milestone is claimed once per player and pays out one card draw.
func gainScore(s *GameState, pl *Player, amount int) {
	before := pl.Score
	pl.Score += amount
	for _, m := range s.Universe.Balance.ScoreMilestones {
		if before < m && pl.Score >= m && !claimed(pl, m) {
			pl.Milestones = append(pl.Milestones, m)
			DrawCards(s, pl.ID, 1, "milestone")
		}
	}
}

func claimed(pl *Player, milestone int) bool {
	for _, m := range pl.Milestones {
		if m == milestone {
			return true
		}
	}
	return false
}

// applyGains applies a full resource bundle to a player, routing each field
// through its capped/side-effecting path.
func applyGains(s *GameState, pl *Player, g Gains, reason string) {
	pl.Credits += g.Credits
	pl.Energy += g.Energy
	gainMedia(s, pl, g.Media)
	gainData(s, pl, g.Data)
	if g.Cards > 0 {
		DrawCards(s, pl.ID, g.Cards, reason)
	}
	if g.Score != 0 {
		gainScore(s, pl, g.Score)
	}
}

// DrawCards moves up to count cards from the top of the deck into the
// player's hand. The deck order is part of the snapshot, so draws are
// deterministic; an exhausted deck simply stops the draw short. The reason
// tag is narration only.
func DrawCards(s *GameState, playerID string, count int, reason string) {
	pl, _ := s.FindPlayer(playerID)
	if pl == nil {
		return
	}
	for i := 0; i < count && len(s.Deck) > 0; i++ {
		pl.Hand = append(pl.Hand, s.Deck[0])
		s.Deck = s.Deck[1:]
	}
	_ = reason
}

// refillRow tops the shared face-up card row back up from the deck.
func refillRow(s *GameState) {
	for len(s.Row) < s.Universe.Balance.CardRowSize && len(s.Deck) > 0 {
		s.Row = append(s.Row, s.Deck[0])
		s.Deck = s.Deck[1:]
	}
}

// BuyCard purchases a card from the shared row (by key), or blind off the
// top of the deck when cardKey is empty. The row refills from the deck.
func BuyCard(s *GameState, pl *Player, cardKey string) ([]string, *RuleError) {
	// Blind buy: deck top at half price, rounded up.
	if cardKey == "" {
		if len(s.Deck) == 0 {
			return nil, ruleErrf(CodeCardNotInRow, "the deck is empty")
		}
		def := s.Universe.Card(s.Deck[0])
		if def == nil {
			return nil, ruleErrf(CodeUnknownCard, "deck holds unknown card %q", s.Deck[0])
		}
		cost := (def.Cost + 1) / 2
		if pl.Credits < cost {
			return nil, ruleErrf(CodeInsufficientCredits, "blind buy costs %d credits, player %s has %d", cost, pl.ID, pl.Credits)
		}
		pl.Credits -= cost
		pl.Hand = append(pl.Hand, def.Key)
		s.Deck = s.Deck[1:]
		return []string{fmt.Sprintf("%s bought a card blind from the deck", pl.ID)}, nil
	}

	def := s.Universe.Card(cardKey)
	if def == nil {
		return nil, ruleErrf(CodeUnknownCard, "no card %q", cardKey)
	}
	idx := -1
	for i, k := range s.Row {
		if k == cardKey {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ruleErrf(CodeCardNotInRow, "card %q is not in the shared row", cardKey)
	}
	if pl.Credits < def.Cost {
		return nil, ruleErrf(CodeInsufficientCredits, "%s costs %d credits, player %s has %d", cardKey, def.Cost, pl.ID, pl.Credits)
	}

	pl.Credits -= def.Cost
	pl.Hand = append(pl.Hand, cardKey)
	s.Row = append(s.Row[:idx], s.Row[idx+1:]...)
	refillRow(s)
	return []string{fmt.Sprintf("%s bought %s", pl.ID, def.Name)}, nil
}

// playCard applies a hand card's effect and moves it to the discard pile.
func playCard(s *GameState, pl *Player, cardKey string) ([]string, *RuleError) {
	def := s.Universe.Card(cardKey)
	if def == nil {
		return nil, ruleErrf(CodeUnknownCard, "no card %q", cardKey)
	}
	if !removeFromHand(pl, cardKey) {
		return nil, ruleErrf(CodeCardNotInHand, "card %q is not in %s's hand", cardKey, pl.ID)
	}
	applyGains(s, pl, def.Effect, "card")
	pl.FreeSteps += def.FreeSteps
	s.Discard = append(s.Discard, cardKey)
	return []string{fmt.Sprintf("%s played %s", pl.ID, def.Name)}, nil
}

func removeFromHand(pl *Player, cardKey string) bool {
	for i, k := range pl.Hand {
		if k == cardKey {
			pl.Hand = append(pl.Hand[:i], pl.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// TradeResources converts one resource bundle into another at the exchange
// values above, and lets the player discard hand cards for their free-step
// value. The spend side must cover the gain side in credit-equivalents.
func TradeResources(s *GameState, pl *Player, spend, gain Gains, cardKeys []string) ([]string, *RuleError) {
	if spend.Cards != 0 || gain.Cards != 0 || spend.Media != 0 || gain.Media != 0 || spend.Score != 0 || gain.Score != 0 {
		return nil, ruleErrf(CodeInsufficientTrade, "only credits, energy and data can be traded")
	}
	if spend.Credits < 0 || spend.Energy < 0 || spend.Data < 0 || gain.Credits < 0 || gain.Energy < 0 || gain.Data < 0 {
		return nil, ruleErrf(CodeInsufficientTrade, "trade amounts must be non-negative")
	}
	if pl.Credits < spend.Credits {
		return nil, ruleErrf(CodeInsufficientCredits, "trade spends %d credits, player %s has %d", spend.Credits, pl.ID, pl.Credits)
	}
	if pl.Energy < spend.Energy {
		return nil, ruleErrf(CodeInsufficientEnergy, "trade spends %d energy, player %s has %d", spend.Energy, pl.ID, pl.Energy)
	}
	if pl.Data < spend.Data {
		return nil, ruleErrf(CodeInsufficientTrade, "trade spends %d data, player %s has %d", spend.Data, pl.ID, pl.Data)
	}

	spendValue := spend.Credits*tradeValue["credits"] + spend.Energy*tradeValue["energy"] + spend.Data*tradeValue["data"]
	gainValue := gain.Credits*tradeValue["credits"] + gain.Energy*tradeValue["energy"] + gain.Data*tradeValue["data"]
	if !spendGainEmpty(spend, gain) && spendValue < gainValue {
		return nil, ruleErrf(CodeInsufficientTrade, "spend value %d does not cover gain value %d", spendValue, gainValue)
	}

	// Card discards ride along with the trade: each grants its free-step
	// value for later movement.
	for _, key := range cardKeys {
		def := s.Universe.Card(key)
		if def == nil {
			return nil, ruleErrf(CodeUnknownCard, "no card %q", key)
		}
		if !removeFromHand(pl, key) {
			return nil, ruleErrf(CodeCardNotInHand, "card %q is not in %s's hand", key, pl.ID)
		}
		pl.FreeSteps += def.FreeSteps
		s.Discard = append(s.Discard, key)
	}

	pl.Credits += gain.Credits - spend.Credits
	pl.Energy += gain.Energy - spend.Energy
	gainData(s, pl, gain.Data-spend.Data)

	return []string{fmt.Sprintf("%s traded resources (%d cards discarded)", pl.ID, len(cardKeys))}, nil
}

func spendGainEmpty(spend, gain Gains) bool {
	return spend.IsZero() && gain.IsZero()
}

// ApplyTechnologyBonus grants a freshly-researched technology's one-shot
// bundle and reports what was gained. Rule-bending technologies pay out
// nothing here; their effect lives in the rules they bend.
func ApplyTechnologyBonus(s *GameState, pl *Player, tech *TechDef) Gains {
	if tech.Bonus.IsZero() {
		return Gains{}
	}
	applyGains(s, pl, tech.Bonus, "technology")
	return tech.Bonus
}

// researchTechnology validates and applies a research action: media cost,
// ownership, bonus payout. The board rotation trigger is handled by the
// action engine so it stays on the same code path as the first-pass trigger.
func researchTechnology(s *GameState, pl *Player, techKey string) ([]string, *RuleError) {
	tech := s.Universe.Technology(techKey)
	if tech == nil {
		return nil, ruleErrf(CodeUnknownTechnology, "no technology %q", techKey)
	}
	for _, owned := range pl.Technologies {
		if owned == techKey {
			return nil, ruleErrf(CodeTechnologyOwned, "player %s already researched %q", pl.ID, techKey)
		}
	}
	if pl.Media < tech.MediaCost {
		return nil, ruleErrf(CodeInsufficientMedia, "%s costs %d media, player %s has %d", techKey, tech.MediaCost, pl.ID, pl.Media)
	}

	pl.Media -= tech.MediaCost
	pl.Technologies = append(pl.Technologies, techKey)
	gains := ApplyTechnologyBonus(s, pl, tech)

	events := []string{fmt.Sprintf("%s researched %s", pl.ID, tech.Name)}
	if !gains.IsZero() {
		events = append(events, fmt.Sprintf("%s collected the %s research grant", pl.ID, tech.Name))
	}
	return events, nil
}

// distributeRevenue pays every seat its configured round income
// simultaneously: credits, energy, then drawn cards.
func distributeRevenue(s *GameState) {
	for i := range s.Players {
		pl := &s.Players[i]
		pl.Credits += pl.RevenueCredits
		pl.Energy += pl.RevenueEnergy
		DrawCards(s, pl.ID, pl.RevenueCards, "revenue")
	}
}
