package chi

import "github.com/kailas-cloud/improvdex/internal/domain/game"

func gameToCard(g *game.Game) GameCard {
	c := GameCard{
		ID:                    g.ID(),
		Name:                  g.Name(),
		Category:              g.Category(),
		Difficulty:            string(g.Difficulty()),
		Tags:                  nonNil(g.Tags()),
		AudienceParticipation: g.AudienceParticipation(),
		Duration:              g.Duration(),
	}
	if pc := g.PlayerCount(); pc != nil {
		c.PlayerCount = &PlayerCount{
			Min:     pc.Min,
			Max:     pc.Max,
			Optimal: pc.Optimal,
			Label:   pc.String(),
		}
	}
	return c
}

func gameToDetails(g *game.Game) GameDetails {
	d := GameDetails{
		GameCard: gameToCard(g),
		Rules:    nonNil(g.Rules()),
		Examples: nonNil(g.Examples()),
		Tips:     make([]Tip, len(g.Tips())),
	}
	if s := g.Setup(); s != nil {
		d.Setup = &Setup{Description: s.Description, Props: s.Props}
	}
	for i, t := range g.Tips() {
		d.Tips[i] = tipToAPI(t)
	}
	return d
}

func tipToAPI(t game.Tip) Tip {
	if t.Kind() == game.TipRole {
		return Tip{Kind: "role", Role: t.Role(), Lines: t.Lines()}
	}
	return Tip{Kind: "plain", Text: t.Text()}
}

// nonNil keeps JSON arrays as [] instead of null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
