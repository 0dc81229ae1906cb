package catalog

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/improvdex/internal/domain/game"
)

// documentDTO is the on-disk catalog: games grouped under named categories.
type documentDTO struct {
	Categories []categoryDTO `json:"categories" yaml:"categories"`
}

type categoryDTO struct {
	Name  string    `json:"name" yaml:"name"`
	Games []gameDTO `json:"games" yaml:"games"`
}

type gameDTO struct {
	ID                    string          `json:"id" yaml:"id"`
	Name                  string          `json:"name" yaml:"name"`
	Difficulty            string          `json:"difficulty" yaml:"difficulty"`
	Tags                  []string        `json:"tags" yaml:"tags"`
	PlayerCount           *playerCountDTO `json:"playerCount" yaml:"playerCount"`
	Setup                 *setupDTO       `json:"setup" yaml:"setup"`
	Rules                 []string        `json:"rules" yaml:"rules"`
	Tips                  []tipDTO        `json:"tips" yaml:"tips"`
	Examples              []string        `json:"examples" yaml:"examples"`
	AudienceParticipation *bool           `json:"audienceParticipation" yaml:"audienceParticipation"`
	Duration              string          `json:"duration" yaml:"duration"`
}

type playerCountDTO struct {
	Min     int `json:"min" yaml:"min"`
	Max     int `json:"max" yaml:"max"`
	Optimal int `json:"optimal" yaml:"optimal"`
}

type setupDTO struct {
	Description string   `json:"description" yaml:"description"`
	Props       []string `json:"props" yaml:"props"`
}

// tipDTO accepts either a bare string or {"role": ..., "tips": [...]}.
type tipDTO struct {
	text   string
	role   string
	lines  []string
	isRole bool
}

type roleTipDTO struct {
	Role string   `json:"role" yaml:"role"`
	Tips []string `json:"tips" yaml:"tips"`
}

// UnmarshalJSON decodes a plain or role tip.
func (t *tipDTO) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = tipDTO{text: s}
		return nil
	}
	var r roleTipDTO
	if err := json.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("tip must be a string or {role, tips}: %w", err)
	}
	*t = tipDTO{role: r.Role, lines: r.Tips, isRole: true}
	return nil
}

// UnmarshalYAML decodes a plain or role tip.
func (t *tipDTO) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*t = tipDTO{text: node.Value}
		return nil
	case yaml.MappingNode:
		var r roleTipDTO
		if err := node.Decode(&r); err != nil {
			return fmt.Errorf("decode role tip: %w", err)
		}
		*t = tipDTO{role: r.Role, lines: r.Tips, isRole: true}
		return nil
	default:
		return fmt.Errorf("tip must be a string or {role, tips} (line %d)", node.Line)
	}
}

func (t tipDTO) toDomain() game.Tip {
	if t.isRole {
		return game.NewRoleTip(t.role, t.lines)
	}
	return game.NewPlainTip(t.text)
}

// toParams converts a DTO into game parameters under the given category.
func (d *gameDTO) toParams(category string) game.Params {
	p := game.Params{
		ID:                    d.ID,
		Name:                  d.Name,
		Category:              category,
		Tags:                  d.Tags,
		Rules:                 d.Rules,
		Examples:              d.Examples,
		AudienceParticipation: d.AudienceParticipation,
		Duration:              d.Duration,
	}
	if d.Difficulty != "" {
		diff, ok := game.ParseDifficulty(d.Difficulty)
		if !ok {
			// Keep the raw value so game.New reports it.
			diff = game.Difficulty(d.Difficulty)
		}
		p.Difficulty = diff
	}
	if d.PlayerCount != nil {
		pc := game.PlayerCount{
			Min:     d.PlayerCount.Min,
			Max:     d.PlayerCount.Max,
			Optimal: d.PlayerCount.Optimal,
		}
		if pc.Optimal == 0 {
			pc.Optimal = pc.Min
		}
		p.PlayerCount = &pc
	}
	if d.Setup != nil {
		p.Setup = &game.Setup{Description: d.Setup.Description, Props: d.Setup.Props}
	}
	if len(d.Tips) > 0 {
		p.Tips = make([]game.Tip, len(d.Tips))
		for i, t := range d.Tips {
			p.Tips[i] = t.toDomain()
		}
	}
	return p
}
