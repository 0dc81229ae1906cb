package improvdex

const testCatalogJSON = `{
  "categories": [
    {
      "name": "Warm-ups",
      "games": [
        {
          "id": "zip-zap-zop",
          "name": "Zip Zap Zop",
          "difficulty": "beginner",
          "tags": ["energy", "circle"],
          "playerCount": {"min": 5, "max": 20, "optimal": 10},
          "rules": ["Pass the energy with zip, zap or zop"],
          "audienceParticipation": false
        }
      ]
    },
    {
      "name": "Scene Games",
      "games": [
        {
          "id": "freeze-tag",
          "name": "Freeze Tag",
          "difficulty": "beginner",
          "playerCount": {"min": 4, "max": 10, "optimal": 6},
          "rules": ["Anyone can shout freeze and take over a pose"],
          "audienceParticipation": true
        },
        {
          "id": "alphabet",
          "name": "Alphabet Game",
          "difficulty": "advanced",
          "tags": ["wordplay"],
          "playerCount": {"min": 2, "max": 2},
          "tips": [{"role": "host", "tips": ["Ask the audience for a starting letter"]}]
        }
      ]
    }
  ]
}`

const testCatalogYAML = `
categories:
  - name: Musical
    games:
      - id: da-doo-ron-ron
        name: Da Doo Ron Ron
        difficulty: intermediate
        playerCount: {min: 4, max: 6}
`

func ids(games []*Game) []string {
	out := make([]string, len(games))
	for i, g := range games {
		out[i] = g.ID()
	}
	return out
}

func intPtr(v int) *int { return &v }

func boolPtr(v bool) *bool { return &v }
