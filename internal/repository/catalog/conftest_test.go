package catalog

import (
	"context"
	"time"

	"github.com/kailas-cloud/improvdex/internal/db"
)

const sampleJSON = `{
  "categories": [
    {
      "name": "Scene Games",
      "games": [
        {
          "id": "alphabet",
          "name": "Alphabet Game",
          "difficulty": "advanced",
          "tags": ["wordplay", "two-person"],
          "playerCount": {"min": 2, "max": 2, "optimal": 2},
          "rules": ["Each line starts with the next letter"],
          "tips": [
            "Keep energy high",
            {"role": "host", "tips": ["Pick a starting letter from the audience"]}
          ],
          "audienceParticipation": true
        }
      ]
    },
    {
      "name": "Opening Games",
      "games": [
        {
          "id": "freeze-tag",
          "name": "Freeze Tag",
          "difficulty": "Beginner",
          "playerCount": {"min": 4, "max": 10, "optimal": 6},
          "setup": {"description": "Two players start a scene", "props": ["none"]}
        },
        {
          "id": "freeze-frame",
          "name": "Freeze Frame",
          "difficulty": "intermediate",
          "playerCount": {"min": 3, "max": 8}
        }
      ]
    }
  ]
}`

const sampleYAML = `
categories:
  - name: Warm-ups
    games:
      - id: zip-zap
        name: Zip Zap Zop
        difficulty: beginner
        tags: [energy, circle]
        tips:
          - Make eye contact
          - role: coach
            tips:
              - Speed up every round
`

// --- Mocks ---

type mockSource struct {
	name  string
	data  []byte
	err   error
	calls int
}

func (m *mockSource) Name() string { return m.name }

func (m *mockSource) Fetch(_ context.Context) ([]byte, error) {
	m.calls++
	return m.data, m.err
}

type mockStore struct {
	data   map[string][]byte
	ttls   map[string]time.Duration
	getErr error
	setErr error
}

func newMockStore() *mockStore {
	return &mockStore{data: make(map[string][]byte), ttls: make(map[string]time.Duration)}
}

func (m *mockStore) Get(_ context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}

func (m *mockStore) SetWithTTL(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}
