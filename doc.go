// Package improvdex is an embeddable, read-only catalog of improv games
// with case-insensitive search and attribute filtering.
//
// # Querying a catalog
//
//	cat, _ := improvdex.Open(ctx, "data/games.json")
//	games := cat.Search("freeze")
//	warmups, _ := cat.Filter(improvdex.Filters{Category: "Warm-ups"})
//	for _, c := range cat.Categories() {
//	    fmt.Println(c)
//	}
//
// # Fluent queries
//
//	games, _ := cat.Query().
//	    Text("scene").
//	    Difficulty(improvdex.Beginner).
//	    Players(2, 8).
//	    Run()
//
// # Live reload
//
//	cat, _ := improvdex.Open(ctx, "games.yaml", improvdex.WithWatch(0))
//	defer cat.Close()
//
// Results are views into the current snapshot and must not be mutated.
// A reload swaps the snapshot atomically; slices returned earlier stay valid.
package improvdex
