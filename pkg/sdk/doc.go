// Package sdk is a Go client for the improvdex HTTP API.
//
//	c, _ := sdk.New("http://localhost:8080", sdk.WithAPIKey(os.Getenv("IMPROVDEX_API_KEY")))
//	list, _ := c.ListGames(ctx, sdk.Query{Text: "freeze", Difficulty: "beginner"})
//	for _, g := range list.Items {
//	    fmt.Println(g.Name, g.PlayerCount.Label)
//	}
//
// # Theme preferences
//
// Preferences are keyed by a client id. The server assigns one on the first
// preference call; the client remembers it and sends it back afterwards.
//
//	c.SetTheme(ctx, "dark")
//	id := c.ClientID() // persist to keep the preference across restarts
//	c2, _ := sdk.New(url, sdk.WithClientID(id))
package sdk
