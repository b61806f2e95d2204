// Package core contains the business logic for the Article Viewer API.
// It has no web framework dependencies; the API and CLI layers drive it.
//
// Sub-packages:
//
//   - domain: article references, source states, render state and snapshots
//   - wiki: fetches parsed articles, authorship diffs and user ids
//   - attribution: recolors authorship diffs and builds the legend
//   - links: rewrites relative article links to absolute wiki URLs
//   - viewer: sessions, the state reducer, fragments and the session registry
//   - dismiss: outside-pointer and outside-focus dismissal
//   - workers: bounded pool that runs source fetches
//   - errors: typed errors shared across layers
//   - interfaces: contracts for cache, HTTP, logging and fetch dispatch
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//	source := wiki.NewClient(deps, wiki.Config{DiffServiceBase: "https://api.wikicolor.net"})
//	service := viewer.NewService(source, viewer.ServiceOptions{})
//
//	session, err := service.NewSession(ctx, viewer.SessionRequest{
//	    Article:   domain.ArticleRef{Language: "en", Project: "wikipedia", Title: "Test_Article"},
//	    Usernames: []string{"Alice", "Bob"},
//	})
//	session.Reveal()
//	_ = session.Wait(ctx)
//	html, _ := viewer.RenderFragment(session.Snapshot())
package core
