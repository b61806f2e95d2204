// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Cache stores raw source responses between sessions; nil disables caching
	Cache Cache

	// HTTPClient performs requests against the wiki and authorship services
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger
}
