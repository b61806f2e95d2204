// Package api provides the HTTP API layer of the article viewer.
// It uses the Huma framework on a chi router for OpenAPI documentation,
// request validation, and a clean handler interface.
//
// # Architecture
//
//   - server.go: Huma API configuration and middleware setup
//   - handlers/: viewer session and health handlers
//   - dto/: request and response DTOs plus mappers to core types
//   - middleware/: request logging, feature flags, rate limiting
//
// The OpenAPI document is served at /openapi.json and interactive docs at /docs.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:     logger,
//	    Flags:      featureflags.NewEnvManager(""),
//	    RateLimit:  120,
//	    RateWindow: time.Minute,
//	})
//	handlers.NewViewerHandler(registry, logger).RegisterRoutes(humaAPI)
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 problem format. Domain errors are mapped to
// status codes in handlers/errors.go: unknown viewers are 404, invalid
// articles 400, and upstream failures 502/503.
package api
