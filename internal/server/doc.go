// Package server exposes the skill over HTTP.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering. Errors, including
// unmatched routes, are written as {"error": "..."} JSON.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
//
// # Routes
//
//   - POST /skill : one media directive per request, answered with the directive response
//   - GET /healthz : liveness check
//
// Directive failures map to statuses through [StatusFor]: malformed or unsupported input is 400, a missing
// entry or playlist is 404, and any store or extraction failure is 502.
//
// # Middleware
//
// [Recovery] converts handler panics to a 500 and [Logging] records method, path, status and duration.
package server
