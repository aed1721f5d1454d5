/*
Package observability turns control lifecycle hooks into Prometheus metrics.

Metrics.Hooks returns a domain.LifecycleHooks value to pass to
paramlink.WithLifecycleHooks. Combine it with hooks of your own through Chain.
*/
package observability
