// Package llm implements the final classification stage. It sends batches of
// transaction descriptions that the earlier stages could not resolve to a
// language model and maps the response back onto per-transaction results,
// with retry logic, rate limiting, and response caching.
package llm
