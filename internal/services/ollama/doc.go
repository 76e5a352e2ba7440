// Package ollama wraps the Ollama /api/generate endpoint with bounded retries.
//
// Every attempt failure (transport error, non-2xx status, undecodable body, or
// an empty response field) is retry-eligible. Backoff between attempts grows
// linearly with the attempt number. When all attempts are exhausted the client
// returns a *GenerationError carrying the last underlying cause.
package ollama
