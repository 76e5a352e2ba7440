// Command bloggen turns a directory of markdown documents into persisted blog
// articles. Each ### heading becomes one article, generated through a local
// Ollama instance, cached on disk, and stored in SQLite with dedup guarantees.
package main
