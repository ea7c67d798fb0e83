// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - SummaryStore: Summary persistence (SQLite)
//   - TranscriptProvider: Upstream caption fetching (timedtext API)
//   - VideoSearcher: Upstream video search (YouTube Data API v3)
//   - ConfigStore: Application configuration (TOML file)
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
