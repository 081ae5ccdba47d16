// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (keys, blocks, frames) and contracts (interfaces) only.
package domain
