// Package pages registers all dashboard page definitions with the source
// registry. Import this package to ensure all pages are registered.
package pages

// This file exists to provide a single import point.
// Each page file uses init() to register its pages.
