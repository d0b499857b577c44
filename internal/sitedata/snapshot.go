package sitedata

import (
	"github.com/premiumparfumes/storefront-backend/internal/catalog"
	"github.com/premiumparfumes/storefront-backend/internal/contact"
	"github.com/premiumparfumes/storefront-backend/internal/translations"
)

// Storage keys shared with the legacy browser builds. The file store writes
// one JSON document per key so old exports stay importable.
const (
	KeyPerfumes     = "premium_perfumes_data"
	KeyTranslations = "premium_translations_data"
	KeyContacts     = "premium_links_data"
)

// Snapshot is the unit of persistence and sync: the whole catalog,
// translations and contact record saved or loaded as one atomic document.
type Snapshot struct {
	Perfumes     []catalog.Perfume   `json:"perfumes"`
	Translations translations.Bundle `json:"translations"`
	Contacts     contact.Info        `json:"contacts"`
	// Revision guards against stale overwrites when more than one admin
	// session edits at once. Zero means "no check" (single-admin mode).
	Revision int64 `json:"revision,omitempty"`
}

// DefaultSnapshot returns the built-in site content.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Perfumes:     catalog.Defaults(),
		Translations: translations.Defaults(),
		Contacts:     contact.Defaults(),
	}
}

// HasCatalog reports whether the snapshot carries any perfumes. A remote
// payload with an empty catalog is treated the same as an absent one.
func (s Snapshot) HasCatalog() bool {
	return len(s.Perfumes) > 0
}
