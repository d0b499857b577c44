package sitedata

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/premiumparfumes/storefront-backend/internal/catalog"
	"github.com/premiumparfumes/storefront-backend/internal/contact"
	"github.com/premiumparfumes/storefront-backend/internal/translations"
)

// FileStore persists the snapshot as JSON files on disk, one file per legacy
// storage key. It is the local-storage analogue: survives restarts, scoped to
// this deployment.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Load reads whatever keys are present. ok is false when the catalog file is
// missing or unreadable, so callers can fall through to defaults.
func (s *FileStore) Load() (Snapshot, bool) {
	var snap Snapshot

	var perfumes []catalog.Perfume
	if !s.readKey(KeyPerfumes, &perfumes) || len(perfumes) == 0 {
		return Snapshot{}, false
	}
	snap.Perfumes = perfumes

	bundle := translations.Bundle{}
	if s.readKey(KeyTranslations, &bundle) {
		snap.Translations = bundle
	} else {
		snap.Translations = translations.Defaults()
	}

	var info contact.Info
	if s.readKey(KeyContacts, &info) && info != (contact.Info{}) {
		snap.Contacts = info
	} else {
		snap.Contacts = contact.Defaults()
	}

	var rev int64
	if s.readKey("revision", &rev) {
		snap.Revision = rev
	}
	return snap, true
}

// Save writes every key; the write is best-effort per file but reports the
// first failure so the caller can surface it.
func (s *FileStore) Save(snap Snapshot) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	if err := s.writeKey(KeyPerfumes, snap.Perfumes); err != nil {
		return err
	}
	if err := s.writeKey(KeyTranslations, snap.Translations); err != nil {
		return err
	}
	if err := s.writeKey(KeyContacts, snap.Contacts); err != nil {
		return err
	}
	return s.writeKey("revision", snap.Revision)
}

func (s *FileStore) readKey(key string, v any) bool {
	b, err := os.ReadFile(filepath.Join(s.dir, key+".json"))
	if err != nil {
		return false
	}
	return json.Unmarshal(b, v) == nil
}

func (s *FileStore) writeKey(key string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, key+".json"), b, 0o644)
}
