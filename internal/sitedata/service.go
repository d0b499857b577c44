package sitedata

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/premiumparfumes/storefront-backend/internal/catalog"
	"github.com/premiumparfumes/storefront-backend/internal/contact"
	"github.com/premiumparfumes/storefront-backend/internal/translations"
)

var (
	// ErrStaleRevision rejects a save based on an outdated snapshot. The last
	// writer no longer silently wins; the editor must reload first.
	ErrStaleRevision = errors.New("snapshot revision is stale")
)

// Service owns snapshot load/save across every backend: the local
// repositories behind the public API, the optional file store, the optional
// remote document endpoint, and the in-process session mirror.
type Service struct {
	catalog  *catalog.Service
	trans    *translations.Service
	contacts *contact.Service
	file     *FileStore    // nil when no data dir is configured
	remote   *RemoteClient // nil when no endpoint is configured
	session  *SessionStore

	mu           sync.Mutex
	revision     int64
	revisionInit bool
}

func NewService(cat *catalog.Service, trans *translations.Service, contacts *contact.Service, file *FileStore, remote *RemoteClient, session *SessionStore) *Service {
	return &Service{
		catalog:  cat,
		trans:    trans,
		contacts: contacts,
		file:     file,
		remote:   remote,
		session:  session,
	}
}

// Load returns the current snapshot and never fails: remote first when
// configured, then the session mirror, then the file store, then the
// built-in defaults. A partially populated result is never returned.
func (s *Service) Load(ctx context.Context) Snapshot {
	if s.remote != nil {
		if snap, ok := s.remote.Fetch(ctx); ok {
			snap = fillDefaults(snap)
			// keep the per-section endpoints consistent with the document
			if err := s.Hydrate(snap); err != nil {
				log.Printf("sitedata: hydrate from remote failed: %v", err)
			}
			s.session.Save(snap)
			return snap
		}
		log.Printf("sitedata: remote fetch failed, falling back")
	}

	if snap, ok := s.session.Load(); ok {
		return snap
	}

	if s.file != nil {
		if snap, ok := s.file.Load(); ok {
			snap = fillDefaults(snap)
			s.rememberRevision(snap.Revision)
			return snap
		}
	}

	// local repositories carry their own defaults fallback
	snap := Snapshot{
		Perfumes:     s.catalog.List(),
		Translations: s.trans.Get(),
		Contacts:     s.contacts.Get(),
		Revision:     s.currentRevision(),
	}
	if !snap.HasCatalog() {
		return DefaultSnapshot()
	}
	return snap
}

// Save applies the snapshot as one atomic overwrite across every backend.
// The snapshot's revision must match the current one (zero bypasses the
// check); on success the stored revision advances by one.
func (s *Service) Save(ctx context.Context, snap Snapshot) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if snap.Revision != 0 && snap.Revision != s.revision {
		return Snapshot{}, ErrStaleRevision
	}

	snap = fillDefaults(snap)

	if err := s.apply(snap); err != nil {
		return Snapshot{}, err
	}

	s.revision++
	s.revisionInit = true
	snap.Revision = s.revision

	if s.file != nil {
		if err := s.file.Save(snap); err != nil {
			log.Printf("sitedata: file save failed: %v", err)
		}
	}

	if s.remote != nil {
		if err := s.remote.Push(ctx, snap); err != nil {
			// remote failed but local state is already consistent; mirror the
			// session so this process keeps serving the new snapshot, and let
			// the caller surface a single failure notice. No automatic retry.
			s.session.Save(snap)
			return snap, err
		}
	}

	s.session.Save(snap)
	return snap, nil
}

// Hydrate applies a previously persisted snapshot to the local repositories
// at startup. Unlike Save it touches neither the file store nor the remote
// endpoint.
func (s *Service) Hydrate(snap Snapshot) error {
	snap = fillDefaults(snap)
	if err := s.apply(snap); err != nil {
		return err
	}
	s.rememberRevision(snap.Revision)
	return nil
}

// apply writes the snapshot's sections to the local repositories. When a later
// section fails, the earlier ones are restored so a snapshot never lands half
// applied.
func (s *Service) apply(snap Snapshot) error {
	prevTrans := s.trans.Get()
	prevPerfumes := s.catalog.List()

	if err := s.trans.Replace(snap.Translations); err != nil {
		return err
	}
	if err := s.catalog.Replace(snap.Perfumes); err != nil {
		s.trans.Replace(prevTrans)
		return err
	}
	if err := s.contacts.Set(snap.Contacts); err != nil {
		s.trans.Replace(prevTrans)
		s.catalog.Replace(prevPerfumes)
		return err
	}
	return nil
}

func (s *Service) rememberRevision(rev int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.revisionInit || rev > s.revision {
		s.revision = rev
		s.revisionInit = true
	}
}

func (s *Service) currentRevision() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

// fillDefaults completes missing sections so a snapshot is never served
// partially populated.
func fillDefaults(snap Snapshot) Snapshot {
	if !snap.HasCatalog() {
		snap.Perfumes = catalog.Defaults()
	}
	for _, lang := range translations.Languages {
		if len(snap.Translations[lang]) == 0 {
			snap.Translations = translations.Defaults()
			break
		}
	}
	if snap.Contacts == (contact.Info{}) {
		snap.Contacts = contact.Defaults()
	}
	return snap
}
