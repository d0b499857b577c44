package translations

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyMismatch is returned when a saved bundle does not carry identical
	// key sets for every language. Independent per-language editing made it
	// too easy to lose a key in one language and ship a half-translated page.
	ErrKeyMismatch = errors.New("translation key sets differ between languages")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the stored bundle, falling back to the built-in copy when the
// store is empty or incomplete.
func (s *Service) Get() Bundle {
	b := s.repo.Get()
	for _, lang := range Languages {
		if len(b[lang]) == 0 {
			return Defaults()
		}
	}
	return b
}

// GetLang returns a single language's strings.
func (s *Service) GetLang(lang string) (Strings, error) {
	b := s.Get()
	strs, ok := b[lang]
	if !ok {
		return nil, ErrLangNotFound
	}
	return strs, nil
}

// Replace overwrites the stored bundle after checking key-set parity.
func (s *Service) Replace(b Bundle) error {
	if err := checkParity(b); err != nil {
		return err
	}
	return s.repo.Replace(b)
}

func checkParity(b Bundle) error {
	for _, lang := range Languages {
		if _, ok := b[lang]; !ok {
			return fmt.Errorf("%w: missing language %q", ErrKeyMismatch, lang)
		}
	}
	base := b[Languages[0]]
	for _, lang := range Languages[1:] {
		strs := b[lang]
		if len(strs) != len(base) {
			return fmt.Errorf("%w: %q has %d keys, %q has %d", ErrKeyMismatch, Languages[0], len(base), lang, len(strs))
		}
		for k := range base {
			if _, ok := strs[k]; !ok {
				return fmt.Errorf("%w: key %q missing in %q", ErrKeyMismatch, k, lang)
			}
		}
	}
	return nil
}
