package catalog

import (
	"strconv"
	"strings"
	"time"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Perfume {
	return s.repo.List()
}

// Search filters by a free-text query over name, brand and category.
func (s *Service) Search(query string) []Perfume {
	all := s.repo.List()
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all
	}
	out := make([]Perfume, 0, len(all))
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Service) GetByID(id string) (Perfume, error) {
	return s.repo.GetByID(id)
}

// Create assigns a millisecond-timestamp ID when the caller did not provide
// one. Empty names and descriptions are accepted; the editor fills them later.
func (s *Service) Create(p Perfume) (Perfume, error) {
	if p.ID == "" {
		p.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}
	if p.Notes == nil {
		p.Notes = []string{}
	}
	return s.repo.Create(p)
}

func (s *Service) Update(id string, p Perfume) (Perfume, error) {
	return s.repo.Update(id, p)
}

func (s *Service) Delete(id string) error {
	return s.repo.Delete(id)
}

// Replace overwrites the whole catalog (used by snapshot saves).
func (s *Service) Replace(perfumes []Perfume) error {
	return s.repo.Replace(perfumes)
}
