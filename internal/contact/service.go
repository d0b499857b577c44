package contact

// Service provides business logic for the contact record.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// Get never fails visibly: an unreadable store yields the built-in defaults.
func (s *Service) Get() Info {
	info, err := s.repo.Get()
	if err != nil || info == (Info{}) {
		return Defaults()
	}
	return info
}

func (s *Service) Set(info Info) error {
	return s.repo.Set(info)
}
