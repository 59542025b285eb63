package app

import (
	"errors"

	"boost_site/internal/content"
	"boost_site/internal/domain"
)

var ErrUnknownVariant = errors.New("content: unknown variant")

// ContentService answers the content API from the in-process catalog.
type ContentService struct{ cat content.Catalog }

func NewContentService(cat content.Catalog) *ContentService {
	return &ContentService{cat: cat}
}

// Home resolves the copy variant; an empty variant selects the default.
func (s *ContentService) Home(variant string) (domain.HomeContent, error) {
	if variant == "" {
		variant = content.DefaultVariant
	}
	h, ok := s.cat.Home[variant]
	if !ok {
		return domain.HomeContent{}, ErrUnknownVariant
	}
	return h, nil
}

func (s *ContentService) FAQ() domain.FAQCatalog { return s.cat.FAQ }

func (s *ContentService) Services() domain.ServiceCatalog { return s.cat.Services }

func (s *ContentService) Recruitment() domain.RecruitmentContent { return s.cat.Recruitment }
