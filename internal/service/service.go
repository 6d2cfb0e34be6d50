package service

import (
	"context"
	"errors"

	"github.com/mwhite7112/woodpantry-ingredient-groups/internal/grouping"
	"github.com/mwhite7112/woodpantry-ingredient-groups/internal/metrics"
	"github.com/mwhite7112/woodpantry-ingredient-groups/internal/sites"
)

// ErrInvalidRequest is wrapped by every error caused by bad caller input.
var ErrInvalidRequest = errors.New("invalid request")

// Grouper is the surface the HTTP layer depends on.
type Grouper interface {
	Group(ctx context.Context, req GroupRequest) (GroupResult, error)
	Match(ctx context.Context, req MatchRequest) (MatchResult, error)
	Sites() []SiteInfo
}

// Service holds all dependencies for the grouping service layer.
type Service struct {
	sites       *sites.Registry
	metrics     *metrics.Metrics
	scorer      grouping.Scorer
	defaultLang string
}

var _ Grouper = (*Service)(nil)

// New creates a new Service. A nil scorer means Dice.
func New(reg *sites.Registry, m *metrics.Metrics, scorer grouping.Scorer, defaultLang string) *Service {
	if scorer == nil {
		scorer = grouping.Dice
	}
	return &Service{sites: reg, metrics: m, scorer: scorer, defaultLang: defaultLang}
}

// SiteInfo describes a registered site.
type SiteInfo struct {
	Host      string          `json:"host"`
	Name      string          `json:"name"`
	Algorithm sites.Algorithm `json:"algorithm"`
}

// Sites lists the registered sites.
func (s *Service) Sites() []SiteInfo {
	all := s.sites.Sites()
	out := make([]SiteInfo, 0, len(all))
	for _, site := range all {
		out = append(out, SiteInfo{Host: site.Host(), Name: site.Name(), Algorithm: site.Algorithm()})
	}
	return out
}
