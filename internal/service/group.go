package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mwhite7112/woodpantry-ingredient-groups/internal/grouping"
	"github.com/mwhite7112/woodpantry-ingredient-groups/internal/sites"
)

// GroupRequest is one recipe page to group. Host wins over URL when both are
// set; with neither, the flat-list fallback is used.
type GroupRequest struct {
	URL         string
	Host        string
	HTML        string
	Ingredients []string
	Language    string
}

// GroupResult is returned by Group.
type GroupResult struct {
	Site      string
	Host      string
	Algorithm sites.Algorithm
	Groups    []grouping.IngredientGroup
	Fallback  string
}

// Group picks the site for the request's host and groups its ingredients.
// Supplied ingredients are normalized before grouping.
func (s *Service) Group(ctx context.Context, req GroupRequest) (GroupResult, error) {
	if err := ctx.Err(); err != nil {
		return GroupResult{}, err
	}
	if strings.TrimSpace(req.HTML) == "" && len(req.Ingredients) == 0 {
		return GroupResult{}, fmt.Errorf("%w: html or ingredients required", ErrInvalidRequest)
	}

	host, err := requestHost(req)
	if err != nil {
		return GroupResult{}, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(req.HTML))
	if err != nil {
		return GroupResult{}, fmt.Errorf("%w: parse html: %v", ErrInvalidRequest, err)
	}

	lang := req.Language
	if lang == "" {
		lang = s.defaultLang
	}

	ingredients := make([]string, len(req.Ingredients))
	for i, ing := range req.Ingredients {
		ingredients[i] = grouping.Normalize(ing)
	}

	site, known := s.sites.Lookup(host)
	out, err := sites.Group(site, sites.Input{
		Doc:         doc,
		Ingredients: ingredients,
		Language:    lang,
		Scorer:      s.scorer,
	})
	if err != nil {
		return GroupResult{}, fmt.Errorf("group %s: %w", site.Name(), err)
	}

	s.observe(ctx, site, known, host, out)

	return GroupResult{
		Site:      site.Name(),
		Host:      host,
		Algorithm: site.Algorithm(),
		Groups:    out.Groups,
		Fallback:  out.Fallback,
	}, nil
}

func (s *Service) observe(ctx context.Context, site sites.Site, known bool, host string, out sites.Outcome) {
	n := 0
	for _, g := range out.Groups {
		n += len(g.Ingredients)
	}

	if s.metrics != nil {
		s.metrics.Requests.WithLabelValues(site.Name(), string(site.Algorithm())).Inc()
		s.metrics.Ingredients.Observe(float64(n))
		if out.Fallback != "" {
			s.metrics.Fallbacks.WithLabelValues(site.Name(), out.Fallback).Inc()
		}
	}

	if out.Fallback != "" {
		slog.WarnContext(ctx, "grouping fell back to ungrouped list",
			"site", site.Name(), "host", host, "reason", out.Fallback, "ingredients", n, "error", out.Cause)
		return
	}
	slog.DebugContext(ctx, "grouped ingredients",
		"site", site.Name(), "host", host, "known_site", known, "groups", len(out.Groups), "ingredients", n)
}

func requestHost(req GroupRequest) (string, error) {
	if req.Host != "" {
		return req.Host, nil
	}
	if req.URL == "" {
		return "", nil
	}
	u, err := url.Parse(req.URL)
	if err != nil {
		return "", fmt.Errorf("%w: url: %v", ErrInvalidRequest, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: url %q has no host", ErrInvalidRequest, req.URL)
	}
	return u.Hostname(), nil
}
