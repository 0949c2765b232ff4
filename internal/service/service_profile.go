// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/pro-directory/internal/config"
	"github.com/MKhiriev/pro-directory/internal/logger"
	"github.com/MKhiriev/pro-directory/internal/store"
	"github.com/MKhiriev/pro-directory/models"
	"golang.org/x/sync/errgroup"
)

const sitemapPriority = 0.5

type profileService struct {
	profileRepository store.ProfileRepository
	siteURL           string
	logger            *logger.Logger
}

func NewProfileService(profileRepository store.ProfileRepository, cfg config.App, logger *logger.Logger) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
		siteURL:           strings.TrimRight(cfg.SiteURL, "/"),
		logger:            logger,
	}
}

// GetProfile loads the base profile, then its certifications, pictures and
// testimonials concurrently. The first failing query cancels the others.
func (p *profileService) GetProfile(ctx context.Context, id int64) (models.Profile, error) {
	log := logger.FromContext(ctx)

	profile, err := p.profileRepository.FindProfile(ctx, id)
	if err != nil {
		log.Err(err).Int64("profile_id", id).Msg("profile lookup failed")
		return models.Profile{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	var (
		certifications []string
		pictures       []models.Picture
		testimonials   []models.Testimonial
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		certifications, err = p.profileRepository.GetCertifications(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		pictures, err = p.profileRepository.GetPictures(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		testimonials, err = p.profileRepository.GetTestimonials(gctx, id)
		return err
	})

	if err = g.Wait(); err != nil {
		log.Err(err).Int64("profile_id", id).Msg("profile details lookup failed")
		return models.Profile{}, fmt.Errorf("profile details lookup failed: %w", err)
	}

	profile.Certifications = nonNil(certifications)
	profile.Images = nonNil(pictures)
	profile.Testimonials = nonNil(testimonials)

	return profile, nil
}

func (p *profileService) SearchProfiles(ctx context.Context, search models.ProfileSearch) ([]models.PartialProfile, error) {
	profiles, err := p.profileRepository.SearchProfiles(ctx, search)
	if err != nil {
		logger.FromContext(ctx).Err(err).Any("search", search).Msg("profile search failed")
		return nil, fmt.Errorf("profile search failed: %w", err)
	}

	return nonNil(profiles), nil
}

func (p *profileService) Sitemap(ctx context.Context) (models.URLSet, int, error) {
	profiles, err := p.SearchProfiles(ctx, models.DefaultProfileSearch())
	if err != nil {
		return models.URLSet{}, 0, err
	}

	urls := models.URLSet{
		XMLNS: models.SitemapNamespace,
		URLs:  make([]models.SitemapURL, 0, len(profiles)),
	}
	for _, profile := range profiles {
		if profile.ID == 0 || profile.Timestamp == 0 {
			continue
		}
		urls.URLs = append(urls.URLs, models.SitemapURL{
			Loc:      p.siteURL + "/profiles/" + strconv.FormatInt(profile.ID, 10),
			LastMod:  time.Unix(profile.Timestamp, 0).UTC().Format(time.RFC3339),
			Priority: sitemapPriority,
		})
	}

	return urls, len(profiles), nil
}

// nonNil makes empty collections encode as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
