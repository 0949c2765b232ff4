// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/pro-directory/internal/logger"
	"github.com/MKhiriev/pro-directory/models"
)

// profileRepository is the PostgreSQL-backed implementation of
// [ProfileRepository]. Visibility (arrears, active, noindex) is applied in
// every query, never by deleting rows.
type profileRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

// portraitColumns receives the nullable portrait columns of a LEFT JOIN.
type portraitColumns struct {
	filename sql.NullString
	width    sql.NullInt32
	height   sql.NullInt32
	mimeType sql.NullString
	modified sql.NullInt64
}

func (p portraitColumns) portrait(accountID int64) *models.Portrait {
	if !p.filename.Valid || p.filename.String == "" {
		return nil
	}

	return &models.Portrait{
		AccountID: accountID,
		Filename:  p.filename.String,
		Width:     int(p.width.Int32),
		Height:    int(p.height.Int32),
		MimeType:  p.mimeType.String,
		Modified:  p.modified.Int64,
	}
}

// FindProfile runs the base profile query. The query yields one row per
// profession; the profile fields are taken from the first row and the
// profession names are collected from all of them.
func (r *profileRepository) FindProfile(ctx context.Context, id int64) (models.Profile, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findProfile, id)
	if err != nil {
		log.Err(err).
			Str("func", "*profileRepository.FindProfile").
			Int64("profile_id", id).
			Bool("transient", isTransient(err)).
			Msg("failed to execute profile query")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var (
		profile     models.Profile
		found       bool
		professions = make([]string, 0, 4)
		seen        = make(map[string]struct{})
	)

	for rows.Next() {
		var (
			row        models.Profile
			profession sql.NullString
			portrait   portraitColumns
		)

		if err = scanProfileRow(rows, &row, &profession, &portrait); err != nil {
			log.Err(err).
				Str("func", "*profileRepository.FindProfile").
				Int64("profile_id", id).
				Msg("failed to scan profile row")
			return models.Profile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		if !found {
			profile = row
			profile.Portrait = portrait.portrait(row.ID)
			found = true
		}

		if profession.Valid {
			if _, ok := seen[profession.String]; !ok {
				seen[profession.String] = struct{}{}
				professions = append(professions, profession.String)
			}
		}
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "*profileRepository.FindProfile").
			Int64("profile_id", id).
			Msg("error occurred during rows iteration")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if !found {
		return models.Profile{}, ErrProfileNotFound
	}

	profile.Professions = professions
	return profile, nil
}

func scanProfileRow(rows *sql.Rows, p *models.Profile, profession *sql.NullString, portrait *portraitColumns) error {
	var (
		provinceCode, backgroundName, backgroundURL       sql.NullString
		facebook, twitter, pinterest, instagram, linkedin sql.NullString
	)

	err := rows.Scan(
		&p.ID,
		&p.Sex,
		&p.FirstName,
		&p.LastName,
		&p.Company,
		&p.EmailAddress,
		&p.Website,
		&p.Intro,
		&p.Additional,
		&p.Slogan,
		&p.Services,
		&p.City,
		&provinceCode,
		&p.CountryCode,
		&p.PhoneNumber,
		&p.Noindex,
		&facebook,
		&twitter,
		&pinterest,
		&instagram,
		&linkedin,
		&p.Timestamp,
		&p.StyleName,
		&p.Dark,
		&backgroundName,
		&backgroundURL,
		profession,
		&portrait.filename,
		&portrait.width,
		&portrait.height,
		&portrait.mimeType,
		&portrait.modified,
	)
	if err != nil {
		return err
	}

	p.ProvinceCode = nullString(provinceCode)
	p.Facebook = nullString(facebook)
	p.Twitter = nullString(twitter)
	p.Pinterest = nullString(pinterest)
	p.Instagram = nullString(instagram)
	p.Linkedin = nullString(linkedin)
	p.BackgroundName = nullString(backgroundName)
	p.BackgroundURL = nullString(backgroundURL)

	return nil
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}

// GetCertifications returns the course codes of the account's
// non-graduated enrollments.
func (r *profileRepository) GetCertifications(ctx context.Context, id int64) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getCertifications, id)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.GetCertifications").Int64("profile_id", id).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	codes := make([]string, 0, 4)
	for rows.Next() {
		var code string
		if err = rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		codes = append(codes, code)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return codes, nil
}

// GetPictures returns the gallery ordered by priority then id.
func (r *profileRepository) GetPictures(ctx context.Context, id int64) ([]models.Picture, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getPictures, id)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.GetPictures").Int64("profile_id", id).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	pictures := make([]models.Picture, 0, 8)
	for rows.Next() {
		var (
			picture              models.Picture
			heading, description sql.NullString
		)
		if err = rows.Scan(&picture.ID, &heading, &description, &picture.Priority, &picture.Width, &picture.Height); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		picture.Heading = nullString(heading)
		picture.Description = nullString(description)
		pictures = append(pictures, picture)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return pictures, nil
}

func (r *profileRepository) GetTestimonials(ctx context.Context, id int64) ([]models.Testimonial, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getTestimonials, id)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.GetTestimonials").Int64("profile_id", id).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	testimonials := make([]models.Testimonial, 0, 4)
	for rows.Next() {
		var (
			testimonial models.Testimonial
			rating      sql.NullInt32
		)
		if err = rows.Scan(&testimonial.Quote, &testimonial.Name, &rating); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if rating.Valid {
			value := int(rating.Int32)
			testimonial.Rating = &value
		}
		testimonials = append(testimonials, testimonial)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return testimonials, nil
}

// SearchProfiles builds the conditional search with squirrel and scans the
// partial projection.
func (r *profileRepository) SearchProfiles(ctx context.Context, search models.ProfileSearch) ([]models.PartialProfile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSearchProfilesQuery(search)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.SearchProfiles").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*profileRepository.SearchProfiles").
			Bool("transient", isTransient(err)).
			Msg("failed to execute search query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	profiles := make([]models.PartialProfile, 0, 50)
	for rows.Next() {
		profile, scanErr := scanPartialProfileRow(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*profileRepository.SearchProfiles").Msg("failed to scan profile row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		profiles = append(profiles, profile)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*profileRepository.SearchProfiles").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return profiles, nil
}

func scanPartialProfileRow(rows *sql.Rows) (models.PartialProfile, error) {
	var (
		p            models.PartialProfile
		provinceCode sql.NullString
		portrait     portraitColumns
		random       float64
	)

	err := rows.Scan(
		&p.ID,
		&p.Sex,
		&p.FirstName,
		&p.LastName,
		&p.Company,
		&p.EmailAddress,
		&p.Website,
		&p.Slogan,
		&p.City,
		&provinceCode,
		&p.CountryCode,
		&p.PhoneNumber,
		&p.Timestamp,
		&portrait.filename,
		&portrait.width,
		&portrait.height,
		&portrait.mimeType,
		&portrait.modified,
		&random,
	)
	if err != nil {
		return models.PartialProfile{}, err
	}

	p.ProvinceCode = nullString(provinceCode)
	p.Portrait = portrait.portrait(p.ID)

	return p, nil
}
