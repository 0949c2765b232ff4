// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/pro-directory/internal/logger"
	"github.com/MKhiriev/pro-directory/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var profileColumns = []string{
	"id", "sex", "first_name", "last_name", "company", "email_address", "website",
	"intro", "additional", "slogan", "services", "city", "province_code", "country_code",
	"phone_number", "noindex", "facebook", "twitter", "pinterest", "instagram", "linkedin",
	"timestamp", "style_name", "dark", "background_name", "background_url", "profession_name",
	"portrait_filename", "portrait_width", "portrait_height", "portrait_mime_type", "portrait_modified",
}

var partialColumns = []string{
	"id", "sex", "first_name", "last_name", "company", "email_address", "website", "slogan",
	"city", "province_code", "country_code", "phone_number", "timestamp",
	"portrait_filename", "portrait_width", "portrait_height", "portrait_mime_type", "portrait_modified",
	"random",
}

func newTestProfileRepo(t *testing.T) (*profileRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &profileRepository{db: db, logger: logger.Nop()}, mock
}

func profileRow(profession driver.Value, withPortrait bool) []driver.Value {
	var filename, width, height, mime, modified driver.Value
	if withPortrait {
		filename, width, height, mime, modified = "jane.jpg", int64(400), int64(600), "image/jpeg", int64(1700000000)
	}

	return []driver.Value{
		int64(42), "F", "Jane", "Doe", "Doe Events", "jane@doe.com", "https://doe.com",
		"intro", "", "Plan it", "weddings", "Toronto", "ON", "CA",
		"555-0100", false, "fb.com/jane", nil, nil, nil, nil,
		int64(1690000000), "classic", true, nil, nil, profession,
		filename, width, height, mime, modified,
	}
}

func TestFindProfile_CollectsProfessions(t *testing.T) {
	repo, mock := newTestProfileRepo(t)

	mock.ExpectQuery("FROM accounts a").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(profileColumns).
			AddRow(profileRow("Event Planner", true)...).
			AddRow(profileRow(nil, true)...).
			AddRow(profileRow("Wedding Planner", true)...).
			AddRow(profileRow("Event Planner", true)...))

	profile, err := repo.FindProfile(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, int64(42), profile.ID)
	assert.Equal(t, "Jane", profile.FirstName)
	assert.Equal(t, "CA", profile.CountryCode)
	require.NotNil(t, profile.ProvinceCode)
	assert.Equal(t, "ON", *profile.ProvinceCode)
	require.NotNil(t, profile.Facebook)
	assert.Nil(t, profile.Twitter)
	assert.Nil(t, profile.BackgroundName)
	assert.True(t, profile.Dark)
	assert.Equal(t, int64(1690000000), profile.Timestamp)
	assert.Equal(t, []string{"Event Planner", "Wedding Planner"}, profile.Professions)
	assert.Equal(t, &models.Portrait{
		AccountID: 42,
		Filename:  "jane.jpg",
		Width:     400,
		Height:    600,
		MimeType:  "image/jpeg",
		Modified:  1700000000,
	}, profile.Portrait)
}

func TestFindProfile_WithoutPortrait(t *testing.T) {
	repo, mock := newTestProfileRepo(t)

	mock.ExpectQuery("FROM accounts a").
		WillReturnRows(sqlmock.NewRows(profileColumns).AddRow(profileRow(nil, false)...))

	profile, err := repo.FindProfile(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, profile.Portrait)
	assert.Empty(t, profile.Professions)
	assert.NotNil(t, profile.Professions)
}

// TestFindProfile_NotVisible covers accounts in arrears and inactive
// profiles: the visibility predicates leave no rows.
func TestFindProfile_NotVisible(t *testing.T) {
	repo, mock := newTestProfileRepo(t)

	mock.ExpectQuery(`WHERE a\.arrears = 0 AND p\.active AND a\.id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(profileColumns))

	_, err := repo.FindProfile(context.Background(), 7)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestFindProfile_QueryError(t *testing.T) {
	repo, mock := newTestProfileRepo(t)

	mock.ExpectQuery("FROM accounts a").WillReturnError(errors.New("boom"))

	_, err := repo.FindProfile(context.Background(), 1)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestFindProfile_ScanError(t *testing.T) {
	repo, mock := newTestProfileRepo(t)

	mock.ExpectQuery("FROM accounts a").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	_, err := repo.FindProfile(context.Background(), 1)
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestGetCertifications(t *testing.T) {
	repo, mock := newTestProfileRepo(t)

	mock.ExpectQuery(`NOT s\.graduated`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"code"}).AddRow("EP").AddRow("WP"))

	codes, err := repo.GetCertifications(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, []string{"EP", "WP"}, codes)
}

func TestGetPictures_Ordered(t *testing.T) {
	repo, mock := newTestProfileRepo(t)

	mock.ExpectQuery(`ORDER BY priority, id`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "heading", "description", "priority", "width", "height"}).
			AddRow(3, "Gala", nil, 1, 800, 600).
			AddRow(1, nil, "Garden", 2, 640, 480))

	pictures, err := repo.GetPictures(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, pictures, 2)
	assert.Equal(t, int64(3), pictures[0].ID)
	require.NotNil(t, pictures[0].Heading)
	assert.Equal(t, "Gala", *pictures[0].Heading)
	assert.Nil(t, pictures[0].Description)
	assert.Nil(t, pictures[1].Heading)
	assert.Equal(t, 2, pictures[1].Priority)
}

func TestGetTestimonials(t *testing.T) {
	repo, mock := newTestProfileRepo(t)

	mock.ExpectQuery("FROM testimonials").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"quote", "name", "rating"}).
			AddRow("Great!", "Ann", 5).
			AddRow("Fine", "Bob", nil))

	testimonials, err := repo.GetTestimonials(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, testimonials, 2)
	require.NotNil(t, testimonials[0].Rating)
	assert.Equal(t, 5, *testimonials[0].Rating)
	assert.Nil(t, testimonials[1].Rating)
}

func TestGetTestimonials_RowsError(t *testing.T) {
	repo, mock := newTestProfileRepo(t)

	mock.ExpectQuery("FROM testimonials").
		WillReturnRows(sqlmock.NewRows([]string{"quote", "name", "rating"}).
			AddRow("Great!", "Ann", 5).
			RowError(0, errors.New("broken stream")))

	_, err := repo.GetTestimonials(context.Background(), 42)
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestSearchProfiles_ScansPartialProfiles(t *testing.T) {
	repo, mock := newTestProfileRepo(t)

	mock.ExpectQuery(`SELECT DISTINCT`).
		WithArgs("CA", "Writer").
		WillReturnRows(sqlmock.NewRows(partialColumns).
			AddRow(1, "M", "Al", "Bo", "", "al@bo.com", "", "", "Ottawa", nil, "CA", "", int64(1600000000),
				nil, nil, nil, nil, nil, 0.42).
			AddRow(2, "F", "Cy", "Di", "", "cy@di.com", "", "", "Quebec", "QC", "CA", "", int64(1600000001),
				"cy.png", int64(10), int64(20), "image/png", int64(1650000000), 0.73))

	profiles, err := repo.SearchProfiles(context.Background(), models.ProfileSearch{
		CountryCode: "CA",
		Profession:  "Writer",
	})
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	assert.Nil(t, profiles[0].ProvinceCode)
	assert.Nil(t, profiles[0].Portrait)
	require.NotNil(t, profiles[1].Portrait)
	assert.Equal(t, int64(2), profiles[1].Portrait.AccountID)
	assert.Equal(t, "QC", *profiles[1].ProvinceCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchProfiles_QueryError(t *testing.T) {
	repo, mock := newTestProfileRepo(t)

	mock.ExpectQuery(`SELECT DISTINCT`).WillReturnError(errors.New("boom"))

	_, err := repo.SearchProfiles(context.Background(), models.DefaultProfileSearch())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
