// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	"github.com/MKhiriev/pro-directory/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	findAccountIDByEmail = `SELECT id FROM accounts WHERE lower(email_address) = lower($1) LIMIT 1;`

	createAccount = `INSERT INTO accounts (email_address, password_hash, verified, verification_code)
    VALUES ($1, $2, FALSE, $3)
    RETURNING id, created_at;`

	findAccountByEmail = `SELECT id, email_address, password_hash, verified, created_at
    FROM accounts
    WHERE lower(email_address) = lower($1)
    LIMIT 1;`

	verifyAccount = `UPDATE accounts
    SET verified = TRUE
    WHERE lower(email_address) = lower($1) AND verification_code = $2 AND NOT verified
    RETURNING id;`

	findProfile = `SELECT
    a.id,
    a.sex,
    a.first_name,
    a.last_name,
    p.company,
    p.email_address,
    p.website,
    COALESCE(p.intro, ''),
    COALESCE(p.additional, ''),
    p.slogan,
    COALESCE(p.services, ''),
    p.city,
    provinces.code,
    COALESCE(countries.code, ''),
    p.phone_number,
    p.noindex,
    p.facebook,
    p.twitter,
    p.pinterest,
    p.instagram,
    p.linkedin,
    EXTRACT(EPOCH FROM p.timestamp)::BIGINT,
    COALESCE(s.name, ''),
    COALESCE(s.dark, FALSE),
    b.name,
    b.url,
    profiles_professions.profession_name,
    portraits.filename,
    portraits.width,
    portraits.height,
    portraits.mime_type,
    EXTRACT(EPOCH FROM portraits.modified)::BIGINT
FROM accounts a
JOIN profiles p ON p.account_id = a.id
LEFT JOIN styles s ON s.style_id = p.style_id
LEFT JOIN backgrounds b ON b.background_id = p.background_id
LEFT JOIN countries ON countries.id = p.country_id
LEFT JOIN provinces ON provinces.id = p.province_id
LEFT JOIN profiles_professions ON profiles_professions.account_id = a.id
LEFT JOIN portraits ON portraits.account_id = a.id
WHERE a.arrears = 0 AND p.active AND a.id = $1
ORDER BY profiles_professions.profession_name;`

	getCertifications = `SELECT c.code
    FROM students s
    JOIN courses c ON c.id = s.course_id
    WHERE s.account_id = $1 AND NOT s.graduated
    ORDER BY s.id;`

	getPictures = `SELECT id, heading, description, priority, width, height
    FROM pictures
    WHERE account_id = $1
    ORDER BY priority, id;`

	getTestimonials = `SELECT quote, name, rating
    FROM testimonials
    WHERE account_id = $1
    ORDER BY id;`

	findSubscriptionByEndpoint = `SELECT id FROM push_subscriptions WHERE endpoint = $1 LIMIT 1;`

	findUserAgent = `SELECT id FROM user_agents WHERE user_agent = $1 LIMIT 1;`

	createUserAgent = `INSERT INTO user_agents (user_agent) VALUES ($1)
    ON CONFLICT (user_agent) DO NOTHING
    RETURNING id;`

	createSubscription = `INSERT INTO push_subscriptions (account_id, endpoint, expiration_time, p256dh, auth, user_agent_id)
    VALUES ($1, $2, $3, $4, $5, $6)
    ON CONFLICT (endpoint) DO NOTHING
    RETURNING id;`
)

// Predicates shared by every profile search.
const (
	visibleAccount   = "a.arrears = 0"
	activeProfile    = "p.active"
	crawlableProfile = "p.noindex = FALSE"
	nonEmptyBio      = "(COALESCE(p.intro, '') <> '' OR COALESCE(p.additional, '') <> '' OR COALESCE(p.services, '') <> '')"
)

var partialProfileColumns = []string{
	"a.id",
	"a.sex",
	"a.first_name",
	"a.last_name",
	"p.company",
	"p.email_address",
	"p.website",
	"p.slogan",
	"p.city",
	"provinces.code",
	"COALESCE(countries.code, '')",
	"p.phone_number",
	"EXTRACT(EPOCH FROM p.timestamp)::BIGINT",
	"portraits.filename",
	"portraits.width",
	"portraits.height",
	"portraits.mime_type",
	"EXTRACT(EPOCH FROM portraits.modified)::BIGINT",
	// DISTINCT requires ORDER BY expressions in the select list
	"p.random",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// buildSearchProfilesQuery composes the profile search. Empty filters are
// skipped; every other filter is AND-combined with the visibility predicates.
func buildSearchProfilesQuery(search models.ProfileSearch) (string, []any, error) {
	builder := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select(partialProfileColumns...).
		Distinct().
		From("accounts a").
		Join("profiles p ON p.account_id = a.id").
		LeftJoin("countries ON countries.id = p.country_id").
		LeftJoin("provinces ON provinces.id = p.province_id").
		LeftJoin("profiles_professions ON profiles_professions.account_id = a.id").
		LeftJoin("service_areas ON service_areas.account_id = a.id").
		LeftJoin("portraits ON portraits.account_id = a.id").
		Where(visibleAccount).
		Where(activeProfile).
		Where(nonEmptyBio)

	if !search.IncludeNoindexed {
		builder = builder.Where(crawlableProfile)
	}
	if search.FirstName != "" {
		builder = builder.Where(sq.ILike{"a.first_name": escapeLike(search.FirstName) + "%"})
	}
	if search.LastName != "" {
		builder = builder.Where(sq.ILike{"a.last_name": escapeLike(search.LastName) + "%"})
	}
	if search.CountryCode != "" {
		builder = builder.Where(sq.Eq{"countries.code": search.CountryCode})
	}
	if search.ProvinceCode != "" {
		builder = builder.Where(sq.Eq{"provinces.code": search.ProvinceCode})
	}
	if search.Area != "" {
		pattern := "%" + escapeLike(search.Area) + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"service_areas.name": pattern},
			sq.ILike{"p.city": pattern},
		})
	}
	if search.Profession != "" {
		builder = builder.Where(sq.Eq{"profiles_professions.profession_name": search.Profession})
	}

	return builder.OrderBy("p.random").ToSql()
}
