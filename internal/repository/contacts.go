package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/octobees/leads-outreach/api/internal/dto"
	"github.com/octobees/leads-outreach/api/internal/entity"
)

// ContactsRepository reads scraped contacts and company enrichment rows.
type ContactsRepository interface {
	ListContacts(ctx context.Context, filter dto.ContactFilter) ([]entity.RawContact, error)
	FindEnrichments(ctx context.Context, lookup dto.EnrichmentLookup) ([]entity.EnrichmentRecord, error)
	Ping(ctx context.Context) error
}

// PGXContactsRepository implements ContactsRepository using pgx.
type PGXContactsRepository struct {
	pool pgxPool
}

// NewPGXContactsRepository wires a pgx backed repository.
func NewPGXContactsRepository(pool *pgxpool.Pool) *PGXContactsRepository {
	return &PGXContactsRepository{pool: pool}
}

const listContactsSQL = `
        SELECT
            contact_id::text,
            company_id,
            company_name,
            lead_name,
            job_title,
            seniority_level,
            email,
            phone,
            linkedin_url
        FROM pessoas_apollo_b2b
        WHERE notes = $1
          AND phone LIKE $2 ESCAPE '\'
    `

// ListContacts returns contacts scraped by the given source whose phone starts
// with the filter's prefix. Rows come back in store order.
func (r *PGXContactsRepository) ListContacts(ctx context.Context, filter dto.ContactFilter) ([]entity.RawContact, error) {
	if filter.SourceTag == "" || filter.PhonePrefix == "" {
		return nil, fmt.Errorf("contact filter requires source tag and phone prefix")
	}

	rows, err := r.pool.Query(ctx, listContactsSQL, filter.SourceTag, escapeLike(filter.PhonePrefix)+"%")
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	return scanContacts(rows)
}

const findEnrichmentsSQL = `
        SELECT
            primary_domain,
            company_name,
            description,
            website,
            city,
            state,
            country
        FROM empresas_enriquecidas
        WHERE LOWER(primary_domain) = ANY($1)
           OR LOWER(company_name) = ANY($2)
    `

// FindEnrichments returns enrichment rows whose primary domain or company name
// case-insensitively equals one of the lookup values. The result is a superset
// of what actually links; exact matching happens in memory.
func (r *PGXContactsRepository) FindEnrichments(ctx context.Context, lookup dto.EnrichmentLookup) ([]entity.EnrichmentRecord, error) {
	if len(lookup.Domains) == 0 && len(lookup.Names) == 0 {
		return []entity.EnrichmentRecord{}, nil
	}

	rows, err := r.pool.Query(ctx, findEnrichmentsSQL, lowerAll(lookup.Domains), lowerAll(lookup.Names))
	if err != nil {
		return nil, fmt.Errorf("find enrichments: %w", err)
	}
	defer rows.Close()

	records := make([]entity.EnrichmentRecord, 0)
	for rows.Next() {
		var primaryDomain, companyName, description, website, city, state, country sql.NullString
		if err := rows.Scan(&primaryDomain, &companyName, &description, &website, &city, &state, &country); err != nil {
			return nil, fmt.Errorf("scan enrichment: %w", err)
		}
		records = append(records, entity.EnrichmentRecord{
			PrimaryDomain: nullStringToPtr(primaryDomain),
			CompanyName:   nullStringToPtr(companyName),
			Description:   nullStringToPtr(description),
			Website:       nullStringToPtr(website),
			City:          nullStringToPtr(city),
			State:         nullStringToPtr(state),
			Country:       nullStringToPtr(country),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate enrichments: %w", err)
	}
	return records, nil
}

// Ping verifies the database is reachable.
func (r *PGXContactsRepository) Ping(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

func scanContacts(rows pgx.Rows) ([]entity.RawContact, error) {
	contacts := make([]entity.RawContact, 0)
	for rows.Next() {
		var (
			c           entity.RawContact
			companyID   sql.NullString
			companyName sql.NullString
			leadName    sql.NullString
			jobTitle    sql.NullString
			seniority   sql.NullString
			email       sql.NullString
			phone       sql.NullString
			linkedIn    sql.NullString
		)

		err := rows.Scan(
			&c.ContactID,
			&companyID,
			&companyName,
			&leadName,
			&jobTitle,
			&seniority,
			&email,
			&phone,
			&linkedIn,
		)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}

		c.CompanyIDRaw = nullStringToPtr(companyID)
		c.CompanyName = nullStringToPtr(companyName)
		c.LeadName = nullStringToPtr(leadName)
		c.JobTitle = nullStringToPtr(jobTitle)
		c.SeniorityLevel = nullStringToPtr(seniority)
		c.Email = nullStringToPtr(email)
		c.Phone = phone.String
		c.LinkedInURL = nullStringToPtr(linkedIn)

		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contacts: %w", err)
	}
	return contacts, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}

func lowerAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.ToLower(v))
	}
	return out
}
