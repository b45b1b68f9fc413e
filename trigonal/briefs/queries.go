package briefs

import (
	sq "github.com/Masterminds/squirrel"
)

const tableBriefs = "project_briefs"

const briefColumns = `id::text, full_name, organization, email, project_location, primary_interest,
		existing_systems, nepal_directive_2081, hl7_fhir, technical_brief, status, created_at, updated_at`

const (
	queryCreate = `
		INSERT INTO project_briefs (
			full_name, organization, email, project_location, primary_interest,
			existing_systems, nepal_directive_2081, hl7_fhir, technical_brief
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + briefColumns

	queryGet = `
		SELECT ` + briefColumns + `
		FROM project_briefs
		WHERE id = $1
	`

	queryUpdateStatus = `
		UPDATE project_briefs
		SET status = $1,
		    updated_at = NOW()
		WHERE id = $2
		RETURNING ` + briefColumns
)

// postgres placeholders for every built query
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// narrows a select to filter; shared by the page and count queries
func applyFilter(query sq.SelectBuilder, filter ListFilter) sq.SelectBuilder {
	if filter.Status != "" {
		query = query.Where(sq.Eq{"status": string(filter.Status)})
	}

	return query
}

func buildListQuery(filter ListFilter, limit int) (string, []any, error) {
	return applyFilter(psql.Select(briefColumns).From(tableBriefs), filter).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)).
		Offset(uint64(max(filter.Offset, 0))).
		ToSql()
}

func buildCountQuery(filter ListFilter) (string, []any, error) {
	return applyFilter(psql.Select("COUNT(*)").From(tableBriefs), filter).ToSql()
}
