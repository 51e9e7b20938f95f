package recordstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"stayhub/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres stores every record kind in a single jsonb document table and
// compiles Query criteria to SQL. Keeping the schema generic means the
// store contract, not the database, owns field naming.
const Schema = `
CREATE TABLE IF NOT EXISTS records (
    kind   text   NOT NULL,
    id     bigint GENERATED BY DEFAULT AS IDENTITY,
    fields jsonb  NOT NULL DEFAULT '{}'::jsonb,
    PRIMARY KEY (kind, id)
);
CREATE INDEX IF NOT EXISTS records_fields_gin ON records USING gin (fields);
`

type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// EnsureSchema creates the document table when it does not exist yet.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, Schema)
	return errs.Wrap(err, "failed to ensure records schema")
}

func (p *Postgres) FetchMany(ctx context.Context, kind Kind, q Query) ([]RawRecord, error) {
	sb := &sqlBuilder{}
	sql := "SELECT id, fields FROM records WHERE kind = " + sb.bind(string(kind))

	for _, c := range q.Where {
		clause, err := compileCondition(sb, c)
		if err != nil {
			return nil, err
		}
		sql += " AND " + clause
	}

	if len(q.OrGroups) > 0 {
		groups := make([]string, 0, len(q.OrGroups))
		for _, group := range q.OrGroups {
			clauses := make([]string, 0, len(group))
			for _, c := range group {
				clause, err := compileCondition(sb, c)
				if err != nil {
					return nil, err
				}
				clauses = append(clauses, clause)
			}
			groups = append(groups, "("+strings.Join(clauses, " AND ")+")")
		}
		sql += " AND (" + strings.Join(groups, " OR ") + ")"
	}

	if len(q.OrderBy) > 0 {
		parts := make([]string, 0, len(q.OrderBy))
		for _, ob := range q.OrderBy {
			dir := "ASC"
			if ob.Desc {
				dir = "DESC"
			}
			// jsonb ordering sorts numbers numerically and strings
			// lexicographically, matching the memory store.
			parts = append(parts, fmt.Sprintf("fields->%s %s", sb.bind(ob.Field), dir))
		}
		sql += " ORDER BY " + strings.Join(parts, ", ")
	} else {
		sql += " ORDER BY id ASC"
	}

	if q.Paging.Limit > 0 {
		sql += " LIMIT " + sb.bind(q.Paging.Limit)
	}
	if q.Paging.Offset > 0 {
		sql += " OFFSET " + sb.bind(q.Paging.Offset)
	}

	rows, err := p.pool.Query(ctx, sql, sb.args...)
	if err != nil {
		return nil, errs.Wrap(err, "failed to fetch records")
	}
	defer rows.Close()

	out := []RawRecord{}
	for rows.Next() {
		var id int64
		var doc []byte
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, errs.Wrap(err, "failed to scan record")
		}
		rec, err := decodeRecord(id, doc)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, errs.Wrap(rows.Err(), "failed to read records")
}

func (p *Postgres) FetchOne(ctx context.Context, kind Kind, id int) (RawRecord, error) {
	var doc []byte
	err := p.pool.QueryRow(ctx,
		"SELECT fields FROM records WHERE kind = $1 AND id = $2",
		string(kind), id,
	).Scan(&doc)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, errs.Wrap(err, "failed to fetch record")
	}
	return decodeRecord(int64(id), doc)
}

func (p *Postgres) Create(ctx context.Context, kind Kind, fields RawRecord) (RawRecord, error) {
	doc, err := encodeFields(fields)
	if err != nil {
		return nil, err
	}
	var id int64
	err = p.pool.QueryRow(ctx,
		"INSERT INTO records (kind, fields) VALUES ($1, $2) RETURNING id",
		string(kind), doc,
	).Scan(&id)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create record")
	}
	return p.FetchOne(ctx, kind, int(id))
}

func (p *Postgres) Update(ctx context.Context, kind Kind, id int, fields RawRecord) (RawRecord, error) {
	doc, err := encodeFields(fields)
	if err != nil {
		return nil, err
	}
	var merged []byte
	err = p.pool.QueryRow(ctx,
		"UPDATE records SET fields = fields || $3 WHERE kind = $1 AND id = $2 RETURNING fields",
		string(kind), id, doc,
	).Scan(&merged)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, errs.Wrap(err, "failed to update record")
	}
	return decodeRecord(int64(id), merged)
}

func (p *Postgres) Delete(ctx context.Context, kind Kind, id int) (bool, error) {
	tag, err := p.pool.Exec(ctx,
		"DELETE FROM records WHERE kind = $1 AND id = $2",
		string(kind), id,
	)
	if err != nil {
		return false, errs.Wrap(err, "failed to delete record")
	}
	return tag.RowsAffected() > 0, nil
}

type sqlBuilder struct {
	args []any
}

func (b *sqlBuilder) bind(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

func compileCondition(b *sqlBuilder, c Condition) (string, error) {
	// An empty value list is a no-op condition, matching the memory store.
	if len(c.Values) == 0 {
		return "TRUE", nil
	}

	field := fieldExpr(b, c)

	switch c.Operator {
	case EqualTo:
		return field + " = " + b.bind(operand(c.Values[0])), nil
	case NotEqualTo:
		return field + " <> " + b.bind(operand(c.Values[0])), nil
	case GreaterThanOrEqualTo:
		return field + " >= " + b.bind(operand(c.Values[0])), nil
	case LessThanOrEqualTo:
		return field + " <= " + b.bind(operand(c.Values[0])), nil
	case Contains:
		return field + " ILIKE '%' || " + b.bind(escapeLike(asString(c.Values[0]))) + " || '%'", nil
	case ExactMatch:
		vals := make([]string, 0, len(c.Values))
		for _, v := range c.Values {
			vals = append(vals, asString(operand(v)))
		}
		return field + " = ANY(" + b.bind(vals) + ")", nil
	default:
		return "", errs.New("unsupported operator: " + string(c.Operator))
	}
}

// fieldExpr extracts a record field as text, cast to numeric when the
// condition compares against a number so comparisons are not lexicographic.
// The Id pseudo-field maps to the id column directly, without binding a
// field-name argument.
func fieldExpr(b *sqlBuilder, c Condition) string {
	if c.Field == "Id" {
		if numericComparison(c) {
			return "id"
		}
		return "id::text"
	}
	expr := "fields->>" + b.bind(c.Field)
	if numericComparison(c) {
		if _, isBool := c.Values[0].(bool); !isBool {
			return "(" + expr + ")::numeric"
		}
	}
	return expr
}

func numericComparison(c Condition) bool {
	_, numeric := asNumber(c.Values[0])
	return numeric && c.Operator != Contains && c.Operator != ExactMatch
}

// escapeLike neutralizes LIKE metacharacters so Contains matches them
// literally, as the memory store does.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// operand normalizes a condition value for binding: numbers stay numbers,
// everything else becomes its text form (matching fields->> output).
func operand(v any) any {
	switch v.(type) {
	case float64, float32, int, int32, int64:
		return v
	default:
		return asString(v)
	}
}

func encodeFields(fields RawRecord) ([]byte, error) {
	clean := make(map[string]any, len(fields))
	for k, v := range fields {
		if k == "Id" {
			continue
		}
		clean[k] = v
	}
	doc, err := json.Marshal(clean)
	return doc, errs.Wrap(err, "failed to encode record fields")
}

func decodeRecord(id int64, doc []byte) (RawRecord, error) {
	rec := RawRecord{}
	if err := json.Unmarshal(doc, &rec); err != nil {
		return nil, errs.Wrap(err, "failed to decode record fields")
	}
	rec["Id"] = int(id)
	return rec, nil
}
