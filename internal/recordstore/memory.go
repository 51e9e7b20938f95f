package recordstore

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Memory is an in-process Store used by tests and the "memory" driver.
// It applies the same criteria semantics the postgres implementation
// compiles to SQL, so engine logic behaves identically against either.
type Memory struct {
	mu     sync.RWMutex
	seq    map[Kind]int
	tables map[Kind][]RawRecord
}

func NewMemory() *Memory {
	return &Memory{
		seq:    make(map[Kind]int),
		tables: make(map[Kind][]RawRecord),
	}
}

func (m *Memory) FetchMany(_ context.Context, kind Kind, q Query) ([]RawRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []RawRecord
	for _, rec := range m.tables[kind] {
		if matchesQuery(rec, q) {
			out = append(out, cloneRecord(rec))
		}
	}

	sortRecords(out, q.OrderBy)

	if q.Paging.Offset > 0 {
		if q.Paging.Offset >= len(out) {
			return []RawRecord{}, nil
		}
		out = out[q.Paging.Offset:]
	}
	if q.Paging.Limit > 0 && q.Paging.Limit < len(out) {
		out = out[:q.Paging.Limit]
	}
	if out == nil {
		out = []RawRecord{}
	}
	return out, nil
}

func (m *Memory) FetchOne(_ context.Context, kind Kind, id int) (RawRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, rec := range m.tables[kind] {
		if recordID(rec) == id {
			return cloneRecord(rec), nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) Create(_ context.Context, kind Kind, fields RawRecord) (RawRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq[kind]++
	rec := cloneRecord(fields)
	rec["Id"] = m.seq[kind]
	m.tables[kind] = append(m.tables[kind], rec)
	return cloneRecord(rec), nil
}

func (m *Memory) Update(_ context.Context, kind Kind, id int, fields RawRecord) (RawRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, rec := range m.tables[kind] {
		if recordID(rec) != id {
			continue
		}
		updated := cloneRecord(rec)
		for k, v := range fields {
			if k == "Id" {
				continue
			}
			updated[k] = v
		}
		m.tables[kind][i] = updated
		return cloneRecord(updated), nil
	}
	return nil, ErrNotFound
}

func (m *Memory) Delete(_ context.Context, kind Kind, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, rec := range m.tables[kind] {
		if recordID(rec) == id {
			m.tables[kind] = append(m.tables[kind][:i], m.tables[kind][i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// Seed inserts records without assigning ids, preserving any "Id" field the
// caller supplied. Intended for test fixtures.
func (m *Memory) Seed(kind Kind, records ...RawRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, rec := range records {
		r := cloneRecord(rec)
		if id := recordID(r); id > m.seq[kind] {
			m.seq[kind] = id
		}
		m.tables[kind] = append(m.tables[kind], r)
	}
}

// Len reports the number of stored records of a kind. Intended for tests.
func (m *Memory) Len(kind Kind) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tables[kind])
}

func matchesQuery(rec RawRecord, q Query) bool {
	for _, c := range q.Where {
		if !matchesCondition(rec, c) {
			return false
		}
	}
	if len(q.OrGroups) == 0 {
		return true
	}
	for _, group := range q.OrGroups {
		all := true
		for _, c := range group {
			if !matchesCondition(rec, c) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

func matchesCondition(rec RawRecord, c Condition) bool {
	if len(c.Values) == 0 {
		return true
	}
	val, ok := rec[c.Field]
	if c.Field == "Id" {
		val, ok = recordID(rec), true
	}

	switch c.Operator {
	case EqualTo:
		return ok && compareValues(val, c.Values[0]) == 0
	case NotEqualTo:
		return !ok || compareValues(val, c.Values[0]) != 0
	case GreaterThanOrEqualTo:
		return ok && compareValues(val, c.Values[0]) >= 0
	case LessThanOrEqualTo:
		return ok && compareValues(val, c.Values[0]) <= 0
	case Contains:
		return ok && strings.Contains(strings.ToLower(asString(val)), strings.ToLower(asString(c.Values[0])))
	case ExactMatch:
		if !ok {
			return false
		}
		for _, want := range c.Values {
			if compareValues(val, want) == 0 {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// compareValues orders two scalars, numerically when both sides parse as
// numbers and lexicographically otherwise.
func compareValues(a, b any) int {
	af, aok := asNumber(a)
	bf, bok := asNumber(b)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(asString(a), asString(b))
}

func sortRecords(recs []RawRecord, orderBy []OrderBy) {
	if len(orderBy) == 0 {
		return
	}
	sort.SliceStable(recs, func(i, j int) bool {
		for _, ob := range orderBy {
			cmp := compareValues(recs[i][ob.Field], recs[j][ob.Field])
			if cmp == 0 {
				continue
			}
			if ob.Desc {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
}

func recordID(rec RawRecord) int {
	if f, ok := asNumber(rec["Id"]); ok {
		return int(f)
	}
	return 0
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func asString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprintf("%v", v)
	}
}

func cloneRecord(rec RawRecord) RawRecord {
	out := make(RawRecord, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	return out
}
