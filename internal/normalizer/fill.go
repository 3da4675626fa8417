package normalizer

import (
	"regexp"
	"sort"
	"strings"

	"bookstats/internal/models"
)

var integralFloatPattern = regexp.MustCompile(`^(-?\d+)\.0+$`)

// Deduplicate drops every record whose key was already seen, keeping first occurrences in order.
func Deduplicate[T any](items []T, key func(T) string) []T {
	seen := make(map[string]struct{}, len(items))
	out := make([]T, 0, len(items))

	for _, item := range items {
		k := key(item)
		if _, dup := seen[k]; dup {
			continue
		}

		seen[k] = struct{}{}
		out = append(out, item)
	}

	return out
}

// DeduplicateRecords collapses exact duplicate rows.
func DeduplicateRecords(records []models.RawRecord) []models.RawRecord {
	return Deduplicate(records, models.RawRecord.Key)
}

func isNull(raw string) bool {
	s := strings.TrimSpace(raw)
	return s == "" || s == models.NullToken
}

// fillText returns the value of key or the NoInfo sentinel when it is absent or NULL.
func fillText(r models.RawRecord, key string) string {
	v, ok := r.Get(key)
	if !ok || isNull(v) {
		return models.NoInfo
	}

	return v
}

// canonicalID fills a missing identifier and rewrites integral float text ("42.0") to "42"
// so ids loaded from differently typed sources compare equal.
func canonicalID(r models.RawRecord, key string) string {
	v := fillText(r, key)
	if v == models.NoInfo {
		return v
	}

	v = strings.TrimSpace(v)
	if m := integralFloatPattern.FindStringSubmatch(v); m != nil {
		return m[1]
	}

	return v
}

// unionColumns lists every key seen across records, minus the excluded ones, sorted.
func unionColumns(records []models.RawRecord, exclude ...string) []string {
	skip := make(map[string]bool, len(exclude))
	for _, e := range exclude {
		skip[e] = true
	}

	set := map[string]bool{}

	for _, r := range records {
		for k := range r {
			if !skip[k] {
				set[k] = true
			}
		}
	}

	cols := make([]string, 0, len(set))
	for k := range set {
		cols = append(cols, k)
	}

	sort.Strings(cols)

	return cols
}

// fillExtra copies the given columns of r, sentinel-filling gaps.
func fillExtra(r models.RawRecord, cols []string) map[string]string {
	if len(cols) == 0 {
		return nil
	}

	extra := make(map[string]string, len(cols))
	for _, c := range cols {
		extra[c] = fillText(r, c)
	}

	return extra
}
