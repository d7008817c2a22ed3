package igdb

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"sweaty/internal/domain/entity"
)

const (
	listFields   = "name,slug,summary,cover.image_id,first_release_date,genres.name,platforms.name,total_rating,aggregated_rating"
	detailFields = listFields + ",artworks.image_id,screenshots.image_id,videos.video_id,videos.name"

	// Main game, remake, remaster. Excludes DLC, bundles, episodes and mods.
	mainGameCategories = "(0,8,9)"
)

// apicalypse is one catalog query. Zero-valued clauses are omitted.
type apicalypse struct {
	search string
	fields string
	where  []string
	sort   string
	limit  int
	offset int
}

func (q apicalypse) String() string {
	var b strings.Builder
	if q.search != "" {
		fmt.Fprintf(&b, "search \"%s\"; ", escape(q.search))
	}
	fmt.Fprintf(&b, "fields %s;", q.fields)
	if len(q.where) > 0 {
		fmt.Fprintf(&b, " where %s;", strings.Join(q.where, " & "))
	}
	if q.sort != "" {
		fmt.Fprintf(&b, " sort %s;", q.sort)
	}
	if q.limit > 0 {
		fmt.Fprintf(&b, " limit %d;", q.limit)
	}
	if q.offset > 0 {
		fmt.Fprintf(&b, " offset %d;", q.offset)
	}
	return b.String()
}

func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

func idList(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// yearRange parses "2019" into [2019-01-01, 2020-01-01) and the decade form
// "2010s" into [2010-01-01, 2020-01-01), both UTC.
func yearRange(value string) (from, to time.Time, ok bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	span := 1
	if strings.HasSuffix(value, "s") {
		value = strings.TrimSuffix(value, "s")
		span = 10
	}

	year, err := strconv.Atoi(value)
	if err != nil || year < 1000 || year > 9999 {
		return time.Time{}, time.Time{}, false
	}

	from = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(span, 0, 0), true
}

// facetCondition ORs the ids of one facet. A facet may span two catalog
// fields (genre names and theme names share the "genres" facet).
func facetCondition(byField map[string][]int) string {
	var parts []string
	for _, field := range []string{"genres", "themes", "platforms"} {
		if ids := byField[field]; len(ids) > 0 {
			parts = append(parts, fmt.Sprintf("%s = %s", field, idList(ids)))
		}
	}
	return orGroup(parts)
}

func orGroup(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	default:
		return "(" + strings.Join(parts, " | ") + ")"
	}
}

// browseConditions translates facets into where-clauses. Unknown values are
// skipped; a facet with no known value adds no condition.
func browseConditions(f entity.BrowseFilters) []string {
	where := []string{"cover != null", "version_parent = null"}

	genreFacet := map[string][]int{}
	for _, name := range f.Genres {
		if id, ok := GenreID(name); ok {
			genreFacet["genres"] = append(genreFacet["genres"], id)
		} else if id, ok := ThemeID(name); ok {
			genreFacet["themes"] = append(genreFacet["themes"], id)
		}
	}
	if cond := facetCondition(genreFacet); cond != "" {
		where = append(where, cond)
	}

	themeFacet := map[string][]int{}
	for _, name := range f.Themes {
		if id, ok := ThemeID(name); ok {
			themeFacet["themes"] = append(themeFacet["themes"], id)
		}
	}
	if cond := facetCondition(themeFacet); cond != "" {
		where = append(where, cond)
	}

	platformFacet := map[string][]int{}
	for _, name := range f.Platforms {
		if id, ok := PlatformID(name); ok {
			platformFacet["platforms"] = append(platformFacet["platforms"], id)
		}
	}
	if cond := facetCondition(platformFacet); cond != "" {
		where = append(where, cond)
	}

	var ranges []string
	for _, value := range f.Years {
		from, to, ok := yearRange(value)
		if !ok {
			continue
		}
		ranges = append(ranges, fmt.Sprintf("(first_release_date >= %d & first_release_date < %d)", from.Unix(), to.Unix()))
	}
	if cond := orGroup(ranges); cond != "" {
		where = append(where, cond)
	}

	return where
}
