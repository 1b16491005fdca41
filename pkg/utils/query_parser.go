package utils

import (
	"net/url"
	"strings"

	"asset-guardian/pkg/types"
)

var reservedQueryKeys = map[string]bool{
	"page":      true,
	"limit":     true,
	"offset":    true,
	"search":    true,
	"sortBy":    true,
	"sortOrder": true,
	"sort":      true,
	"format":    true,
}

// ParseFilterFromQuery разбирает пагинацию, сортировку, поиск и фильтры.
// Фильтры принимаются как status=active и как filter[status]=active;
// какие из них реально применятся, решает репозиторий по своему белому списку.
func ParseFilterFromQuery(values url.Values) types.Filter {
	limit, offset, page := ParsePaginationParams(values)

	filterReq := types.Filter{
		Filter:    make(map[string]interface{}),
		Limit:     limit,
		Offset:    offset,
		Page:      page,
		SortBy:    values.Get("sortBy"),
		SortOrder: "desc",
		Search:    strings.TrimSpace(values.Get("search")),
	}

	if order := strings.ToLower(values.Get("sortOrder")); order == "asc" || order == "desc" {
		filterReq.SortOrder = order
	}

	// sort=-date / sort=name
	if sort := values.Get("sort"); sort != "" && filterReq.SortBy == "" {
		if strings.HasPrefix(sort, "-") {
			filterReq.SortBy = sort[1:]
			filterReq.SortOrder = "desc"
		} else {
			filterReq.SortBy = sort
			filterReq.SortOrder = "asc"
		}
	}

	for key, vals := range values {
		if reservedQueryKeys[key] {
			continue
		}

		field := key
		if strings.HasPrefix(key, "filter[") && strings.HasSuffix(key, "]") {
			field = key[7 : len(key)-1]
		}

		for _, v := range vals {
			if v = strings.TrimSpace(v); v != "" {
				addFilterValue(filterReq.Filter, field, v)
			}
		}
	}

	return filterReq
}

// addFilterValue: одно значение хранится строкой, повторенный ключ (status=a&status=b) - []string.
func addFilterValue(filter map[string]interface{}, field, value string) {
	switch existing := filter[field].(type) {
	case nil:
		filter[field] = value
	case string:
		filter[field] = []string{existing, value}
	case []string:
		filter[field] = append(existing, value)
	}
}
