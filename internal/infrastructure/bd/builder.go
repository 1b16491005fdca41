package db

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"asset-guardian/pkg/types"
)

// ListSpec - белые списки полей списка. Ключ - имя в query-строке, значение - колонка БД.
// Все, чего нет в списках, молча игнорируется.
type ListSpec struct {
	Filters       map[string]string
	Lists         map[string]bool   // фильтры, где "a,b" означает IN (a, b); остальные сравниваются целиком
	From          map[string]string // поле >= значение (даты)
	To            map[string]string // поле <= значение (даты)
	Sorts         map[string]string
	SearchColumns []string
	DefaultSort   string
	TieBreaker    string // стабильный порядок при равных значениях, обычно id
}

// ApplyFilters добавляет WHERE по фильтрам, диапазонам дат и поиску.
func ApplyFilters(builder sq.SelectBuilder, filter types.Filter, spec ListSpec) sq.SelectBuilder {
	for jsonField, val := range filter.Filter {
		if dbCol, ok := spec.Filters[jsonField]; ok {
			values := filterValues(val, spec.Lists[jsonField])
			switch len(values) {
			case 0:
			case 1:
				builder = builder.Where(sq.Eq{dbCol: values[0]})
			default:
				builder = builder.Where(sq.Eq{dbCol: values})
			}
			continue
		}
		if dbCol, ok := spec.From[jsonField]; ok {
			if t, ok := firstDate(val); ok {
				builder = builder.Where(sq.GtOrEq{dbCol: t})
			}
			continue
		}
		if dbCol, ok := spec.To[jsonField]; ok {
			if t, ok := firstDate(val); ok {
				builder = builder.Where(sq.LtOrEq{dbCol: t})
			}
		}
	}

	if filter.Search != "" && len(spec.SearchColumns) > 0 {
		pattern := "%" + filter.Search + "%"
		or := sq.Or{}
		for _, col := range spec.SearchColumns {
			or = append(or, sq.ILike{col: pattern})
		}
		builder = builder.Where(or)
	}

	return builder
}

// filterValues приводит значение фильтра (строка или повторенный ключ) к списку без пустых элементов.
func filterValues(val interface{}, splitCommas bool) []string {
	var raw []string
	switch v := val.(type) {
	case string:
		raw = []string{v}
	case []string:
		raw = v
	default:
		raw = []string{fmt.Sprint(v)}
	}

	values := make([]string, 0, len(raw))
	for _, r := range raw {
		parts := []string{r}
		if splitCommas {
			parts = strings.Split(r, ",")
		}
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				values = append(values, p)
			}
		}
	}
	return values
}

func firstDate(val interface{}) (time.Time, bool) {
	values := filterValues(val, false)
	if len(values) == 0 {
		return time.Time{}, false
	}
	t, err := types.ParseDate(values[0])
	return t, err == nil
}

// ApplySortAndPage добавляет ORDER BY и LIMIT/OFFSET.
func ApplySortAndPage(builder sq.SelectBuilder, filter types.Filter, spec ListSpec) sq.SelectBuilder {
	sqlDir := "DESC"
	if strings.ToLower(filter.SortOrder) == "asc" {
		sqlDir = "ASC"
	}

	if dbCol, ok := spec.Sorts[filter.SortBy]; ok {
		builder = builder.OrderBy(fmt.Sprintf("%s %s", dbCol, sqlDir))
	} else if spec.DefaultSort != "" {
		builder = builder.OrderBy(spec.DefaultSort)
	}
	if spec.TieBreaker != "" {
		builder = builder.OrderBy(spec.TieBreaker)
	}

	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	return builder
}
