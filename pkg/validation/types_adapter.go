package validation

import (
	"reflect"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"

	"asset-guardian/pkg/types"
)

// registerNullTypes учит валидатор "смотреть внутрь" типов null.String, null.Int и т.д.
// Невалидное значение превращается в nil, чтобы сработал `omitempty`.
func registerNullTypes(v *validator.Validate) {
	registerUnwrap(v, nullString)
	registerUnwrap(v, func(val null.Int) interface{} {
		if val.Valid {
			return val.Int
		}
		return nil
	})
	registerUnwrap(v, nullFloat64)
	registerUnwrap(v, func(val null.Time) interface{} {
		if val.Valid {
			return val.Time
		}
		return nil
	})
	// types.Date: нулевая дата считается пустой для `required`
	registerUnwrap(v, date)

	// PATCH-поля: отсутствующий ключ и null одинаково пусты для `omitempty`
	registerOptional(v, nullString)
	registerOptional(v, nullFloat64)
	registerOptional(v, date)
}

func registerUnwrap[T any](v *validator.Validate, unwrap func(T) interface{}) {
	var zero T
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if val, ok := field.Interface().(T); ok {
			return unwrap(val)
		}
		return nil
	}, zero)
}

func registerOptional[T any](v *validator.Validate, unwrap func(T) interface{}) {
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if o, ok := field.Interface().(types.Optional[T]); ok && o.Set {
			return unwrap(o.Value)
		}
		return nil
	}, types.Optional[T]{})
}

func nullString(val null.String) interface{} {
	if val.Valid {
		return val.String
	}
	return nil
}

func nullFloat64(val null.Float64) interface{} {
	if val.Valid {
		return val.Float64
	}
	return nil
}

func date(val types.Date) interface{} {
	if !val.IsZero() {
		return val.Time
	}
	return nil
}
