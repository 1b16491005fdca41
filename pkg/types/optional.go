package types

import "encoding/json"

// Optional - поле частичного обновления. Различает три случая:
// ключа нет в JSON (Set=false), пришел null (Set=true, пустое Value) и пришло значение.
type Optional[T any] struct {
	Set   bool
	Value T
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	return json.Unmarshal(data, &o.Value)
}

// Apply записывает значение в dst, только если поле пришло в запросе (в том числе null).
func (o Optional[T]) Apply(dst *T) {
	if o.Set {
		*dst = o.Value
	}
}
