package model

import (
	"bytes"
	"encoding/json"
)

// Nullable — поле патча, которое различает «не передано» и «передан null».
//
// Set=false: поле не трогаем. Set=true, Value=nil: поле очищается.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

// Some возвращает заданное значение.
func Some[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: &v}
}

// Null возвращает явную очистку поля.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// UnmarshalJSON вызывается только для присутствующих в JSON ключей, в том числе для null.
func (n *Nullable[T]) UnmarshalJSON(b []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

// ApplyTo записывает значение в dst, если поле было передано.
func (n Nullable[T]) ApplyTo(dst **T) {
	if !n.Set {
		return
	}
	if n.Value == nil {
		*dst = nil
		return
	}
	v := *n.Value
	*dst = &v
}

// Column добавляет значение в карту колонок; nil превращается в NULL.
func (n Nullable[T]) Column(cols map[string]any, name string) {
	if !n.Set {
		return
	}
	if n.Value == nil {
		cols[name] = nil
		return
	}
	cols[name] = *n.Value
}
