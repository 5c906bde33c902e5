package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound — запись отсутствует или принадлежит другому пользователю.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyScheduled — у записи уже есть расписание.
	ErrAlreadyScheduled = errors.New("entry already scheduled")
	// ErrLoginTaken — логин уже занят.
	ErrLoginTaken = errors.New("login already taken")
	// ErrInvalidCredentials — неверный логин или пароль.
	ErrInvalidCredentials = errors.New("invalid login or password")
	// ErrMediaTooLarge — медиафайл превышает лимит.
	ErrMediaTooLarge = errors.New("media too large")
)

// ValidationError описывает ошибку входных данных по конкретному полю.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}
