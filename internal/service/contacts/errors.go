package contacts

import "errors"

var (
	// ErrContactNotFound возвращается, когда контакт не найден
	ErrContactNotFound = errors.New("contacts service: contact not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("contacts service: internal error")
)
