package get_available_slots

import "errors"

var (
	// ErrValidation возвращается при некорректных параметрах запроса
	ErrValidation = errors.New("get_available_slots: validation failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
