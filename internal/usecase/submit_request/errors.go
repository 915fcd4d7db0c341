package submit_request

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("submit_request: service offering not found")

	// ErrServiceInactive возвращается при попытке заказать отключённую услугу
	ErrServiceInactive = errors.New("submit_request: service offering is inactive")

	// ErrValidation возвращается при отсутствующих или некорректных полях формы
	ErrValidation = errors.New("submit_request: validation failed")

	// ErrInvalidDate возвращается, когда запрошенная дата в прошлом
	ErrInvalidDate = errors.New("submit_request: requested date is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата превышает окно бронирования
	ErrDateTooFarInFuture = errors.New("submit_request: date is too far in the future")

	// ErrOutsideWorkingHours возвращается, когда запрошенное время вне рабочего окна
	ErrOutsideWorkingHours = errors.New("submit_request: requested time is outside working hours")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_request: internal error")
)
