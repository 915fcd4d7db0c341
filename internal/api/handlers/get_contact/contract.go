package get_contact

import (
	"context"

	contactsService "github.com/om-engineers/OME-BookingService/internal/service/contacts"
)

type ContactsService interface {
	GetByID(ctx context.Context, id string) (*contactsService.ContactResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
