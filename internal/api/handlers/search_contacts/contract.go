package search_contacts

import (
	"context"

	contactsService "github.com/om-engineers/OME-BookingService/internal/service/contacts"
)

type ContactsService interface {
	Search(ctx context.Context, query string) (*contactsService.ContactListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
