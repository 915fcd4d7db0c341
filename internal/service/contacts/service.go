package contacts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/om-engineers/OME-BookingService/internal/domain"
	contactRepo "github.com/om-engineers/OME-BookingService/internal/infra/storage/contact"
)

// ContactResponse ответ с данными контакта
type ContactResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ContactListResponse ответ со списком контактов
type ContactListResponse struct {
	Contacts []ContactResponse `json:"contacts"`
	Total    int               `json:"total"`
}

// Service сервис справочника контактов
type Service struct {
	contactRepo ContactRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса контактов
func NewService(contactRepo ContactRepository, logger Logger) *Service {
	return &Service{
		contactRepo: contactRepo,
		logger:      logger,
	}
}

// GetByID получает контакт по ID
func (s *Service) GetByID(ctx context.Context, id string) (*ContactResponse, error) {
	s.logger.Info("GetByID: fetching contact id=%s", id)

	contact, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, contactRepo.ErrContactNotFound) {
			s.logger.Warn("GetByID: contact id=%s not found", id)
			return nil, ErrContactNotFound
		}
		s.logger.Error("GetByID: repository error for contact id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return fromDomainContact(contact), nil
}

// Search ищет контакты по имени, email или телефону
func (s *Service) Search(ctx context.Context, query string) (*ContactListResponse, error) {
	s.logger.Info("Search: query=%q", query)

	found, err := s.contactRepo.Search(ctx, query)
	if err != nil {
		s.logger.Error("Search: repository error: %v", err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	resp := &ContactListResponse{Contacts: make([]ContactResponse, 0, len(found))}
	for _, c := range found {
		resp.Contacts = append(resp.Contacts, *fromDomainContact(c))
	}
	resp.Total = len(resp.Contacts)

	return resp, nil
}

func fromDomainContact(c *domain.Contact) *ContactResponse {
	return &ContactResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
