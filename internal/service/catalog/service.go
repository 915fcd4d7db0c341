package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/om-engineers/OME-BookingService/internal/domain"
	catalogRepo "github.com/om-engineers/OME-BookingService/internal/infra/storage/catalog"
	"github.com/om-engineers/OME-BookingService/internal/service/catalog/models"
)

// Service сервис каталога услуг
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// List возвращает активные услуги с опциональной фильтрацией
// по категории и поисковой строке
func (s *Service) List(ctx context.Context, req *models.ListServicesRequest) (*models.ServiceListResponse, error) {
	s.logger.Info("List: fetching services, category=%q, query=%q", req.Category, req.Query)

	services, err := s.catalogRepo.List(ctx, domain.ServiceCategory(req.Category), req.Query)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	categories, err := s.catalogRepo.Categories(ctx)
	if err != nil {
		s.logger.Error("List: failed to get categories: %v", err)
		return nil, fmt.Errorf("%w: List - failed to get categories: %v", ErrInternal, err)
	}

	s.logger.Info("List: found %d services", len(services))
	return models.FromDomainServiceList(services, categories), nil
}

// GetByID получает услугу по ID
// Неактивные услуги также разрешаются — для исторических заявок
func (s *Service) GetByID(ctx context.Context, id string) (*models.ServiceResponse, error) {
	s.logger.Info("GetByID: fetching service id=%s", id)

	service, err := s.catalogRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("GetByID: service id=%s not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByID: repository error for service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(service), nil
}

// Categories возвращает отсортированный список категорий активных услуг
func (s *Service) Categories(ctx context.Context) (*models.CategoriesResponse, error) {
	categories, err := s.catalogRepo.Categories(ctx)
	if err != nil {
		s.logger.Error("Categories: repository error: %v", err)
		return nil, fmt.Errorf("%w: Categories - repository error: %v", ErrInternal, err)
	}

	resp := &models.CategoriesResponse{Categories: make([]string, 0, len(categories))}
	for _, c := range categories {
		resp.Categories = append(resp.Categories, string(c))
	}

	return resp, nil
}
