package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/HallBookingService/internal/domain"
	"github.com/m04kA/HallBookingService/internal/infra/storage/registry"
	"github.com/m04kA/HallBookingService/internal/service/customers/models"
)

// Service сервис для работы с клиентами
type Service struct {
	repo   CustomerRepository
	ids    IDGenerator
	logger Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(repo CustomerRepository, ids IDGenerator, logger Logger) *Service {
	if ids == nil {
		ids = UUIDGenerator{}
	}

	return &Service{
		repo:   repo,
		ids:    ids,
		logger: logger,
	}
}

// Create создает клиента; email должен быть уникальным
func (s *Service) Create(ctx context.Context, req *models.CreateCustomerRequest) (*models.CustomerResponse, error) {
	s.logger.Info("Create: creating customer email=%s", req.Email)

	if err := validateContact(req.Name, req.Email, req.Phone); err != nil {
		s.logger.Warn("Create: validation failed for email=%s: %v", req.Email, err)
		return nil, err
	}

	customer, err := s.repo.AddCustomer(ctx, &domain.Customer{
		ID:      s.ids.NewID(),
		Name:    strings.TrimSpace(req.Name),
		Email:   req.Email,
		Phone:   strings.TrimSpace(req.Phone),
		Address: req.Address,
	})
	if err != nil {
		if errors.Is(err, registry.ErrCustomerAlreadyExists) {
			s.logger.Warn("Create: customer with email=%s already exists", req.Email)
			return nil, ErrCustomerAlreadyExists
		}
		s.logger.Error("Create: repository error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created customer id=%s", customer.ID)
	return models.FromDomainCustomer(customer), nil
}

// Ensure возвращает клиента по email, создавая его из контактов бронирования при отсутствии
// Существующая запись не перезаписывается
func (s *Service) Ensure(ctx context.Context, name, email, phone string) (*domain.Customer, error) {
	customer, err := s.repo.GetCustomer(ctx, email)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, registry.ErrCustomerNotFound) {
		s.logger.Error("Ensure: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Ensure - repository error: %v", ErrInternal, err)
	}

	customer, err = s.repo.AddCustomer(ctx, &domain.Customer{
		ID:    s.ids.NewID(),
		Name:  strings.TrimSpace(name),
		Email: email,
		Phone: strings.TrimSpace(phone),
	})
	switch {
	case err == nil:
		s.logger.Info("Ensure: created customer id=%s for email=%s", customer.ID, customer.Email)
		return customer, nil
	case errors.Is(err, registry.ErrCustomerAlreadyExists):
		// клиента успели создать параллельно
		return s.repo.GetCustomer(ctx, email)
	default:
		s.logger.Error("Ensure: failed to create customer for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Ensure - repository error: %v", ErrInternal, err)
	}
}

// Update частично обновляет клиента
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateCustomerRequest) (*models.CustomerResponse, error) {
	s.logger.Info("Update: updating customer id=%s", id)

	if req.IsEmpty() {
		s.logger.Warn("Update: empty patch for customer id=%s", id)
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if req.Name != nil {
		if err := validateName(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Email != nil && !domain.IsValidEmail(*req.Email) {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if req.Phone != nil && !domain.IsValidPhone(*req.Phone) {
		return nil, fmt.Errorf("%w: invalid phone", ErrInvalidInput)
	}

	customer, err := s.repo.UpdateCustomer(ctx, id, req.ToDomainPatch())
	if err != nil {
		switch {
		case errors.Is(err, registry.ErrCustomerNotFound):
			s.logger.Warn("Update: customer id=%s not found", id)
			return nil, ErrCustomerNotFound
		case errors.Is(err, registry.ErrCustomerAlreadyExists):
			s.logger.Warn("Update: email already taken, customer id=%s", id)
			return nil, ErrCustomerAlreadyExists
		case errors.Is(err, registry.ErrInvalidCustomer):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			s.logger.Error("Update: repository error for customer id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Update: successfully updated customer id=%s", id)
	return models.FromDomainCustomer(customer), nil
}

// GetSummary получает клиента по email вместе с его бронированиями и статистикой
func (s *Service) GetSummary(ctx context.Context, email string) (*models.CustomerSummaryResponse, error) {
	s.logger.Info("GetSummary: fetching customer email=%s", email)

	summary, err := s.repo.CustomerSummary(ctx, email)
	if err != nil {
		if errors.Is(err, registry.ErrCustomerNotFound) {
			s.logger.Warn("GetSummary: customer email=%s not found", email)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("GetSummary: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: GetSummary - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSummary: customer email=%s has %d bookings", email, summary.TotalBookings)
	return models.FromDomainSummary(summary), nil
}

// Search ищет клиентов по подстроке имени или email без учета регистра либо по подстроке телефона
// Пустой запрос возвращает всех клиентов
func (s *Service) Search(ctx context.Context, query string) (*models.CustomerListResponse, error) {
	s.logger.Info("Search: query=%q", query)

	customers, err := s.repo.ListCustomers(ctx)
	if err != nil {
		s.logger.Error("Search: repository error: %v", err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return models.FromDomainCustomerList(customers), nil
	}

	needle := strings.ToLower(query)
	matched := make([]*domain.Customer, 0, len(customers))
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.Name), needle) ||
			strings.Contains(strings.ToLower(c.Email), needle) ||
			strings.Contains(c.Phone, query) {
			matched = append(matched, c)
		}
	}

	s.logger.Info("Search: found %d customers", len(matched))
	return models.FromDomainCustomerList(matched), nil
}

func validateContact(name, email, phone string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if !domain.IsValidEmail(email) {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if !domain.IsValidPhone(phone) {
		return fmt.Errorf("%w: invalid phone", ErrInvalidInput)
	}
	return nil
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if len(name) < domain.MinCustomerName || len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name length must be %d..%d", ErrInvalidInput, domain.MinCustomerName, domain.MaxNameLength)
	}
	return nil
}
