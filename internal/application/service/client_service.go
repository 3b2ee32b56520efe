package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/alkbooks/invoicing-api/internal/domain/entity"
	"github.com/alkbooks/invoicing-api/internal/domain/repository"
	"github.com/alkbooks/invoicing-api/pkg/apperror"
)

// ClientService handles client lookup and CRUD
type ClientService struct {
	clientRepo  repository.ClientRepository
	companyRepo repository.CompanyRepository
}

func NewClientService(clientRepo repository.ClientRepository, companyRepo repository.CompanyRepository) *ClientService {
	return &ClientService{
		clientRepo:  clientRepo,
		companyRepo: companyRepo,
	}
}

// MatchByName finds a client whose party name contains, or is contained in,
// the given name, case-insensitively. First match in list order wins. This
// is a heuristic, not identity resolution: "Smith" matches both "Smith & Co"
// and "John Smith", and the earlier record is chosen.
func (s *ClientService) MatchByName(ctx context.Context, name string) (*entity.Client, error) {
	clients, err := s.clientRepo.List(ctx, "created_at asc")
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(name))
	for i := range clients {
		have := strings.ToLower(clients[i].PartyName)
		if strings.Contains(have, needle) || strings.Contains(needle, have) {
			return &clients[i], nil
		}
	}
	return nil, nil
}

// FindOrCreateByName resolves an imported customer name to a client,
// creating one when no existing party matches. State fields default from
// the company profile when one is configured.
func (s *ClientService) FindOrCreateByName(ctx context.Context, name string) (*entity.Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.NewBadRequestError("Client name is required")
	}

	match, err := s.MatchByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if match != nil {
		return match, nil
	}

	client := &entity.Client{PartyName: name}
	company, err := s.companyRepo.GetDefault(ctx)
	if err != nil {
		return nil, err
	}
	if company != nil {
		client.StateName = company.StateName
		client.StateCode = company.StateCode
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// ListClients lists all clients
func (s *ClientService) ListClients(ctx context.Context) ([]entity.Client, error) {
	return s.clientRepo.List(ctx, "party_name asc")
}

// GetClient retrieves a client by ID
func (s *ClientService) GetClient(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}
	return client, nil
}

// CreateClientInput represents the create client input
type CreateClientInput struct {
	PartyName string
	Address   string
	GSTIN     string
	StateName string
	StateCode string
	Email     string
	Phone     string
}

// CreateClient creates a new client
func (s *ClientService) CreateClient(ctx context.Context, input *CreateClientInput) (*entity.Client, error) {
	if strings.TrimSpace(input.PartyName) == "" {
		return nil, apperror.NewBadRequestError("Party name is required")
	}

	client := &entity.Client{
		PartyName: strings.TrimSpace(input.PartyName),
		Address:   input.Address,
		GSTIN:     input.GSTIN,
		StateName: input.StateName,
		StateCode: input.StateCode,
		Email:     input.Email,
		Phone:     input.Phone,
	}
	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// UpdateClientInput represents the update client input
type UpdateClientInput struct {
	PartyName *string
	Address   *string
	GSTIN     *string
	StateName *string
	StateCode *string
	Email     *string
	Phone     *string
}

// UpdateClient updates a client
func (s *ClientService) UpdateClient(ctx context.Context, id uuid.UUID, input *UpdateClientInput) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	if input.PartyName != nil {
		client.PartyName = *input.PartyName
	}
	if input.Address != nil {
		client.Address = *input.Address
	}
	if input.GSTIN != nil {
		client.GSTIN = *input.GSTIN
	}
	if input.StateName != nil {
		client.StateName = *input.StateName
	}
	if input.StateCode != nil {
		client.StateCode = *input.StateCode
	}
	if input.Email != nil {
		client.Email = *input.Email
	}
	if input.Phone != nil {
		client.Phone = *input.Phone
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// DeleteClient deletes a client
func (s *ClientService) DeleteClient(ctx context.Context, id uuid.UUID) error {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if client == nil {
		return apperror.NewNotFoundError("Client")
	}
	return s.clientRepo.Delete(ctx, id)
}
