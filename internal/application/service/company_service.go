package service

import (
	"context"
	"strings"

	"github.com/alkbooks/invoicing-api/internal/domain/entity"
	"github.com/alkbooks/invoicing-api/internal/domain/repository"
	"github.com/alkbooks/invoicing-api/pkg/apperror"
)

// CompanyService manages the issuing business profile
type CompanyService struct {
	companyRepo repository.CompanyRepository
}

func NewCompanyService(companyRepo repository.CompanyRepository) *CompanyService {
	return &CompanyService{companyRepo: companyRepo}
}

// GetProfile returns the configured company profile
func (s *CompanyService) GetProfile(ctx context.Context) (*entity.Company, error) {
	company, err := s.companyRepo.GetDefault(ctx)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperror.NewNotFoundError("Company profile")
	}
	return company, nil
}

// UpsertCompanyInput represents the company profile input
type UpsertCompanyInput struct {
	Name        string
	CompanyCode string
	Address     string
	GSTIN       string
	StateName   string
	StateCode   string
	Email       string
	Phone       string
}

// UpsertProfile creates the company profile on first save and overwrites it
// on every save after that. A single profile row backs invoice numbering and
// client state defaults.
func (s *CompanyService) UpsertProfile(ctx context.Context, input *UpsertCompanyInput) (*entity.Company, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperror.NewBadRequestError("Company name is required")
	}
	if strings.TrimSpace(input.CompanyCode) == "" {
		return nil, apperror.NewBadRequestError("Company code is required")
	}

	company, err := s.companyRepo.GetDefault(ctx)
	if err != nil {
		return nil, err
	}

	created := false
	if company == nil {
		company = &entity.Company{}
		created = true
	}

	company.Name = strings.TrimSpace(input.Name)
	company.CompanyCode = strings.TrimSpace(input.CompanyCode)
	company.Address = input.Address
	company.GSTIN = input.GSTIN
	company.StateName = input.StateName
	company.StateCode = input.StateCode
	company.Email = input.Email
	company.Phone = input.Phone

	if created {
		if err := s.companyRepo.Create(ctx, company); err != nil {
			return nil, err
		}
		return company, nil
	}

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}
