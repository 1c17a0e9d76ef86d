package service

import (
	"context"

	"travlr/internal/models"
	"travlr/internal/repository"
)

// TravellerService handles business logic for the travellers page.
type TravellerService struct {
	repo repository.TravellerRepository
}

// NewTravellerService creates a new TravellerService.
func NewTravellerService(repo repository.TravellerRepository) *TravellerService {
	return &TravellerService{repo: repo}
}

// ListTravellers returns all travellers, soonest tour first.
func (s *TravellerService) ListTravellers(ctx context.Context) ([]models.Traveller, error) {
	return s.repo.FindAll(ctx)
}

// AddTraveller records a new traveller.
func (s *TravellerService) AddTraveller(ctx context.Context, req *models.CreateTravellerRequest) (*models.Traveller, error) {
	traveller := &models.Traveller{
		Name:        req.Name,
		Destination: req.Destination,
		TourDate:    req.TourDate,
	}

	if err := s.repo.Create(ctx, traveller); err != nil {
		return nil, err
	}

	return traveller, nil
}
