package services

import (
	"github.com/go-playground/validator/v10"
	"github.com/sm8ta/motodash/internal/core/domain"
	"github.com/sm8ta/motodash/internal/core/ports"
)

type (
	BikeService        = ResourceService[domain.Bike, *domain.BikeInput]
	FuelService        = ResourceService[domain.FuelEntry, *domain.FuelInput]
	MaintenanceService = ResourceService[domain.MaintenanceEntry, *domain.MaintenanceInput]
	PartService        = ResourceService[domain.Part, *domain.PartInput]
	TourService        = ResourceService[domain.Tour, *domain.TourInput]
)

func NewBikeService(repo ports.Repository[domain.Bike], logger ports.LoggerPort, validate *validator.Validate, cache ports.CachePort) *BikeService {
	return NewResourceService(domain.BikeSchema, repo, logger, validate, cache, func() *domain.BikeInput {
		return &domain.BikeInput{}
	})
}

func NewFuelService(repo ports.Repository[domain.FuelEntry], logger ports.LoggerPort, validate *validator.Validate, cache ports.CachePort) *FuelService {
	return NewResourceService(domain.FuelSchema, repo, logger, validate, cache, func() *domain.FuelInput {
		return &domain.FuelInput{}
	})
}

func NewMaintenanceService(repo ports.Repository[domain.MaintenanceEntry], logger ports.LoggerPort, validate *validator.Validate, cache ports.CachePort) *MaintenanceService {
	return NewResourceService(domain.MaintenanceSchema, repo, logger, validate, cache, func() *domain.MaintenanceInput {
		return &domain.MaintenanceInput{}
	})
}

func NewPartService(repo ports.Repository[domain.Part], logger ports.LoggerPort, validate *validator.Validate, cache ports.CachePort) *PartService {
	return NewResourceService(domain.PartSchema, repo, logger, validate, cache, func() *domain.PartInput {
		return &domain.PartInput{}
	})
}

func NewTourService(repo ports.Repository[domain.Tour], logger ports.LoggerPort, validate *validator.Validate, cache ports.CachePort) *TourService {
	return NewResourceService(domain.TourSchema, repo, logger, validate, cache, func() *domain.TourInput {
		return &domain.TourInput{}
	})
}
