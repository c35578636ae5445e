package service

import (
	"context"
	"fmt"
	"kasaglow/infras/otel"
	"kasaglow/internal/domains/catalog/model"
	"kasaglow/internal/domains/catalog/model/dto"
	"kasaglow/internal/domains/catalog/repository"
	"kasaglow/shared/constant"
	"kasaglow/shared/failure"

	"github.com/rs/zerolog/log"
)

type Catalog interface {
	GetAll(ctx context.Context) (dto.GetServicesResponse, error)
	Get(ctx context.Context, id int) (dto.ServiceResponse, error)
	Lookup(ctx context.Context, id int) (model.Service, error)
}

type serviceImpl struct {
	repo repository.Catalog
	otel otel.Otel
}

func New(repo repository.Catalog, otel otel.Otel) Catalog {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetServicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Catalog.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get services")

		return res, fmt.Errorf("failed to get services: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.ServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Catalog.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	svc, err := s.Lookup(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(svc)

	return res, nil
}

// Lookup returns the catalog entry or a not-found failure.
func (s *serviceImpl) Lookup(ctx context.Context, id int) (model.Service, error) {
	svc, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Int("service_id", id).Msg("failed to get service")

		return model.Service{}, fmt.Errorf("failed to get service: %w", err)
	}

	if svc.IsZero() {
		return model.Service{}, failure.NotFound("service not found") // nolint:wrapcheck
	}

	return svc, nil
}
