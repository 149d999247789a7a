//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/luyao/tripdeck/internal/bootstrap"
	"github.com/luyao/tripdeck/internal/domain/airports"
	"github.com/luyao/tripdeck/internal/domain/attractions"
	"github.com/luyao/tripdeck/internal/domain/currency"
	"github.com/luyao/tripdeck/internal/domain/flights"
	"github.com/luyao/tripdeck/internal/domain/pricetrack"
	"github.com/luyao/tripdeck/internal/domain/timediff"
	"github.com/luyao/tripdeck/internal/infra/config"
	"github.com/luyao/tripdeck/internal/infra/geocode/nominatim"
	"github.com/luyao/tripdeck/internal/infra/travelapi"
	"github.com/luyao/tripdeck/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideTravelAPIClient,
		provideGeocoder,
		provideFlightsConfig,
		provideTrackingConfig,
		provideAttractionsConfig,
		flights.NewService,
		pricetrack.NewService,
		currency.NewService,
		timediff.NewService,
		attractions.NewService,
		airports.NewService,
		wire.Bind(new(flights.API), new(*travelapi.Client)),
		wire.Bind(new(pricetrack.API), new(*travelapi.Client)),
		wire.Bind(new(currency.API), new(*travelapi.Client)),
		wire.Bind(new(timediff.API), new(*travelapi.Client)),
		wire.Bind(new(attractions.API), new(*travelapi.Client)),
		wire.Bind(new(airports.API), new(*travelapi.Client)),
		wire.Bind(new(attractions.Geocoder), new(*nominatim.Client)),
		provideServices,
		provideModel,
		bootstrap.NewApp,
	)
	return nil, nil
}
