package middlewares

import (
	"dermref-service/internal/app/config"
	"dermref-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log              *zap.Logger
	DoctorRepository contracts.DoctorRepository
	InternalConfig   *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, doctorRepository contracts.DoctorRepository, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:              logger,
		DoctorRepository: doctorRepository,
		InternalConfig:   internalConfig,
	}
}
