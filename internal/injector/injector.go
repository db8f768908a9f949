//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/fishtank/internal/aquarium"
	"github.com/zeusync/fishtank/internal/core/events/bus"
	"github.com/zeusync/fishtank/internal/core/observability/log"
)

var engineSet = wire.NewSet(log.Provide, bus.New, aquarium.NewEngine)

func InitializeEngine(opts aquarium.Options) (*aquarium.Engine, error) {
	wire.Build(engineSet)
	return nil, nil
}
