package signalbus

import (
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/db"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/environments"
	"github.com/goava/di"
)

func ConfigProviders() di.Option {
	return di.Provide(environments.Func(ServiceProviders))
}

func ServiceProviders() di.Option {
	return di.Provide(func(dbFactory *db.ConnectionFactory) *PgSignalBus {
		return NewPgSignalBus(NewSignalBus(), dbFactory)
	}, di.As(new(SignalBus)), di.As(new(environments.BootService)))
}
