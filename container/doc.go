// Package container is a small service container with service providers.
//
// Services are registered under string keys with a factory (Bind, Singleton)
// or as a ready value (Instance), and resolved with Make, Get or the generic
// Resolve helper.
//
//	c := container.New()
//	c.Instance("config", cfg)
//	c.Singleton("logger", func(c *container.Container) any {
//	    return logger.FromConfig(container.Resolve[*config.Config](c, "config"))
//	})
//	log := container.Resolve[*slog.Logger](c, "logger")
//
// Providers group registrations. Register must not resolve other services;
// Boot runs after all providers are registered and may.
//
//	reg := container.NewProviderRegistry(c)
//	reg.Register(&providers.ConfigServiceProvider{})
//	reg.Boot()
package container
