package server

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"time"
)

// Configurer transforms the server builder before binding.
// Each configurer is applied exactly once per server construction and must
// return a usable builder; returning its argument unchanged is valid.
// Configurers should be independent of each other's order.
type Configurer interface {
	Configure(b *Builder) *Builder
}

// ConfigurerFunc adapts a function to the Configurer interface.
type ConfigurerFunc func(b *Builder) *Builder

// Configure calls f(b).
func (f ConfigurerFunc) Configure(b *Builder) *Builder {
	return f(b)
}

// ReadTimeout sets the maximum duration for reading the entire request.
func ReadTimeout(d time.Duration) Configurer {
	return ConfigurerFunc(func(b *Builder) *Builder {
		b.Server.ReadTimeout = d
		return b
	})
}

// WriteTimeout sets the maximum duration before timing out writes of the response.
func WriteTimeout(d time.Duration) Configurer {
	return ConfigurerFunc(func(b *Builder) *Builder {
		b.Server.WriteTimeout = d
		return b
	})
}

// IdleTimeout sets the maximum time to wait for the next request on a keep-alive connection.
func IdleTimeout(d time.Duration) Configurer {
	return ConfigurerFunc(func(b *Builder) *Builder {
		b.Server.IdleTimeout = d
		return b
	})
}

// MaxHeaderBytes sets the maximum size of request headers.
func MaxHeaderBytes(n int) Configurer {
	return ConfigurerFunc(func(b *Builder) *Builder {
		b.Server.MaxHeaderBytes = n
		return b
	})
}

// TLS makes the server serve HTTPS with the given configuration.
// Certificates must be present in cfg (Certificates or GetCertificate).
func TLS(cfg *tls.Config) Configurer {
	return ConfigurerFunc(func(b *Builder) *Builder {
		b.Server.TLSConfig = cfg
		return b
	})
}

// Middleware wraps the request pipeline. The first middleware is the outermost.
func Middleware(mw ...func(http.Handler) http.Handler) Configurer {
	return ConfigurerFunc(func(b *Builder) *Builder {
		for i := len(mw) - 1; i >= 0; i-- {
			if mw[i] != nil {
				b.Server.Handler = mw[i](b.Server.Handler)
			}
		}
		return b
	})
}

// BaseContext sets the function providing the base context for incoming requests.
func BaseContext(fn func(net.Listener) context.Context) Configurer {
	return ConfigurerFunc(func(b *Builder) *Builder {
		b.Server.BaseContext = fn
		return b
	})
}

func applyConfigurers(b *Builder, configurers []Configurer) (*Builder, error) {
	for i, c := range configurers {
		if c == nil {
			continue
		}
		b = c.Configure(b)
		if b == nil || b.Server == nil {
			return nil, fmt.Errorf("%w: configurer #%d (%T)", ErrNilBuilder, i, c)
		}
	}
	return b, nil
}
