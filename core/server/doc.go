// Package server wraps http.Server with graceful shutdown and
// environment-driven configuration.
//
// The zero-fuss path is the package-level Run:
//
//	err := server.Run(ctx, ":8080", bridge.New(a))
//
// For coordinated lifecycles, build a Server and hand its Run closure to
// an errgroup:
//
//	srv := server.New(cfg.Addr, server.WithLogger(log))
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, handler))
//	err := g.Wait()
//
// Configuration can come from the environment through Config and the
// core/config loader; NewFromConfig turns a Config into a Server.
package server
