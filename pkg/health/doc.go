// Package health exposes liveness and readiness probes for a bot process.
//
// A bot with no HTTP surface still gets deployed behind orchestrators
// that want probe endpoints. This package runs named checks in parallel
// and serves the results on a small dedicated listener, compatible with
// Docker, Kubernetes, and 3rd-party monitors.
//
// # Checks
//
// A check is any func(context.Context) error. The redis and tasks
// packages ship matching closures; [GatewayCheck] covers the Discord
// session itself:
//
//	checks := health.Checks{
//	    "gateway": health.GatewayCheck(session),
//	    "redis":   redis.Healthcheck(client),
//	    "tasks":   tasks.Healthcheck(runner),
//	}
//
// # Probe server
//
// [NewServer] mounts the two endpoints on their own listener:
//
//	probe := health.NewServer(":8081", checks, health.WithLogger(log))
//	if err := probe.Start(ctx); err != nil { ... }
//	defer probe.Stop(shutdownCtx)
//
//	GET /health/live   process liveness, always OK
//	GET /health/ready  runs the checks, 503 when any fails
//
// [LivenessHandler] and [ReadinessHandler] are plain http.HandlerFuncs
// for mounting on an existing router instead.
//
// # Response Formats
//
// By default, handlers respond with plain text for compatibility with probes.
// Request JSON by setting Accept: application/json header or ?format=json:
//
//	curl http://localhost:8081/health/ready?format=json
//
// Plain text responses:
//   - 200 OK: "OK"
//   - 503 Service Unavailable: "Service Unavailable"
//
// JSON response structure:
//
//	{
//	  "status": "unhealthy",
//	  "checks": {
//	    "gateway": {"status": "healthy"},
//	    "redis":   {"status": "unhealthy", "error": "connection refused"}
//	  }
//	}
//
// # Kubernetes Configuration
//
// Example probe configuration:
//
//	livenessProbe:
//	  httpGet:
//	    path: /health/live
//	    port: 8081
//	  initialDelaySeconds: 5
//	  periodSeconds: 10
//
//	readinessProbe:
//	  httpGet:
//	    path: /health/ready
//	    port: 8081
//	  initialDelaySeconds: 5
//	  periodSeconds: 10
package health
