package health

import "errors"

// Sentinel errors for the health package.
var (
	// ErrGatewayNotReady is returned while the session has no live
	// gateway connection.
	ErrGatewayNotReady = errors.New("health: gateway not ready")

	// ErrHeartbeatStale is returned when the gateway connection exists
	// but heartbeat acks have stopped arriving.
	ErrHeartbeatStale = errors.New("health: heartbeat stale")
)
