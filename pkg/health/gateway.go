package health

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
)

// maxHeartbeatGap is how long the session may go without a heartbeat
// ack before readiness fails. Discord acks roughly every 41 seconds.
const maxHeartbeatGap = 5 * time.Minute

// GatewayCheck returns a readiness check that passes while the Discord
// session holds a live gateway connection.
//
// Example:
//
//	health.NewServer(":8081", health.Checks{
//	    "gateway": health.GatewayCheck(session),
//	})
func GatewayCheck(s *discordgo.Session) CheckFunc {
	return func(ctx context.Context) error {
		if s == nil || !s.DataReady {
			return ErrGatewayNotReady
		}
		if ack := s.LastHeartbeatAck; !ack.IsZero() && time.Since(ack) > maxHeartbeatGap {
			return errors.Join(ErrHeartbeatStale, fmt.Errorf("last ack %s ago", time.Since(ack).Round(time.Second)))
		}
		return nil
	}
}
