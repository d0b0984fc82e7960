package drift

import (
	"time"

	"github.com/beevik/ntp"
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

// NTPClient abstracts the NTP query interface so tests can substitute a
// mock implementation.
type NTPClient interface {
	QueryWithOptions(host string, options ntp.QueryOptions) (*ntp.Response, error)
}

// DefaultNTPClient queries real servers via beevik/ntp.
type DefaultNTPClient struct{}

func (c *DefaultNTPClient) QueryWithOptions(host string, options ntp.QueryOptions) (*ntp.Response, error) {
	return ntp.QueryWithOptions(host, options)
}

// maxRTT rejects responses whose round trip took too long to say anything
// precise about the offset.
const maxRTT = 2 * time.Second

// Probe asks an NTP server how far off the local wall clock is. It exists
// to corroborate a Tracker observation: when the tracker reports drift AND
// the NTP offset moved by about the same amount, the wall clock was
// adjusted; when the tracker reports drift but NTP says the wall clock is
// fine, the monotonic source itself is suspect.
type Probe struct {
	server  string
	timeout time.Duration
	client  NTPClient
}

// NewProbe builds a probe for the given server. A nil client selects the
// real network implementation.
func NewProbe(server string, timeout time.Duration, client NTPClient) *Probe {
	if client == nil {
		client = &DefaultNTPClient{}
	}
	return &Probe{server: server, timeout: timeout, client: client}
}

// Offset returns the NTP-reported offset of the local wall clock: positive
// when the local clock is behind the server. The response is validated
// before its offset is believed.
func (p *Probe) Offset() (time.Duration, error) {
	response, err := p.client.QueryWithOptions(p.server, ntp.QueryOptions{Timeout: p.timeout})
	if err != nil {
		return 0, oops.Wrapf(err, "querying NTP server %s", p.server)
	}
	if err := validateResponse(p.server, response); err != nil {
		return 0, err
	}

	log.WithFields(logger.Fields{
		"server":  p.server,
		"offset":  response.ClockOffset,
		"stratum": response.Stratum,
		"rtt":     response.RTT,
	}).Debug("NTP probe completed")
	return response.ClockOffset, nil
}

// Server returns the configured NTP host.
func (p *Probe) Server() string {
	return p.server
}

// validateResponse rejects responses that cannot be trusted as a time
// reference. Unlike a time synchronizer this deliberately does NOT bound
// the clock offset itself; a large offset is exactly what the probe is
// here to report.
func validateResponse(server string, response *ntp.Response) error {
	if response.Leap == ntp.LeapNotInSync {
		return oops.Errorf("NTP server %s reports its clock is not synchronized", server)
	}
	if response.Stratum == 0 || response.Stratum > 15 {
		return oops.Errorf("NTP server %s stratum %d out of valid range", server, response.Stratum)
	}
	if response.Time.IsZero() {
		return oops.Errorf("NTP server %s returned zero time", server)
	}
	if response.RTT < 0 || response.RTT > maxRTT {
		return oops.Errorf("NTP server %s round trip %v out of bounds", server, response.RTT)
	}
	return nil
}
