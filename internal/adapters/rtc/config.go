package rtc

import (
	"github.com/pion/stun/v3"
	"github.com/pion/webrtc/v4"
	"github.com/rs/zerolog/log"
)

// ConfigFromURLs builds the ICE configuration handed to endpoints.
// Malformed STUN/TURN URLs are skipped.
func ConfigFromURLs(urls []string) webrtc.Configuration {
	valid := make([]string, 0, len(urls))
	for _, u := range urls {
		if _, err := stun.ParseURI(u); err != nil {
			log.Warn().Err(err).Str("module", "rtc").Str("url", u).Msg("ignoring ICE server")
			continue
		}
		valid = append(valid, u)
	}
	if len(valid) == 0 {
		return webrtc.Configuration{}
	}
	return webrtc.Configuration{
		ICEServers: []webrtc.ICEServer{{URLs: valid}},
	}
}
