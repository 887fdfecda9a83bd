package mongokit

import (
	"net"
	"net/url"
	"strconv"
)

// buildURI assembles a canonical mongodb:// connection URI from the config.
// Credentials are included when either half is set; the missing half is
// substituted with the empty string so that partially configured credentials
// are still presented to the server.
func buildURI(cfg Config) string {
	uri := &url.URL{
		Scheme: "mongodb",
		Host:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:   "/" + url.PathEscape(cfg.Database),
	}

	if cfg.hasCredentials() {
		uri.User = url.UserPassword(cfg.User, cfg.Password)
	}

	return uri.String()
}
