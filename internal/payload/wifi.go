// internal/payload/wifi.go
package payload

import (
	"encoding/json"
	"strings"
)

// Authentication is the Wi-Fi authentication kind.
type Authentication int

const (
	AuthNopass Authentication = iota
	AuthWEP
	AuthWPA
)

func (a Authentication) String() string {
	switch a {
	case AuthWEP:
		return "WEP"
	case AuthWPA:
		return "WPA"
	default:
		return "nopass"
	}
}

// UnmarshalJSON accepts the authentication name case-insensitively.
// Unrecognized values degrade to nopass rather than failing the request.
func (a *Authentication) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch strings.ToUpper(name) {
	case "WEP":
		*a = AuthWEP
	case "WPA":
		*a = AuthWPA
	default:
		*a = AuthNopass
	}
	return nil
}

func (a Authentication) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// WifiConfig represents the configuration of a Wi-Fi connection.
type WifiConfig struct {
	SSID           string         `json:"ssid,omitempty"`
	Authentication Authentication `json:"authentication"`
	Password       string         `json:"password,omitempty"`
	Hidden         bool           `json:"hidden,omitempty"`
}

// Data builds the WIFI: configuration text. The syntax is inspired by the
// MeCARD format. The password is omitted when the authentication kind is
// nopass, and H is only emitted for hidden networks.
func (c *WifiConfig) Data() string {
	var b strings.Builder
	b.WriteString("WIFI:")
	writeMecardField(&b, "S", EscapeSpecial(c.SSID))
	writeMecardField(&b, "T", c.Authentication.String())
	if c.Authentication != AuthNopass {
		writeMecardField(&b, "P", EscapeSpecial(c.Password))
	}
	if c.Hidden {
		writeMecardField(&b, "H", "true")
	}
	b.WriteString(";")
	return b.String()
}
