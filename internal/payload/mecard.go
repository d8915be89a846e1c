// internal/payload/mecard.go
package payload

import (
	"strings"
	"time"
)

// MeCard represents the detail of a contact in the MeCARD phone-book format.
//
// The address field holds the components divided by commas (PO box, room
// number, house number, city, prefecture, zip code and country, in order);
// those commas are structural, so the address is emitted without escaping.
type MeCard struct {
	FirstName        string     `json:"first_name,omitempty"`
	LastName         string     `json:"last_name,omitempty"`
	FirstNameReading string     `json:"first_name_reading,omitempty"`
	LastNameReading  string     `json:"last_name_reading,omitempty"`
	Tel              string     `json:"tel,omitempty"`
	TelAV            string     `json:"tel_av,omitempty"`
	Email            string     `json:"email,omitempty"`
	Memo             string     `json:"memo,omitempty"`
	Birthday         *time.Time `json:"birthday,omitempty"`
	Address          string     `json:"address,omitempty"`
	URL              string     `json:"url,omitempty"`
	Nickname         string     `json:"nickname,omitempty"`
	Org              string     `json:"org,omitempty"`
}

// Data builds the MeCARD text for configuring a contact in a phone book.
// Empty fields are omitted entirely. The ORG field is not part of the
// standard but is recognized by several readers.
func (c *MeCard) Data() string {
	var b strings.Builder
	b.WriteString("MECARD:")
	writeMecardName(&b, "N", EscapeSpecial(c.LastName), EscapeSpecial(c.FirstName))
	writeMecardName(&b, "SOUND", EscapeSpecial(c.LastNameReading), EscapeSpecial(c.FirstNameReading))
	writeMecardField(&b, "TEL", EscapeSpecial(c.Tel))
	writeMecardField(&b, "TEL-AV", EscapeSpecial(c.TelAV))
	writeMecardField(&b, "EMAIL", EscapeSpecial(c.Email))
	writeMecardField(&b, "NOTE", EscapeSpecial(c.Memo))
	if c.Birthday != nil {
		writeMecardField(&b, "BDAY", c.Birthday.Format("20060102"))
	}
	writeMecardField(&b, "ADR", c.Address)
	writeMecardField(&b, "URL", EscapeSpecial(c.URL))
	writeMecardField(&b, "NICKNAME", EscapeSpecial(c.Nickname))
	writeMecardField(&b, "ORG", EscapeSpecial(c.Org))
	b.WriteString(";")
	return b.String()
}

// writeMecardName joins the last/first components with an unescaped comma
// when both are present, otherwise emits whichever one is set.
func writeMecardName(b *strings.Builder, key, last, first string) {
	var name string
	switch {
	case last != "" && first != "":
		name = last + "," + first
	case last != "":
		name = last
	default:
		name = first
	}
	writeMecardField(b, key, name)
}

func writeMecardField(b *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	b.WriteString(key)
	b.WriteString(":")
	b.WriteString(value)
	b.WriteString(";")
}
