// internal/payload/vcard.go
package payload

import (
	"strings"
	"time"
)

// VCard represents a contact in the vCard 3.0 format.
//
// Name holds the structured N value with semicolon-separated components
// (family name first). When DisplayName is empty the FN property is derived
// from Name by replacing the structural separators with spaces.
type VCard struct {
	Name        string     `json:"name,omitempty"`
	DisplayName string     `json:"display_name,omitempty"`
	Org         string     `json:"org,omitempty"`
	Email       []string   `json:"email,omitempty"`
	Phone       []string   `json:"phone,omitempty"`
	URL         []string   `json:"url,omitempty"`
	Title       []string   `json:"title,omitempty"`
	Nickname    string     `json:"nickname,omitempty"`
	POBox       string     `json:"pobox,omitempty"`
	Extended    string     `json:"extended,omitempty"`
	Street      string     `json:"street,omitempty"`
	City        string     `json:"city,omitempty"`
	Region      string     `json:"region,omitempty"`
	Zipcode     string     `json:"zipcode,omitempty"`
	Country     string     `json:"country,omitempty"`
	Birthday    *time.Time `json:"birthday,omitempty"`
	Memo        string     `json:"memo,omitempty"`
}

// Data builds the CRLF-terminated vCard 3.0 text. Multi-valued properties
// repeat the property line once per value, in input order.
func (c *VCard) Data() string {
	var b strings.Builder
	writeVCardLine(&b, "BEGIN", "VCARD")
	writeVCardLine(&b, "VERSION", "3.0")
	writeVCardLine(&b, "N", c.Name)
	writeVCardLine(&b, "FN", c.displayName())
	writeVCardLine(&b, "ORG", escapeText(c.Org))
	for _, email := range c.Email {
		writeVCardLine(&b, "EMAIL", email)
	}
	for _, phone := range c.Phone {
		writeVCardLine(&b, "TEL", phone)
	}
	for _, u := range c.URL {
		writeVCardLine(&b, "URL", u)
	}
	for _, title := range c.Title {
		writeVCardLine(&b, "TITLE", escapeText(title))
	}
	writeVCardLine(&b, "NICKNAME", escapeText(c.Nickname))
	b.WriteString(c.addressLine())
	if c.Birthday != nil {
		writeVCardLine(&b, "BDAY", c.Birthday.Format("2006-01-02"))
	}
	writeVCardLine(&b, "NOTE", escapeText(c.Memo))
	writeVCardLine(&b, "END", "VCARD")
	return b.String()
}

func (c *VCard) displayName() string {
	if c.DisplayName != "" {
		return escapeText(c.DisplayName)
	}
	// Derive FN from the structured name by turning separators into spaces.
	name := strings.ReplaceAll(c.Name, ";", " ")
	name = strings.ReplaceAll(name, ",", " ")
	return strings.Join(strings.Fields(name), " ")
}

// addressLine builds the 7-component ADR property
// (pobox;extended;street;city;region;zipcode;country).
func (c *VCard) addressLine() string {
	components := []string{c.POBox, c.Extended, c.Street, c.City, c.Region, c.Zipcode, c.Country}
	empty := true
	for i, component := range components {
		if component != "" {
			empty = false
		}
		components[i] = escapeText(component)
	}
	if empty {
		return ""
	}
	return "ADR:" + strings.Join(components, ";") + "\r\n"
}

func writeVCardLine(b *strings.Builder, property, value string) {
	if value == "" {
		return
	}
	b.WriteString(property)
	b.WriteString(":")
	b.WriteString(value)
	b.WriteString("\r\n")
}
