package payload

import (
	"encoding/json"
	"testing"
)

func TestWifiConfigData(t *testing.T) {
	tests := []struct {
		name string
		conf WifiConfig
		want string
	}{
		{
			"wpa",
			WifiConfig{SSID: "my-wifi", Authentication: AuthWPA, Password: "wifi-password"},
			"WIFI:S:my-wifi;T:WPA;P:wifi-password;;",
		},
		{
			"wep",
			WifiConfig{SSID: "my-wifi", Authentication: AuthWEP, Password: "s3cret"},
			"WIFI:S:my-wifi;T:WEP;P:s3cret;;",
		},
		{
			"nopass drops password",
			WifiConfig{SSID: "open-net", Authentication: AuthNopass, Password: "ignored"},
			"WIFI:S:open-net;T:nopass;;",
		},
		{
			"hidden",
			WifiConfig{SSID: "my-wifi", Authentication: AuthWPA, Password: "pw", Hidden: true},
			"WIFI:S:my-wifi;T:WPA;P:pw;H:true;;",
		},
		{
			"escaped ssid and password",
			WifiConfig{SSID: `"foo;bar\baz"`, Authentication: AuthWPA, Password: "a:b"},
			`WIFI:S:\"foo\;bar\\baz\";T:WPA;P:a\:b;;`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.conf.Data(); got != tt.want {
				t.Errorf("Data() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAuthenticationUnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want Authentication
	}{
		{`"WPA"`, AuthWPA},
		{`"wpa"`, AuthWPA},
		{`"Wep"`, AuthWEP},
		{`"nopass"`, AuthNopass},
		{`"somethingelse"`, AuthNopass},
		{`""`, AuthNopass},
	}
	for _, tt := range tests {
		var a Authentication
		if err := json.Unmarshal([]byte(tt.in), &a); err != nil {
			t.Fatalf("Unmarshal(%s): %v", tt.in, err)
		}
		if a != tt.want {
			t.Errorf("Unmarshal(%s) = %v, want %v", tt.in, a, tt.want)
		}
	}
}

func TestAuthenticationMarshalJSON(t *testing.T) {
	got, err := json.Marshal(AuthWPA)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `"WPA"` {
		t.Errorf("Marshal(AuthWPA) = %s, want %q", got, `"WPA"`)
	}
}
