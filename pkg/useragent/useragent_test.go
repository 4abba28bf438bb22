package useragent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	uaChromeWin  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	uaEdgeWin    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 Edg/120.0.0.0"
	uaSafariMac  = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Safari/605.1.15"
	uaSafariiPad = "Mozilla/5.0 (iPad; CPU OS 16_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.6 Mobile/15E148 Safari/604.1"
	uaFirefoxLnx = "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0"
	uaChromeAnd  = "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36"
	uaIE11       = "Mozilla/5.0 (Windows NT 10.0; WOW64; Trident/7.0; rv:11.0) like Gecko"
	uaOpera      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36 OPR/105.0.0.0"
)

func TestBrowser(t *testing.T) {
	tests := []struct {
		ua   string
		want string
	}{
		{uaChromeWin, "Chrome"},
		{uaEdgeWin, "Edge"},
		{uaSafariMac, "Safari"},
		{uaFirefoxLnx, "Firefox"},
		{uaIE11, "Internet Explorer"},
		{"", "Unknown"},
		{"curl/8.4.0", "Other"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Browser(tt.ua), "ua=%q", tt.ua)
	}
}

func TestBrowserOperaAdvertisesChrome(t *testing.T) {
	// OPR agents also carry the Chrome token; the Chrome rule runs first,
	// matching the enumerated rule order.
	assert.Equal(t, "Chrome", Browser(uaOpera))
	assert.Equal(t, "Opera", Browser("Opera/9.80 (Windows NT 6.1) Presto/2.12.388 Version/12.18"))
}

func TestOS(t *testing.T) {
	tests := []struct {
		ua   string
		want string
	}{
		{uaChromeWin, "Windows"},
		{uaSafariMac, "macOS"},
		{uaFirefoxLnx, "Linux"},
		{"", "Unknown"},
		{"curl/8.4.0", "Other"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, OS(tt.ua), "ua=%q", tt.ua)
	}
}

func TestOSMobilePrecedence(t *testing.T) {
	// Android mentions Linux, iPad mentions Mac; mobile markers win.
	assert.Equal(t, "Android", OS(uaChromeAnd))
	assert.Equal(t, "iOS", OS(uaSafariiPad))
}
