// Package useragent classifies User-Agent strings into coarse browser and
// OS labels for the diagnostic endpoint. Pure substring matching; rule
// order is significant.
package useragent

import "strings"

type rule struct {
	label string
	match func(ua string) bool
}

func contains(sub string) func(string) bool {
	return func(ua string) bool { return strings.Contains(ua, sub) }
}

func anyOf(subs ...string) func(string) bool {
	return func(ua string) bool {
		for _, s := range subs {
			if strings.Contains(ua, s) {
				return true
			}
		}
		return false
	}
}

// Chromium-based agents advertise Safari, and Edge advertises Chrome, so
// the exclusion rules come first.
var browserRules = []rule{
	{"Chrome", func(ua string) bool {
		return strings.Contains(ua, "Chrome") && !strings.Contains(ua, "Edg")
	}},
	{"Safari", func(ua string) bool {
		return strings.Contains(ua, "Safari") && !strings.Contains(ua, "Chrome")
	}},
	{"Firefox", contains("Firefox")},
	{"Edge", contains("Edg")},
	{"Internet Explorer", anyOf("MSIE", "Trident")},
	{"Opera", anyOf("Opera", "OPR")},
}

// Mobile OS markers outrank the desktop ones: Android agents mention Linux
// and iOS agents mention Mac.
var osRules = []rule{
	{"Android", contains("Android")},
	{"iOS", anyOf("iOS", "iPhone", "iPad")},
	{"Windows", contains("Win")},
	{"macOS", contains("Mac")},
	{"Linux", contains("Linux")},
}

func classify(rules []rule, ua string) string {
	if ua == "" {
		return "Unknown"
	}
	for _, r := range rules {
		if r.match(ua) {
			return r.label
		}
	}
	return "Other"
}

// Browser returns the browser label for a User-Agent string.
func Browser(ua string) string { return classify(browserRules, ua) }

// OS returns the operating system label for a User-Agent string.
func OS(ua string) string { return classify(osRules, ua) }
