package tui

import "strings"

const coinRoutePrefix = "/coin/"

type route int

const (
	routeListing route = iota
	routeDetail
)

// parseCoinRoute - id монеты из пути "/coin/{id}"
func parseCoinRoute(path string) (string, bool) {
	id, ok := strings.CutPrefix(path, coinRoutePrefix)
	if !ok || id == "" || strings.Contains(id, "/") {
		return "", false
	}
	return id, true
}
