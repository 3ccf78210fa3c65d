// Package route matches wizard paths such as /campaigns/42/create against
// patterns with named segments and exposes the captured parameters.
package route

import (
	"strconv"
	"strings"
)

// CampaignCreate is the path the campaign creation wizard is opened at.
const CampaignCreate = "/campaigns/:id/create"

// Params holds named path segments captured by Match.
type Params map[string]string

// Get returns the captured value for name, or "" if absent.
func (p Params) Get(name string) string {
	if p == nil {
		return ""
	}
	return p[name]
}

// Int returns the named parameter as an integer. ok is false when the
// parameter is missing or not a base-10 integer.
func (p Params) Int(name string) (int, bool) {
	v := p.Get(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Match compares path with pattern segment by segment. Pattern segments that
// start with ":" capture the corresponding path segment; all others must be
// equal. Leading and trailing slashes are ignored.
func Match(pattern, path string) (Params, bool) {
	ps := splitPath(pattern)
	xs := splitPath(path)
	if len(ps) != len(xs) {
		return nil, false
	}
	params := Params{}
	for i, seg := range ps {
		if name, ok := strings.CutPrefix(seg, ":"); ok {
			if xs[i] == "" {
				return nil, false
			}
			params[name] = xs[i]
			continue
		}
		if seg != xs[i] {
			return nil, false
		}
	}
	return params, true
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
