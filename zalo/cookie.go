package zalo

import (
	"bytes"
	"encoding/json"
	"errors"
	"sort"
	"strings"
)

type CookieKind int

const (
	// CookieRaw is a ready "name=value; name2=value2" header string.
	CookieRaw CookieKind = iota
	// CookiePairs is a list of name/value pairs as exported by browser extensions.
	CookiePairs
	// CookieWrapped is an object holding the pair list under "cookies".
	CookieWrapped
)

type CookiePair struct {
	Name  string
	Value string
}

// Cookie is the session cookie in whichever shape the client supplied it.
type Cookie struct {
	Kind  CookieKind
	Raw   string
	Pairs []CookiePair
}

var ErrInvalidCookie = errors.New("invalid cookie")

// pair accepts both name/value and key/val spellings.
type pair struct {
	Name  *string `json:"name"`
	Key   *string `json:"key"`
	Value *string `json:"value"`
	Val   *string `json:"val"`
}

func (p pair) toPair() CookiePair {
	var cp CookiePair
	switch {
	case p.Name != nil:
		cp.Name = *p.Name
	case p.Key != nil:
		cp.Name = *p.Key
	}
	switch {
	case p.Value != nil:
		cp.Value = *p.Value
	case p.Val != nil:
		cp.Value = *p.Val
	}
	return cp
}

// ParseCookie recognizes a JSON string, a JSON array of pairs, an object with a
// "cookies" array, or a flat name to value object. A string that itself holds JSON
// is unwrapped.
func ParseCookie(data json.RawMessage) (Cookie, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return Cookie{Kind: CookieRaw}, nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return Cookie{}, ErrInvalidCookie
		}
		return ParseCookieString(s), nil
	case '[':
		pairs, err := parsePairs(data)
		if err != nil {
			return Cookie{}, err
		}
		return Cookie{Kind: CookiePairs, Pairs: pairs}, nil
	case '{':
		var wrapped struct {
			Cookies json.RawMessage `json:"cookies"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return Cookie{}, ErrInvalidCookie
		}
		if len(wrapped.Cookies) > 0 {
			pairs, err := parsePairs(wrapped.Cookies)
			if err != nil {
				return Cookie{}, err
			}
			return Cookie{Kind: CookieWrapped, Pairs: pairs}, nil
		}
		var flat map[string]string
		if err := json.Unmarshal(data, &flat); err != nil {
			return Cookie{}, ErrInvalidCookie
		}
		names := make([]string, 0, len(flat))
		for name := range flat {
			names = append(names, name)
		}
		sort.Strings(names)
		pairs := make([]CookiePair, 0, len(names))
		for _, name := range names {
			pairs = append(pairs, CookiePair{Name: name, Value: flat[name]})
		}
		return Cookie{Kind: CookiePairs, Pairs: pairs}, nil
	}

	return Cookie{}, ErrInvalidCookie
}

// ParseCookieString treats s as a raw header unless it is JSON.
func ParseCookieString(s string) Cookie {
	trimmed := strings.TrimSpace(s)
	if strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{") {
		if c, err := ParseCookie(json.RawMessage(trimmed)); err == nil {
			return c
		}
	}
	return Cookie{Kind: CookieRaw, Raw: trimmed}
}

func parsePairs(data json.RawMessage) ([]CookiePair, error) {
	var raw []pair
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, ErrInvalidCookie
	}
	pairs := make([]CookiePair, 0, len(raw))
	for _, p := range raw {
		pairs = append(pairs, p.toPair())
	}
	return pairs, nil
}

// Normalize renders the canonical raw header form.
func (c Cookie) Normalize() string {
	if c.Kind == CookieRaw {
		return strings.TrimSpace(c.Raw)
	}
	parts := make([]string, 0, len(c.Pairs))
	for _, p := range c.Pairs {
		if strings.TrimSpace(p.Name) == "" {
			continue
		}
		parts = append(parts, p.Name+"="+p.Value)
	}
	return strings.Join(parts, "; ")
}

// NormalizeCookie parses any accepted shape and returns the raw header form.
func NormalizeCookie(data json.RawMessage) (string, error) {
	c, err := ParseCookie(data)
	if err != nil {
		return "", err
	}
	return c.Normalize(), nil
}
