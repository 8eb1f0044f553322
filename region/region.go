package region

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRegion is returned when a region identifier is not recognized.
var ErrUnknownRegion = errors.New("unknown region")

// Platform is a platform region: the server cluster a player account lives on.
// The zero value is not a valid platform.
type Platform uint8

const (
	BR1 Platform = iota + 1
	EUN1
	EUW1
	JP1
	KR
	LA1
	LA2
	ME1
	NA1
	OC1
	PH2
	RU
	SG2
	TH2
	TR1
	TW2
	VN2

	platformEnd
)

// Routing is a continental routing region used as the host for cross-realm
// resources such as accounts and matches.
type Routing uint8

const (
	Americas Routing = iota + 1
	Europe
	Asia
	SEA
	Esports

	routingEnd
)

var platformCodes = [...]string{
	BR1:  "br1",
	EUN1: "eun1",
	EUW1: "euw1",
	JP1:  "jp1",
	KR:   "kr",
	LA1:  "la1",
	LA2:  "la2",
	ME1:  "me1",
	NA1:  "na1",
	OC1:  "oc1",
	PH2:  "ph2",
	RU:   "ru",
	SG2:  "sg2",
	TH2:  "th2",
	TR1:  "tr1",
	TW2:  "tw2",
	VN2:  "vn2",
}

var routingCodes = [...]string{
	Americas: "americas",
	Europe:   "europe",
	Asia:     "asia",
	SEA:      "sea",
	Esports:  "esports",
}

// routingTable is the fixed platform to routing mapping. Every platform must
// have exactly one entry; region_test.go enforces it.
var routingTable = [...]Routing{
	BR1:  Americas,
	LA1:  Americas,
	LA2:  Americas,
	NA1:  Americas,
	EUN1: Europe,
	EUW1: Europe,
	ME1:  Europe,
	RU:   Europe,
	TR1:  Europe,
	JP1:  Asia,
	KR:   Asia,
	OC1:  SEA,
	PH2:  SEA,
	SG2:  SEA,
	TH2:  SEA,
	TW2:  SEA,
	VN2:  SEA,
}

// aliases maps the common server names players use to platform regions.
var aliases = map[string]Platform{
	"br":   BR1,
	"eune": EUN1,
	"euw":  EUW1,
	"jp":   JP1,
	"lan":  LA1,
	"las":  LA2,
	"me":   ME1,
	"na":   NA1,
	"oce":  OC1,
	"ph":   PH2,
	"sg":   SG2,
	"th":   TH2,
	"tr":   TR1,
	"tw":   TW2,
	"vn":   VN2,
}

// Platforms returns every platform region in declaration order.
func Platforms() []Platform {
	out := make([]Platform, 0, int(platformEnd)-1)
	for p := BR1; p < platformEnd; p++ {
		out = append(out, p)
	}
	return out
}

// Routings returns every routing region in declaration order.
func Routings() []Routing {
	out := make([]Routing, 0, int(routingEnd)-1)
	for r := Americas; r < routingEnd; r++ {
		out = append(out, r)
	}
	return out
}

// Valid reports whether p is one of the enumerated platform regions.
func (p Platform) Valid() bool {
	return p >= BR1 && p < platformEnd
}

// String returns the lowercase realm code used as the host prefix, e.g. "na1".
func (p Platform) String() string {
	if !p.Valid() {
		return fmt.Sprintf("platform(%d)", uint8(p))
	}
	return platformCodes[p]
}

// Routing resolves p to its continental routing region.
func (p Platform) Routing() Routing {
	if !p.Valid() {
		return 0
	}
	return routingTable[p]
}

// AccountRouting resolves p to the routing region serving account lookups.
// The account service has no SEA cluster, so SEA realms are served by Asia.
func (p Platform) AccountRouting() Routing {
	r := p.Routing()
	if r == SEA {
		return Asia
	}
	return r
}

// MarshalText implements encoding.TextMarshaler.
func (p Platform) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRegion, uint8(p))
	}
	return []byte(platformCodes[p]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Platform) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Valid reports whether r is one of the enumerated routing regions.
func (r Routing) Valid() bool {
	return r >= Americas && r < routingEnd
}

// String returns the lowercase routing code used as the host prefix, e.g. "europe".
func (r Routing) String() string {
	if !r.Valid() {
		return fmt.Sprintf("routing(%d)", uint8(r))
	}
	return routingCodes[r]
}

// Platforms returns the platform regions routed through r.
func (r Routing) Platforms() []Platform {
	var out []Platform
	for _, p := range Platforms() {
		if routingTable[p] == r {
			out = append(out, p)
		}
	}
	return out
}

// MarshalText implements encoding.TextMarshaler.
func (r Routing) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRegion, uint8(r))
	}
	return []byte(routingCodes[r]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Routing) UnmarshalText(text []byte) error {
	v, err := ParseRouting(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Parse converts a case-insensitive realm code ("EUN1", "na1") or common
// server name ("euw", "oce") to a Platform. Unknown input is an error
// wrapping ErrUnknownRegion.
func Parse(text string) (Platform, error) {
	key := strings.ToLower(strings.TrimSpace(text))
	for p := BR1; p < platformEnd; p++ {
		if platformCodes[p] == key {
			return p, nil
		}
	}
	if p, ok := aliases[key]; ok {
		return p, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRegion, text)
}

// MustParse is like Parse but panics on unknown input. It is meant for
// constants and tests.
func MustParse(text string) Platform {
	p, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseRouting converts a case-insensitive routing code to a Routing.
func ParseRouting(text string) (Routing, error) {
	key := strings.ToLower(strings.TrimSpace(text))
	for r := Americas; r < routingEnd; r++ {
		if routingCodes[r] == key {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRegion, text)
}
