package provider

import (
	"strconv"
	"strings"
)

// RequestKind is the closed set of operations the facade routes to.
type RequestKind int

const (
	KindUnknown RequestKind = iota
	KindMovieAll
	KindMovieByID
	KindAwardAll
	KindAwardByID
	KindViewAwardAll
)

// Canonical request URIs.
const (
	URIMovies       = "movie"
	URIAwards       = "award"
	URIViewAwardAll = "viewAward/all"
)

func MovieURI(id int) string {
	return URIMovies + "/" + strconv.Itoa(id)
}

func AwardURI(id string) string {
	return URIAwards + "/" + id
}

type route struct {
	pattern string
	kind    RequestKind
}

// The routing table. Patterns are matched in order; "*" captures a
// single id segment, so the literal "all" rows must come first.
var routingTable = []route{
	{"movie", KindMovieAll},
	{"movie/all", KindMovieAll},
	{"movie/*", KindMovieByID},
	{"award", KindAwardAll},
	{"award/all", KindAwardAll},
	{"award/*", KindAwardByID},
	{"viewAward", KindViewAwardAll},
	{"viewAward/all", KindViewAwardAll},
}

// Match resolves a request URI to its kind and, for by-id kinds, the id
// segment. Unknown paths fail with ErrUnrecognizedRequest.
func Match(uri string) (RequestKind, string, error) {
	segments := strings.Split(strings.Trim(uri, "/"), "/")
	for _, route := range routingTable {
		patternSegments := strings.Split(route.pattern, "/")
		if len(patternSegments) != len(segments) {
			continue
		}
		id := ""
		matched := true
		for i, pattern := range patternSegments {
			switch {
			case pattern == "*" && segments[i] != "":
				id = segments[i]
			case pattern != segments[i]:
				matched = false
			}
			if !matched {
				break
			}
		}
		if matched {
			return route.kind, id, nil
		}
	}
	return KindUnknown, "", ErrUnrecognizedRequest
}
