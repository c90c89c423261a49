package fields

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MovieRuntime is a movie's runtime in minutes. RuntimeUnknown marks
// metadata the upstream source could not provide.
type MovieRuntime int32

const RuntimeUnknown MovieRuntime = -1

// ParseMovieRuntime parses runtime strings as delivered by metadata
// feeds, e.g. "144 min". Anything without a leading numeric token
// resolves to RuntimeUnknown instead of failing the caller.
func ParseMovieRuntime(s string) MovieRuntime {
	token, _, _ := strings.Cut(strings.TrimSpace(s), " ")
	n, err := strconv.Atoi(token)
	if err != nil || n < 0 {
		return RuntimeUnknown
	}
	return MovieRuntime(n)
}

func (m MovieRuntime) MarshalJSON() ([]byte, error) {
	if m == RuntimeUnknown {
		return []byte(strconv.Quote("unknown")), nil
	}
	return []byte(strconv.Quote(fmt.Sprintf("%d min", m))), nil
}

func (m *MovieRuntime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		*m = ParseMovieRuntime(s)
		return nil
	}
	n, err := strconv.Atoi(string(data))
	if err != nil {
		*m = RuntimeUnknown
		return nil
	}
	*m = MovieRuntime(n)
	return nil
}

// ReleasedDate is a release date as milliseconds since the epoch.
type ReleasedDate int64

const ReleasedUnknown ReleasedDate = -1

const releasedLayout = "02 Jan 2006"

// ParseReleasedDate parses dates in the fixed day-month(abbrev)-year
// format metadata feeds use, e.g. "21 Apr 2017". Unparsable input
// resolves to ReleasedUnknown.
func ParseReleasedDate(s string) ReleasedDate {
	t, err := time.Parse(releasedLayout, strings.TrimSpace(s))
	if err != nil {
		return ReleasedUnknown
	}
	return ReleasedDate(t.UnixMilli())
}

func (d ReleasedDate) String() string {
	if d == ReleasedUnknown {
		return "unknown"
	}
	return time.UnixMilli(int64(d)).UTC().Format(releasedLayout)
}
