package distance

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/katalvlaran/geotour/geo"
)

// Command runs an external program per leg:
//
//	Path Args... lat1 lon1 lat2 lon2
//
// and parses its trimmed standard output as the distance.
type Command struct {
	Path string
	Args []string
}

// Distance runs the program once. A non-zero exit, a context cancellation or
// non-numeric output yields *UnavailableError.
func (c Command) Distance(ctx context.Context, a, b geo.Location) (float64, error) {
	args := make([]string, 0, len(c.Args)+4)
	args = append(args, c.Args...)
	args = append(args,
		formatCoord(a.Latitude), formatCoord(a.Longitude),
		formatCoord(b.Latitude), formatCoord(b.Longitude),
	)

	out, err := exec.CommandContext(ctx, c.Path, args...).Output()
	if err != nil {
		return 0, Wrap(a, b, err)
	}
	text := strings.TrimSpace(string(out))
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, Wrap(a, b, fmt.Errorf("%w: %q", ErrBadResponse, text))
	}
	if err = checkLeg(v); err != nil {
		return 0, Wrap(a, b, err)
	}

	return v, nil
}
