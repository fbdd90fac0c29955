package tsplib

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/woozymasta/ctok/internal/apperr"
	"github.com/woozymasta/ctok/internal/tour"
)

// ParseCycle reads a cycle file: one line per tour position, each holding
// one or more space separated integers. Only the last integer of a line is
// kept, as a zero-based index; line order is tour order.
func ParseCycle(r io.Reader) (tour.Tour, error) {
	sc := bufio.NewScanner(r)
	t := tour.Tour{}
	line := 0

	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			return nil, apperr.Formatf("cycle line %d is empty", line)
		}

		last := fields[len(fields)-1]
		idx, err := strconv.Atoi(last)
		if err != nil {
			return nil, apperr.Wrapf(err, apperr.ErrFormat, "cycle line %d %q", line, last)
		}
		t = append(t, idx)
	}
	if err := sc.Err(); err != nil {
		return nil, apperr.Wrapf(err, apperr.ErrIO, "read cycle")
	}

	return t, nil
}
