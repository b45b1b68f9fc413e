package briefs

import (
	"errors"
	"slices"
)

var (
	ErrBriefNotFound = errors.New("brief not found")
	ErrInvalidStatus = errors.New("invalid brief status")
)

// reports whether err is, or wraps, ErrBriefNotFound
func IsNotFound(err error) bool {
	return errors.Is(err, ErrBriefNotFound)
}

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusReviewing, StatusArchived:
		return true
	}

	return false
}

// parses a status string; empty is allowed and means "any"
func ParseStatusFilter(raw string) (Status, error) {
	if raw == "" {
		return "", nil
	}

	status := Status(raw)
	if !status.Valid() {
		return "", ErrInvalidStatus
	}

	return status, nil
}

// returns a copy that shares no slices with b
func (b Brief) clone() Brief {
	b.ExistingSystems = slices.Clone(b.ExistingSystems)

	if b.ExistingSystems == nil {
		b.ExistingSystems = []string{}
	}

	return b
}

func normalizeSystems(systems []string) []string {
	out := make([]string, 0, len(systems))

	for _, s := range systems {
		if s != "" {
			out = append(out, s)
		}
	}

	return out
}
