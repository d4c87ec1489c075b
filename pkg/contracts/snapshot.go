package contracts

import (
	"maps"
	"time"
)

// Snapshot is a frozen projection of a prior subscription's interval and
// service set, retained in the history of the subscription that replaced
// it. Snapshots own their service map; the constructor copies it so no
// aggregate can alias another's history.
type Snapshot struct {
	start    time.Time
	end      time.Time
	services map[string]Service
}

// NewSnapshot creates a snapshot of the given interval and service set.
func NewSnapshot(start, end time.Time, services map[string]Service) Snapshot {
	return Snapshot{
		start:    start.UTC(),
		end:      end.UTC(),
		services: maps.Clone(services),
	}
}

// Start returns the UTC start of the captured interval.
func (s Snapshot) Start() time.Time { return s.start }

// End returns the UTC end of the captured interval.
func (s Snapshot) End() time.Time { return s.end }

// Service returns the captured service with the given name.
func (s Snapshot) Service(name string) (Service, bool) {
	svc, ok := s.services[name]
	return svc, ok
}

// Services returns a copy of the captured service map.
func (s Snapshot) Services() map[string]Service {
	return maps.Clone(s.services)
}

// Equal reports whether both snapshots capture the same interval and
// service set.
func (s Snapshot) Equal(other Snapshot) bool {
	return s.start.Equal(other.start) && s.end.Equal(other.end) &&
		maps.EqualFunc(s.services, other.services, Service.Equal)
}
