package search

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"petcare/internal/domain"
	"petcare/internal/geo"
)

type Mode string

const (
	ModeEmergency Mode = "emergency"
	ModeNormal    Mode = "normal"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeEmergency:
		return ModeEmergency, nil
	case ModeNormal, "":
		return ModeNormal, nil
	}
	return "", ErrValidation
}

// SearchResult is a per-search view over a vet; it is never persisted.
// MatchedOnCall is a display flag: it mirrors the vet's on-call state except
// under the emergency fallback, where every result is shown as on-call.
type SearchResult struct {
	Vet           domain.Vet
	DistanceKm    *float64
	MatchedOnCall bool
}

type Service struct {
	vets    VetLister
	resolve func(string) (geo.Coordinate, bool)
	rng     *rand.Rand
}

// NewService builds a ranker. rng drives the emergency fallback shuffle and
// may be nil outside tests.
func NewService(vets VetLister, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		vets:    vets,
		resolve: geo.Resolve,
		rng:     rng,
	}
}

// ResolveCaller maps the caller's free-text location to a coordinate.
// A miss is not an error: ranking degrades to the premium/rating tie-break.
func (s *Service) ResolveCaller(location string) *geo.Coordinate {
	if location == "" {
		return nil
	}
	coord, ok := s.resolve(location)
	if !ok {
		return nil
	}
	return &coord
}

func (s *Service) Search(ctx context.Context, mode Mode, caller *geo.Coordinate) ([]SearchResult, bool, error) {
	vets, err := s.vets.ListApproved(ctx)
	if err != nil {
		return nil, false, err
	}

	results := make([]SearchResult, 0, len(vets))
	anyOnCall := false
	for _, v := range vets {
		r := SearchResult{
			Vet:           v,
			MatchedOnCall: v.EmergencyAvailable,
		}
		if caller != nil {
			if coord, ok := s.vetCoordinate(v); ok {
				d := geo.DistanceKm(*caller, coord)
				r.DistanceKm = &d
			}
		}
		if v.EmergencyAvailable {
			anyOnCall = true
		}
		results = append(results, r)
	}

	// An empty candidate set is an empty result in either mode; the fallback
	// only answers "nobody is on call", not "nobody exists".
	if len(results) == 0 {
		return results, false, nil
	}

	if mode == ModeEmergency && !anyOnCall {
		// Fallback policy: no vet is on call, so the on-call rule cannot be
		// honored. Shuffle uniformly to spread exposure across vets and show
		// everyone as on-call. Persisted records are untouched.
		s.rng.Shuffle(len(results), func(i, j int) {
			results[i], results[j] = results[j], results[i]
		})
		for i := range results {
			results[i].MatchedOnCall = true
		}
		return results, true, nil
	}

	sort.SliceStable(results, func(i, j int) bool {
		return less(mode, results[i], results[j])
	})

	return results, false, nil
}

func (s *Service) vetCoordinate(v domain.Vet) (geo.Coordinate, bool) {
	if v.Latitude != nil && v.Longitude != nil {
		return geo.Coordinate{Lat: *v.Latitude, Lng: *v.Longitude}, true
	}
	if v.Location != "" {
		return s.resolve(v.Location)
	}
	return geo.Coordinate{}, false
}

// less applies the ranking rules in strict priority order; ties fall through.
func less(mode Mode, a, b SearchResult) bool {
	if mode == ModeEmergency {
		if a.Vet.EmergencyAvailable != b.Vet.EmergencyAvailable {
			return a.Vet.EmergencyAvailable
		}
	}

	aDist := a.DistanceKm != nil
	bDist := b.DistanceKm != nil
	if aDist != bDist {
		return aDist
	}
	if aDist && bDist {
		if *a.DistanceKm != *b.DistanceKm {
			return *a.DistanceKm < *b.DistanceKm
		}
	}

	if !aDist && !bDist {
		if a.Vet.Premium != b.Vet.Premium {
			return a.Vet.Premium
		}
	}

	return a.Vet.Rating > b.Vet.Rating
}
