package fieldval

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"
)

// Predicate is a named pure check over an extracted value. CUSTOM validation
// rules reference predicates by id; arbitrary code is never evaluated.
type Predicate func(value any, raw string) bool

// PredicateRegistry resolves CUSTOM rule predicates by id. Unknown ids fail
// validation deterministically instead of executing anything.
type PredicateRegistry struct {
	mu    sync.RWMutex
	preds map[string]Predicate
}

func NewPredicateRegistry() *PredicateRegistry {
	r := &PredicateRegistry{preds: map[string]Predicate{}}
	for id, p := range builtinPredicates {
		r.preds[id] = p
	}
	return r
}

func (r *PredicateRegistry) Register(id string, p Predicate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.preds[id] = p
}

func (r *PredicateRegistry) Resolve(id string) (Predicate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.preds[id]
	if !ok {
		return nil, fmt.Errorf("unknown validation predicate %q", id)
	}
	return p, nil
}

var reCUSIP = regexp.MustCompile(`^[0-9A-Z]{9}$`)
var reISIN = regexp.MustCompile(`^[A-Z]{2}[0-9A-Z]{9}\d$`)

var builtinPredicates = map[string]Predicate{
	"positive_amount": func(value any, _ string) bool {
		v, ok := value.(float64)
		return ok && v > 0
	},
	"not_in_future": func(value any, _ string) bool {
		t, ok := value.(time.Time)
		return ok && !t.After(time.Now())
	},
	"valid_cusip": func(_ any, raw string) bool {
		return reCUSIP.MatchString(strings.ToUpper(strings.TrimSpace(raw)))
	},
	"valid_isin": func(_ any, raw string) bool {
		return reISIN.MatchString(strings.ToUpper(strings.TrimSpace(raw)))
	},
}
