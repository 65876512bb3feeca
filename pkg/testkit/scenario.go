// Package testkit drives the store from JSON scenario files.
//
// A scenario is a scripted shopping session: a list of actions to dispatch,
// each optionally expected to fail, followed by assertions on the resulting
// cart, totals and showcase.
//
//	testdata/
//	  weekly_boost_totals.json
//	  logout_keeps_cart.json
//
// Example _test.go:
//
//	func TestSessions(t *testing.T) {
//	    testkit.RunDir(t, newStore, "testdata")
//	}
package testkit

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shashiranjanraj/fruitfuel/app/models"
	"github.com/shashiranjanraj/fruitfuel/app/store"
)

// Scenario describes one scripted session loaded from a JSON file.
type Scenario struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	// EnforceStock asks the factory for a store that refuses out-of-stock products.
	EnforceStock bool `json:"enforceStock"`

	Steps  []Step      `json:"steps"`
	Expect Expectation `json:"expect"`

	path string
}

// Step is one dispatched action.
type Step struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload"`

	// ExpectError is "", "any", "not_found", "validation" or "precondition".
	ExpectError string `json:"expectError"`
}

// CartLine is the expected shape of one cart line.
type CartLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Expectation lists the checks made after the last step. Nil fields are skipped.
type Expectation struct {
	Cart            *[]CartLine `json:"cart"`
	Subtotal        *float64    `json:"subtotal"`
	DiscountAmount  *float64    `json:"discountAmount"`
	Total           *float64    `json:"total"`
	TotalFormatted  string      `json:"totalFormatted"`
	VisibleProducts *[]string   `json:"visibleProducts"`
	LoggedIn        *bool       `json:"loggedIn"`
	Membership      *string     `json:"membership"`
	Orders          *int        `json:"orders"`
	OrderStatuses   *[]string   `json:"orderStatuses"`
	Version         *uint64     `json:"version"`
}

// Dispatcher is what a scenario runs against; *store.Store satisfies it.
type Dispatcher interface {
	State() models.AppState
	Dispatch(a store.Action) error
}

// Versioned is implemented by dispatchers that count transitions.
type Versioned interface {
	Version() uint64
}

// Factory builds a fresh dispatcher for a scenario.
type Factory func(s *Scenario) Dispatcher

// LoadScenario reads and validates a scenario from a JSON file.
func LoadScenario(path string) (*Scenario, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("testkit: resolve path %q: %w", path, err)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("testkit: read %q: %w", abs, err)
	}

	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("testkit: parse %q: %w", abs, err)
	}

	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("testkit: invalid scenario %q: %w", abs, err)
	}

	s.path = abs
	return &s, nil
}

func (s *Scenario) validate() error {
	if s.Name == "" {
		return errors.New("name is required")
	}
	for i, step := range s.Steps {
		if step.Action == "" {
			return fmt.Errorf("steps[%d].action is required", i)
		}
		switch step.ExpectError {
		case "", "any", "not_found", "validation", "precondition":
		default:
			return fmt.Errorf("steps[%d].expectError %q is not a known error kind", i, step.ExpectError)
		}
	}
	return nil
}

// LoadAllFromDir loads every *.json file in dir as a Scenario.
// Files that fail to parse are collected as errors.
func LoadAllFromDir(dir string) ([]*Scenario, []error) {
	entries, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil || len(entries) == 0 {
		return nil, []error{fmt.Errorf("testkit: no scenario files found in %q", dir)}
	}

	var (
		scenarios []*Scenario
		errs      []error
	)
	for _, path := range entries {
		s, err := LoadScenario(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, errs
}

// StepResult is the outcome of one dispatched step.
type StepResult struct {
	Index  int
	Action string
	Err    error
}

// Replay dispatches every step of s against d. Dispatch errors are recorded
// in the results; only a payload that cannot be decoded stops the replay.
func Replay(d Dispatcher, s *Scenario) ([]StepResult, error) {
	results := make([]StepResult, 0, len(s.Steps))
	for i, step := range s.Steps {
		a, err := store.DecodeAction(step.Action, step.Payload)
		if err != nil {
			return results, fmt.Errorf("testkit: %s step %d: %w", s.Name, i, err)
		}
		results = append(results, StepResult{Index: i, Action: step.Action, Err: d.Dispatch(a)})
	}
	return results, nil
}

// ErrorKind classifies err the way ExpectError does.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case store.IsNotFound(err):
		return "not_found"
	case store.IsValidation(err):
		return "validation"
	case store.IsPrecondition(err):
		return "precondition"
	default:
		return "other"
	}
}
