package model

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Scenario describes one room to lay out: its bounds, the doors on its
// perimeter, and the footprint dimensions the caller allows. Scenarios are
// plain input data; the engine never reads configuration from any external
// store itself.
type Scenario struct {
	ID            string `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	Room          Rect   `json:"room" yaml:"room"`
	Doors         []Door `json:"doors" yaml:"doors"`
	AllowedWidths []int  `json:"allowed_widths" yaml:"allowed_widths"`
	AllowedDepths []int  `json:"allowed_depths" yaml:"allowed_depths"`

	// FootprintSize is the square footprint side length used by single
	// placement; zero means the scenario is only strip-packed.
	FootprintSize int `json:"footprint_size,omitempty" yaml:"footprint_size,omitempty"`
}

func NewScenario(name string, room Rect) Scenario {
	return Scenario{
		ID:            uuid.New().String()[:8],
		Name:          name,
		Room:          room,
		AllowedWidths: []int{3, 4},
		AllowedDepths: []int{4, 5},
	}
}

// LoadScenario reads a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario YAML: %w", err)
	}
	return &s, nil
}

// Save writes the scenario to a YAML file.
func (s Scenario) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding scenario: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects malformed input at the call boundary. The engine itself
// does not validate; behavior on out-of-contract input is undefined, so
// callers loading external data should validate first.
func (s Scenario) Validate() error {
	if s.Room.Width < 3 || s.Room.Height < 3 {
		return fmt.Errorf("room %dx%d has no interior", s.Room.Width, s.Room.Height)
	}
	for _, d := range s.Doors {
		if !s.Room.OnPerimeter(d.X, d.Z) {
			return fmt.Errorf("door (%d,%d) is not on the room perimeter", d.X, d.Z)
		}
	}
	if len(s.AllowedWidths) == 0 {
		return fmt.Errorf("allowed width set is empty")
	}
	if len(s.AllowedDepths) == 0 {
		return fmt.Errorf("allowed depth set is empty")
	}
	for _, w := range s.AllowedWidths {
		if w < 1 {
			return fmt.Errorf("allowed width %d is not positive", w)
		}
	}
	for _, d := range s.AllowedDepths {
		if d < 1 {
			return fmt.Errorf("allowed depth %d is not positive", d)
		}
	}
	if s.FootprintSize < 0 {
		return fmt.Errorf("footprint size %d is negative", s.FootprintSize)
	}
	interior := s.Room.Interior()
	if s.FootprintSize > interior.Width && s.FootprintSize > interior.Height {
		return fmt.Errorf("footprint size %d exceeds both interior dimensions", s.FootprintSize)
	}
	return nil
}
