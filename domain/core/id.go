package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	RunID        ID
	PersonaID    ID
	SimulationID ID
)

func (id RunID) String() string        { return ID(id).String() }
func (id PersonaID) String() string    { return ID(id).String() }
func (id SimulationID) String() string { return ID(id).String() }

// IsEmpty checks if the run ID is empty
func (id RunID) IsEmpty() bool { return id == "" }

// NewRunID creates a time-ordered run identifier
func NewRunID() RunID {
	return RunID(NewID())
}

// NewPersonaID builds the sequential persona identifier for a 0-based index.
func NewPersonaID(index int) PersonaID {
	return PersonaID(fmt.Sprintf("persona_%d", index+1))
}

// NewSimulationID formats the human-facing simulation identifier for a start time.
func NewSimulationID(ts Timestamp) SimulationID {
	return SimulationID("sim_" + ts.Time().Format("20060102150405"))
}

// ParseRunID parses a string into RunID
func ParseRunID(s string) (RunID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("run ID cannot be empty")
	}
	if _, err := uuid.Parse(s); err != nil {
		return "", fmt.Errorf("run ID %q is not a valid UUID: %w", s, err)
	}
	return RunID(s), nil
}

// ParsePersonaID parses a string into PersonaID
func ParsePersonaID(s string) (PersonaID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("persona ID cannot be empty")
	}
	return PersonaID(s), nil
}
