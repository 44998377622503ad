package trace

import (
	"encoding/json"
	"io"
)

// TraceLevel controls the verbosity of decision tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDecisions captures every replenishment decision and pick.
	TraceLevelDecisions TraceLevel = "decisions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelDecisions: true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized
// trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// SimulationTrace collects decision and pick records during a run.
type SimulationTrace struct {
	Level     TraceLevel       `json:"level"`
	Decisions []DecisionRecord `json:"decisions"`
	Picks     []PickRecord     `json:"picks"`
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(level TraceLevel) *SimulationTrace {
	return &SimulationTrace{
		Level:     level,
		Decisions: make([]DecisionRecord, 0),
		Picks:     make([]PickRecord, 0),
	}
}

// RecordDecision appends a replenishment decision record.
func (st *SimulationTrace) RecordDecision(record DecisionRecord) {
	st.Decisions = append(st.Decisions, record)
}

// RecordPick appends a pick record.
func (st *SimulationTrace) RecordPick(record PickRecord) {
	st.Picks = append(st.Picks, record)
}

// WriteJSON serializes the trace as indented JSON.
func (st *SimulationTrace) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(st)
}
