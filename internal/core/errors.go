package core

import "fmt"

// ConfigError is a fatal configuration error: invalid agent counts,
// mismatched array sizes, a request to move to a non-adjacent vertex, or an
// inconsistent orientation record during cycle handling. It always
// identifies the offending agent, or -1 when the error is not attributable
// to a single agent (e.g. a graph-level query).
type ConfigError struct {
	Agent AgentID
	Msg   string
}

func (e *ConfigError) Error() string {
	if e.Agent < 0 {
		return fmt.Sprintf("pibt: configuration error: %s", e.Msg)
	}
	return fmt.Sprintf("pibt: configuration error for agent %d: %s", e.Agent, e.Msg)
}
