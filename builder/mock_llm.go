package builder

import "context"

// MockLLM replays a scripted chunk sequence, useful for local runs
// without credentials and for tests. When Err is set, the first
// FailAfter chunks are emitted and then Err is returned.
type MockLLM struct {
	Chunks    []string
	FailAfter int
	Err       error
}

func (m MockLLM) Stream(ctx context.Context, _ Prompt, emit func(string) error) error {
	n := len(m.Chunks)
	if m.Err != nil && m.FailAfter < n {
		n = m.FailAfter
	}
	for _, chunk := range m.Chunks[:n] {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := emit(chunk); err != nil {
			return err
		}
	}
	if m.Err != nil {
		return m.Err
	}
	return nil
}
