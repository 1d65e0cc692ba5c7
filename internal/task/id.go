package task

import "fmt"

// IDStrategy selects how the id of a new task is computed.
type IDStrategy string

const (
	// IDStrategyMax assigns max(existing ids)+1, so ids are never reused after a delete.
	IDStrategyMax IDStrategy = "max"
	// IDStrategyLength assigns len(tasks)+1. Deleting out of order can produce duplicate ids.
	IDStrategyLength IDStrategy = "length"
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *IDStrategy) UnmarshalText(text []byte) error {
	switch v := IDStrategy(text); v {
	case IDStrategyMax, IDStrategyLength:
		*s = v
		return nil
	case "":
		*s = IDStrategyMax
		return nil
	default:
		return fmt.Errorf("unknown id strategy %q (want max|length)", string(text))
	}
}

func (s IDStrategy) next(tasks []Task) int {
	if s == IDStrategyLength {
		return len(tasks) + 1
	}
	maxID := 0
	for _, t := range tasks {
		maxID = max(maxID, t.ID)
	}
	return maxID + 1
}
