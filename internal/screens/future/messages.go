package future

import "github.com/Chennyyyy/University-Students-Study-and-Career-Platform/internal/career"

// analysisMsg is sent when an analysis request finishes. Token identifies
// the request; results for a superseded token are dropped.
type analysisMsg struct {
	Token  uint64
	Result *career.Result
	Err    error
}
