// file: internals/features/editorials/service/progress_service.go
package service

import "fmt"

// AdvanceProgress applies the monotonic progress rule: the stored percent
// never decreases, and crossing 100 for the first time reports completion.
func AdvanceProgress(current int16, incoming int) (next int16, becameRead bool, err error) {
	if incoming < 0 || incoming > 100 {
		return current, false, fmt.Errorf("percent must be between 0 and 100, got %d", incoming)
	}
	next = current
	if int16(incoming) > current {
		next = int16(incoming)
	}
	becameRead = current < 100 && next >= 100
	return next, becameRead, nil
}
