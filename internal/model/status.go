package model

// Status is the category shown to the user for a result.
type Status string

// Status constants. A successful response always maps to the status of the
// same name as its final label.
const (
	StatusOK     Status = "OK"
	StatusReview Status = "REVIEW"
	StatusBlock  Status = "BLOCK"
	StatusError  Status = "ERROR"
)

// StatusFromLabel maps a final label to its status. Unknown labels map to
// StatusError.
func StatusFromLabel(l Label) Status {
	switch l {
	case LabelOK:
		return StatusOK
	case LabelReview:
		return StatusReview
	case LabelBlock:
		return StatusBlock
	default:
		return StatusError
	}
}
