package outcome

import "fmt"

const (
	MsgNothingToReport = "Nothing to report"
	MsgEmpty           = "Processing led to an empty result"
	MsgFailure         = "Processing led to a failure"
	MsgNotFound        = "The requested resource could not be found"
	MsgUnauthorized    = "Received an unauthorized result"
	MsgUnprocessable   = "The result was unprocessable"
	MsgPredicateFailed = "Predicate failed"
	MsgLogDefault      = "Outcome processed"

	// EmptyString is what String prints for outcomes without a payload.
	EmptyString = "<empty>"
)

func predicateFailed(name string) string {
	return fmt.Sprintf("%s: %s", MsgPredicateFailed, name)
}

func thrownWithoutMessage(err error) string {
	return fmt.Sprintf("%T was thrown without any message", err)
}
