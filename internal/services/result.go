package services

// ResultType classifies the outcome carried by a Result.
type ResultType int

const (
	// ResultSuccess is the zero state of a fresh Result.
	ResultSuccess ResultType = iota
	// ResultInvalid marks a persistence failure reported through the Result
	// channel instead of a typed error.
	ResultInvalid
)

// Result is the success-or-errors container returned by the create/update
// operations. It carries either a payload or a list of error messages; the
// first error message flips the result type.
type Result struct {
	messages   []string
	resultType ResultType

	// Data holds the operation payload on success.
	Data interface{}
}

// NewResult returns a fresh successful Result with no payload.
func NewResult() *Result {
	return &Result{}
}

// AddErrorMessage records a failure message and marks the result with the
// given type.
func (r *Result) AddErrorMessage(message string, resultType ResultType) {
	r.messages = append(r.messages, message)
	r.resultType = resultType
}

// ErrorMessages returns a copy of the recorded failure messages.
func (r *Result) ErrorMessages() []string {
	out := make([]string, len(r.messages))
	copy(out, r.messages)
	return out
}

// IsSuccess reports whether no failure has been recorded.
func (r *Result) IsSuccess() bool {
	return r.resultType == ResultSuccess
}
