package results

// OperationResult is the uniform return shape for service operations.
// Success and Failure are event payloads; exactly one of them is set on a
// normal return. Failure carries business rejections (permission denied,
// precondition not met) that should reach the user, while Error is reserved
// for infrastructure problems that should be retried or surfaced to operators.
type OperationResult struct {
	Success any
	Failure any
	Error   error
}

// HandlerResult is a routed payload produced from an OperationResult.
type HandlerResult struct {
	Topic    string
	Payload  any
	Metadata map[string]string
}

// MapToHandlerResults routes the result to the success or failure topic.
// A result with neither payload produces nothing, which acks the message
// without publishing.
func (r OperationResult) MapToHandlerResults(successTopic, failureTopic string) []HandlerResult {
	var out []HandlerResult
	if r.Failure != nil {
		out = append(out, HandlerResult{Topic: failureTopic, Payload: r.Failure})
		return out
	}
	if r.Success != nil {
		out = append(out, HandlerResult{Topic: successTopic, Payload: r.Success})
	}
	return out
}
