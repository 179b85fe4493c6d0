package kubectl

// ResultStatus is the terminal status of one tool invocation.
type ResultStatus string

const (
	// StatusSuccess indicates the command ran and exited zero.
	StatusSuccess ResultStatus = "success"
	// StatusError indicates validation failed, dispatch was blocked, or the
	// command failed.
	StatusError ResultStatus = "error"
)

// StructuredResult is the single result shape returned across the tool
// boundary for both backends. Data is present on success, Error on failure;
// ReturnCode mirrors the command exit code when one is available and Params
// echoes the original invocation arguments for traceability.
type StructuredResult struct {
	Status     ResultStatus   `json:"status"`
	Data       any            `json:"data,omitempty"`
	Error      string         `json:"error,omitempty"`
	ReturnCode *int           `json:"return_code,omitempty"`
	Params     map[string]any `json:"params,omitempty"`
}

// errorResult builds a failed StructuredResult without a return code.
func errorResult(message string, params map[string]any) StructuredResult {
	return StructuredResult{
		Status: StatusError,
		Error:  message,
		Params: params,
	}
}
