package errors

// ErrorCode identifies an application error category
type ErrorCode int

const (
	ErrorCode_INTERNAL ErrorCode = iota + 1
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_NOT_FOUND
	ErrorCode_INVALID_PAYLOAD
	ErrorCode_UNSUPPORTED_FORMAT
	ErrorCode_TRANSCRIPTION_FAILED
	ErrorCode_TRANSCRIPT_TOO_SHORT
	ErrorCode_INPUT_TOO_LONG
	ErrorCode_ANALYZER_UNAVAILABLE
	ErrorCode_SUMMARIZER_UNAVAILABLE
	ErrorCode_INVALID_PARAMETERS
	ErrorCode_STORAGE_FAILED
	ErrorCode_HTTP_OK
)

var codeNames = map[ErrorCode]string{
	ErrorCode_INTERNAL:               "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:       "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:              "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:        "INVALID_PAYLOAD",
	ErrorCode_UNSUPPORTED_FORMAT:     "UNSUPPORTED_FORMAT",
	ErrorCode_TRANSCRIPTION_FAILED:   "TRANSCRIPTION_FAILED",
	ErrorCode_TRANSCRIPT_TOO_SHORT:   "TRANSCRIPT_TOO_SHORT",
	ErrorCode_INPUT_TOO_LONG:         "INPUT_TOO_LONG",
	ErrorCode_ANALYZER_UNAVAILABLE:   "ANALYZER_UNAVAILABLE",
	ErrorCode_SUMMARIZER_UNAVAILABLE: "SUMMARIZER_UNAVAILABLE",
	ErrorCode_INVALID_PARAMETERS:     "INVALID_PARAMETERS",
	ErrorCode_STORAGE_FAILED:         "STORAGE_FAILED",
	ErrorCode_HTTP_OK:                "OK",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
