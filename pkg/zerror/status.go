package zerror

// Status is the transport-independent class of a ZError.
type Status uint8

const (
	StatusUnknown Status = iota
	StatusBadRequest
	StatusValidationFailed
	StatusNotFound
	StatusInternalServerError
	StatusServiceUnavailable
)

func (s Status) String() string {
	switch s {
	case StatusBadRequest:
		return "BAD_REQUEST"
	case StatusValidationFailed:
		return "VALIDATION_FAILED"
	case StatusNotFound:
		return "NOT_FOUND"
	case StatusInternalServerError:
		return "INTERNAL_SERVER_ERROR"
	case StatusServiceUnavailable:
		return "SERVICE_UNAVAILABLE"
	default:
		return "UNKNOWN"
	}
}
