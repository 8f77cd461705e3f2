package catalog

// ErrorKind classifies a failed catalog operation.
type ErrorKind int

const (
	// KindUnknown covers failures that fit no other bucket.
	KindUnknown ErrorKind = iota
	// KindConnection means the server was unreachable (DNS, refused).
	KindConnection
	// KindTimeout means no response arrived within the configured window.
	KindTimeout
	// KindNotFound means the requested entity does not exist (404).
	KindNotFound
	// KindBadRequest means the server rejected the query as malformed (400).
	KindBadRequest
	// KindAuthentication means credentials were missing or invalid (401).
	KindAuthentication
	// KindAuthorization means the caller lacks permission (403).
	KindAuthorization
	// KindServer means the server failed internally (5xx).
	KindServer
	// KindParse means a response body could not be decoded.
	KindParse
)

// Error is the only error type returned across the Provider boundary.
// Callers branch on "did we get data"; Kind is available for the few
// places that care why (e.g. distinguishing a timeout from a 404).
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func errf(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}
