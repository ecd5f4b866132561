package services

// ValidationError marks a client mistake. Its message is surfaced verbatim
// with HTTP 400.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }
