package archive

import "fmt"

// FetchError is a network, HTTP or decoding failure talking to the archive API.
type FetchError struct {
	Op         string
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Op {
	case "player":
		return fmt.Sprintf("Failed to fetch player info: %v", e.Err)
	default:
		return fmt.Sprintf("Failed to fetch games: %v", e.Err)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }
