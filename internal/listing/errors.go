package listing

import (
	"errors"
	"fmt"
)

// ErrAnalysisEmpty reports that the model produced no usable listing summary.
var ErrAnalysisEmpty = errors.New("could not analyze the listing content")

// InvalidURLError is returned before any network I/O when the submitted URL
// does not carry the expected marketplace domain token.
type InvalidURLError struct {
	Domain string
}

func (e InvalidURLError) Error() string {
	return fmt.Sprintf("listing URL must be a valid %s URL", e.Domain)
}

// FetchError covers both transport failures and non-2xx responses from the
// listing source. Status is zero when the request never got a response.
type FetchError struct {
	Status  int
	Message string
}

func (e FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("could not fetch the listing: HTTP %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("could not fetch the listing: %s", e.Message)
}
