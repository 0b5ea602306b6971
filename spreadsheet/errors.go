package spreadsheet

import (
	"net/http"

	"github.com/pkg/errors"
	"google.golang.org/api/googleapi"
)

var ErrSheetNotFound = errors.New("sheet not found")

// IsNotFound returns true if the error is a Google API 'not found' response, e.g.
// for a spreadsheet ID that does not exist or is not shared with the user.
func IsNotFound(err error) bool {
	var e *googleapi.Error

	return errors.As(err, &e) && e.Code == http.StatusNotFound
}
