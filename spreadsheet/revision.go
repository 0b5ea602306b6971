package spreadsheet

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"google.golang.org/api/drive/v3"
)

type Revision struct {
	ID       string    `json:"revision"`
	Modified time.Time `json:"modified"`
}

// Revision returns the most recent revision of the spreadsheet from Google Drive,
// which changes whenever anyone edits the spreadsheet.
func (c *Client) Revision(ctx context.Context, gdrive *drive.Service) (*Revision, error) {
	page := ""
	latest := Revision{}

	for {
		call := gdrive.Revisions.List(c.id).Fields("nextPageToken", "revisions(id,modifiedTime)").Context(ctx)
		if page != "" {
			call.PageToken(page)
		}

		revisions, err := call.Do()
		if err != nil {
			return nil, errors.Wrapf(err, "unable to list revisions for %v", c.id)
		}

		for _, revision := range revisions.Revisions {
			modified, err := time.Parse(time.RFC3339Nano, revision.ModifiedTime)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid revision timestamp '%v'", revision.ModifiedTime)
			}

			if latest.Modified.Before(modified) {
				latest.ID = revision.Id
				latest.Modified = modified
			}
		}

		if page = revisions.NextPageToken; page == "" {
			break
		}
	}

	if latest.Modified.IsZero() {
		return nil, errors.Errorf("unable to identify latest revision for file ID %s", c.id)
	}

	return &latest, nil
}
