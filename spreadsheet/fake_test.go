package spreadsheet

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"sync"
	"testing"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/sheetops/gsheets/table"
)

const ID = "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"

// service emulates the subset of the Sheets v4 and Drive v3 REST APIs used by the
// client, recording every mutation.
type service struct {
	sync.Mutex
	t *testing.T

	sheets    []*sheets.SheetProperties
	values    map[string][][]any
	revisions [][]*drive.Revision

	gets    int
	updates []sheets.ValueRange
	appends []sheets.ValueRange
	clears  []string
	batches []*sheets.Request

	fail int
}

func newService(t *testing.T) *service {
	return &service{
		t:      t,
		values: map[string][][]any{},
	}
}

func (s *service) sheet(id int64, title string, rows ...[]any) *service {
	s.sheets = append(s.sheets, &sheets.SheetProperties{
		SheetId: id,
		Title:   title,
		Index:   int64(len(s.sheets)),
		GridProperties: &sheets.GridProperties{
			RowCount:    1000,
			ColumnCount: 26,
		},
	})

	s.values[title] = rows

	return s
}

func (s *service) client(t *testing.T) (*Client, *drive.Service) {
	srv := httptest.NewServer(s)
	t.Cleanup(srv.Close)

	c, err := New(context.Background(), ID,
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("Error creating client (%v)", err)
	}

	gdrive, err := drive.NewService(context.Background(),
		option.WithEndpoint(srv.URL+"/drive/v3/"),
		option.WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("Error creating Drive client (%v)", err)
	}

	return c, gdrive
}

func (s *service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Lock()
	defer s.Unlock()

	if s.fail != 0 {
		http.Error(w, fmt.Sprintf(`{"error":{"code":%d,"message":"backend error"}}`, s.fail), s.fail)
		return
	}

	base := "/v4/spreadsheets/" + ID
	path := r.URL.Path

	switch {
	case r.Method == http.MethodGet && path == base:
		s.reply(w, s.spreadsheet())

	case r.Method == http.MethodPost && path == base+":batchUpdate":
		var rq sheets.BatchUpdateSpreadsheetRequest
		s.decode(r, &rq)
		s.batch(rq.Requests)
		s.reply(w, sheets.BatchUpdateSpreadsheetResponse{SpreadsheetId: ID})

	case r.Method == http.MethodPost && path == base+"/values:batchClear":
		var rq sheets.BatchClearValuesRequest
		s.decode(r, &rq)
		for _, rng := range rq.Ranges {
			s.clears = append(s.clears, rng)
			s.values[s.resolve(rng)] = nil
		}
		s.reply(w, sheets.BatchClearValuesResponse{SpreadsheetId: ID, ClearedRanges: rq.Ranges})

	case r.Method == http.MethodPost && strings.HasPrefix(path, base+"/values/") && strings.HasSuffix(path, ":append"):
		rng := strings.TrimSuffix(strings.TrimPrefix(path, base+"/values/"), ":append")
		var rq sheets.ValueRange
		s.decode(r, &rq)
		rq.Range = rng
		s.appends = append(s.appends, rq)
		s.values[s.resolve(rng)] = append(s.values[s.resolve(rng)], rq.Values...)
		s.reply(w, sheets.AppendValuesResponse{
			SpreadsheetId: ID,
			Updates:       &sheets.UpdateValuesResponse{UpdatedRows: int64(len(rq.Values))},
		})

	case r.Method == http.MethodPut && strings.HasPrefix(path, base+"/values/"):
		rng := strings.TrimPrefix(path, base+"/values/")
		var rq sheets.ValueRange
		s.decode(r, &rq)
		if got := r.URL.Query().Get("valueInputOption"); got != "USER_ENTERED" {
			s.t.Errorf("Incorrect valueInputOption - expected:%v, got:%v", "USER_ENTERED", got)
		}
		rq.Range = rng
		s.updates = append(s.updates, rq)
		s.values[title(rng)] = rq.Values
		cells := 0
		for _, row := range rq.Values {
			cells += len(row)
		}
		s.reply(w, sheets.UpdateValuesResponse{SpreadsheetId: ID, UpdatedRange: rng, UpdatedCells: int64(cells)})

	case r.Method == http.MethodGet && strings.HasPrefix(path, base+"/values/"):
		rng := strings.TrimPrefix(path, base+"/values/")
		name := s.resolve(rng)
		if _, ok := s.values[name]; !ok {
			http.Error(w, `{"error":{"code":400,"message":"Unable to parse range"}}`, http.StatusBadRequest)
			return
		}
		s.gets++
		values := s.values[name]
		s.reply(w, sheets.ValueRange{Range: extent(name, values), MajorDimension: "ROWS", Values: values})

	case r.Method == http.MethodGet && path == "/drive/v3/files/"+ID+"/revisions":
		page := 0
		fmt.Sscanf(r.URL.Query().Get("pageToken"), "page-%d", &page)
		list := drive.RevisionList{}
		if page < len(s.revisions) {
			list.Revisions = s.revisions[page]
		}
		if page+1 < len(s.revisions) {
			list.NextPageToken = fmt.Sprintf("page-%d", page+1)
		}
		s.reply(w, list)

	default:
		s.t.Errorf("Unexpected request %v %v", r.Method, path)
		http.NotFound(w, r)
	}
}

func (s *service) spreadsheet() sheets.Spreadsheet {
	spreadsheet := sheets.Spreadsheet{SpreadsheetId: ID}
	for _, p := range s.sheets {
		spreadsheet.Sheets = append(spreadsheet.Sheets, &sheets.Sheet{Properties: p})
	}

	return spreadsheet
}

func (s *service) batch(requests []*sheets.Request) {
	for _, rq := range requests {
		s.batches = append(s.batches, rq)

		switch {
		case rq.AddSheet != nil:
			s.sheet(int64(len(s.sheets)+100), rq.AddSheet.Properties.Title)

		case rq.DeleteSheet != nil:
			list := []*sheets.SheetProperties{}
			for _, p := range s.sheets {
				if p.SheetId != rq.DeleteSheet.SheetId {
					list = append(list, p)
				} else {
					delete(s.values, p.Title)
				}
			}
			s.sheets = list
		}
	}
}

func (s *service) decode(r *http.Request, v any) {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.t.Errorf("Error decoding %v request (%v)", r.URL.Path, err)
	}
}

func (s *service) reply(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.t.Errorf("Error encoding response (%v)", err)
	}
}

var cell = regexp.MustCompile(`^[A-Za-z]+[0-9]+$`)

// resolve returns the sheet addressed by a range the way the Sheets API does, i.e.
// an unquoted range that is a cell reference is a cell on the first sheet.
func (s *service) resolve(rng string) string {
	if cell.MatchString(rng) && len(s.sheets) > 0 {
		return s.sheets[0].Title
	}

	return title(rng)
}

func title(rng string) string {
	name := rng
	if ix := strings.LastIndex(rng, "!"); ix >= 0 {
		name = rng[:ix]
	}

	if strings.HasPrefix(name, "'") && strings.HasSuffix(name, "'") && len(name) > 1 {
		name = strings.ReplaceAll(name[1:len(name)-1], "''", "'")
	}

	return name
}

func extent(name string, values [][]any) string {
	width := 1
	for _, row := range values {
		if len(row) > width {
			width = len(row)
		}
	}

	rows := len(values)
	if rows == 0 {
		rows = 1
	}

	return fmt.Sprintf("%v!A1:%v%v", table.Quote(name), table.ColumnName(width-1), rows)
}
