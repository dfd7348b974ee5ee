package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/osse101/itemforge/internal/domain"
)

// HTTPSource reads records from an asset server that exposes the scan and
// record routes.
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

var _ Source = (*HTTPSource)(nil)

// NewHTTPSource creates a source for the server at baseURL. A nil client
// uses http.DefaultClient.
func NewHTTPSource(baseURL string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (s *HTTPSource) ListFiles(ctx context.Context, category string) ([]string, error) {
	if err := checkName(category); err != nil {
		return nil, err
	}
	target := s.baseURL + ScanItemsPath + "?" + url.Values{CategoryParam: {category}}.Encode()

	var files []string
	if err := s.getJSON(ctx, target, &files); err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidCategory, category)
		}
		return nil, fmt.Errorf(ErrFmtListFailed, category, err)
	}
	slices.Sort(files)
	return files, nil
}

func (s *HTTPSource) ReadRecord(ctx context.Context, category, filename string) (domain.Record, error) {
	if err := checkName(category); err != nil {
		return nil, err
	}
	if err := checkName(filename); err != nil {
		return nil, err
	}
	target := s.baseURL + RecordsPathPrefix + url.PathEscape(category) + "/" + url.PathEscape(filename)

	var rec domain.Record
	if err := s.getJSON(ctx, target, &rec); err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s/%s", domain.ErrRecordNotFound, category, filename)
		}
		return nil, fmt.Errorf(ErrFmtReadFailed, category, filename, err)
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: %s/%s: record is not an object", domain.ErrMalformedRecord, category, filename)
	}
	return rec, nil
}

// Scan returns the asset server's own scan of its tree.
func (s *HTTPSource) Scan(ctx context.Context) (*ScanResult, error) {
	var res ScanResult
	if err := s.getJSON(ctx, s.baseURL+ScanItemsPath, &res); err != nil {
		return nil, fmt.Errorf(ErrFmtListFailed, s.baseURL, err)
	}
	return &res, nil
}

type statusError struct {
	code   int
	target string
}

func (e *statusError) Error() string {
	return fmt.Sprintf(ErrFmtUnexpectedCode, e.code, e.target)
}

func isNotFound(err error) bool {
	se, ok := err.(*statusError)
	return ok && se.code == http.StatusNotFound
}

func (s *HTTPSource) getJSON(ctx context.Context, target string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, MaxRecordBytes))
		return &statusError{code: resp.StatusCode, target: target}
	}
	return json.NewDecoder(io.LimitReader(resp.Body, MaxRecordBytes)).Decode(dst)
}
