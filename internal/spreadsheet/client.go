package spreadsheet

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"

	"taskboard/internal/config"
)

const (
	// DefaultAPITimeout bounds a single Sheets or Drive call.
	DefaultAPITimeout = 10 * time.Second

	valueInputOption = "USER_ENTERED"
)

var scopes = []string{
	sheets.SpreadsheetsScope,
	drive.DriveScope,
}

var (
	ErrNotFound   = errors.New("not found")
	ErrPermission = errors.New("permission denied")
	ErrTimeout    = errors.New("request timed out")
)

// Client implements Gateway using the Google Sheets and Drive APIs.
type Client struct {
	sheets  *sheets.Service
	drive   *drive.Service
	timeout time.Duration
}

var _ Gateway = (*Client)(nil)

// New creates a client authenticated as the configured service account, or
// with Application Default Credentials when no account is configured.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	var httpClient *http.Client
	if cfg.ServiceAccountEmail != "" && cfg.PrivateKey != "" {
		jwtCfg := &jwt.Config{
			Email:      cfg.ServiceAccountEmail,
			PrivateKey: []byte(cfg.PrivateKey),
			Scopes:     scopes,
			TokenURL:   google.JWTTokenURL,
		}
		httpClient = jwtCfg.Client(ctx)
	} else {
		var err error
		httpClient, err = google.DefaultClient(ctx, scopes...)
		if err != nil {
			return nil, fmt.Errorf("failed to find default credentials: %w", err)
		}
	}

	return NewWithHTTPClient(ctx, httpClient, cfg.APITimeout)
}

// NewWithHTTPClient creates a client that sends every request through httpClient.
func NewWithHTTPClient(ctx context.Context, httpClient *http.Client, timeout time.Duration) (*Client, error) {
	sheetsSvc, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	driveSvc, err := drive.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return NewFromServices(sheetsSvc, driveSvc, timeout), nil
}

// NewFromServices wraps already constructed API services (for testing).
func NewFromServices(sheetsSvc *sheets.Service, driveSvc *drive.Service, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultAPITimeout
	}
	return &Client{sheets: sheetsSvc, drive: driveSvc, timeout: timeout}
}

// GetValues reads the formatted values of a range.
func (c *Client) GetValues(ctx context.Context, spreadsheetID string, rng Range) ([][]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.sheets.Spreadsheets.Values.Get(spreadsheetID, rng.String()).Context(ctx).Do()
	if err != nil {
		return nil, wrapError(err)
	}
	return toStrings(resp.Values), nil
}

// UpdateValues overwrites the cells of a range.
func (c *Client) UpdateValues(ctx context.Context, spreadsheetID string, rng Range, rows [][]string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, err := c.sheets.Spreadsheets.Values.Update(spreadsheetID, rng.String(), &sheets.ValueRange{
		Values: toCells(rows),
	}).ValueInputOption(valueInputOption).Context(ctx).Do()
	if err != nil {
		return wrapError(err)
	}
	return nil
}

// AppendValues writes rows after the last row of the table found in rng.
func (c *Client) AppendValues(ctx context.Context, spreadsheetID string, rng Range, rows [][]string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, err := c.sheets.Spreadsheets.Values.Append(spreadsheetID, rng.String(), &sheets.ValueRange{
		Values: toCells(rows),
	}).ValueInputOption(valueInputOption).Context(ctx).Do()
	if err != nil {
		return wrapError(err)
	}
	return nil
}

// ClearValues empties the cells of a range. Rows are not removed.
func (c *Client) ClearValues(ctx context.Context, spreadsheetID string, rng Range) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, err := c.sheets.Spreadsheets.Values.Clear(spreadsheetID, rng.String(), &sheets.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		return wrapError(err)
	}
	return nil
}

// CopyFile copies a file, shared drives included.
func (c *Client) CopyFile(ctx context.Context, fileID, name string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	f, err := c.drive.Files.Copy(fileID, &drive.File{Name: name}).
		SupportsAllDrives(true).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return "", wrapError(err)
	}
	if f.Id == "" {
		return "", fmt.Errorf("copy of %s returned no file id", fileID)
	}
	return f.Id, nil
}

// TrashFile moves a file to the trash.
func (c *Client) TrashFile(ctx context.Context, fileID string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, err := c.drive.Files.Update(fileID, &drive.File{Trashed: true}).
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return wrapError(err)
	}
	return nil
}

func toStrings(values [][]interface{}) [][]string {
	rows := make([][]string, len(values))
	for i, row := range values {
		cells := make([]string, len(row))
		for j, v := range row {
			switch s := v.(type) {
			case nil:
			case string:
				cells[j] = s
			default:
				cells[j] = fmt.Sprint(s)
			}
		}
		rows[i] = cells
	}
	return rows
}

func toCells(rows [][]string) [][]interface{} {
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, s := range row {
			cells[j] = s
		}
		values[i] = cells
	}
	return values
}

// wrapError classifies API errors while keeping the original in the chain.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %w", ErrPermission, err)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %w", ErrNotFound, err)
		}
	}

	return err
}
