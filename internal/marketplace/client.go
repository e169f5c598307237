// Package marketplace is the client for the marketplace REST API that owns offer lists.
package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"resale/internal/domain"
	"resale/internal/domain/models"
)

const listStatusFilter = "live,vacation"

// MaxLists is the most seller lists one CurrentLists call returns.
const MaxLists = 100

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// EditedList is one entry of a lists-edit request.
type EditedList struct {
	ID        int64   `json:"id"`
	Size      string  `json:"size"`
	ProductID int64   `json:"product_id"`
	NewPrice  float64 `json:"new_price"`
	OldPrice  float64 `json:"old_price"`
}

type EditListsRequest struct {
	Lists      []EditedList `json:"lists"`
	Expiration int          `json:"expiration"`
}

type listResponse struct {
	Results []models.OfferList `json:"results"`
}

// CurrentLists fetches the caller's live selling lists, restricted to ids when given.
func (c *Client) CurrentLists(ctx context.Context, token string, ids []int64) ([]models.OfferList, error) {
	q := url.Values{}
	q.Set("filter[type]", models.OfferListSelling)
	q.Set("filter[status:in]", listStatusFilter)
	q.Set("filter[stock_count:gt]", "0")
	if len(ids) > 0 {
		parts := make([]string, 0, len(ids))
		for _, id := range ids {
			parts = append(parts, strconv.FormatInt(id, 10))
		}
		q.Set("filter[id:in]", strings.Join(parts, ","))
	}
	q.Set("include", "currency,product,product_stat")
	q.Set("page[size]", strconv.Itoa(MaxLists))

	var out listResponse
	if err := c.do(ctx, http.MethodGet, "me/offer-lists", q, token, nil, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// EditLists submits new prices and expiration for a batch of lists.
func (c *Client) EditLists(ctx context.Context, token string, req EditListsRequest) error {
	return c.do(ctx, http.MethodPut, "me/offer-lists/lists-edit", nil, token, req, nil)
}

// ProductOfferLists fetches every open list and offer of a product, newest first.
func (c *Client) ProductOfferLists(ctx context.Context, productID int64) ([]models.OfferList, error) {
	q := url.Values{}
	q.Set("page[size]", "1000")

	var out listResponse
	path := fmt.Sprintf("products/%d/offer-lists", productID)
	if err := c.do(ctx, http.MethodGet, path, q, "", nil, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, body, dst any) error {
	endpoint, err := c.endpoint(path, query)
	if err != nil {
		return domain.InternalError{Msg: "invalid marketplace url", Err: err}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return domain.InternalError{Msg: "encode marketplace request", Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return domain.InternalError{Msg: "build marketplace request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return domain.UnavailableError{Service: "marketplace", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return domain.InternalError{Msg: "read marketplace response", Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, path, raw)
	}
	if dst == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return domain.InternalError{Msg: "decode marketplace response", Err: err}
	}
	return nil
}

func (c *Client) endpoint(path string, query url.Values) (string, error) {
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return "", err
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	u := base.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String(), nil
}

type apiError struct {
	Message string `json:"message"`
}

func statusError(status int, path string, raw []byte) error {
	var body apiError
	_ = json.Unmarshal(raw, &body)
	msg := strings.TrimSpace(body.Message)
	if msg == "" {
		msg = http.StatusText(status)
	}
	cause := fmt.Errorf("%s: status %d", path, status)

	switch {
	case status == http.StatusNotFound:
		return domain.NotFoundError{Resource: path, Err: cause}
	case status == http.StatusConflict:
		return domain.ConflictError{Resource: path, Msg: msg, Err: cause}
	case status >= 400 && status < 500:
		return domain.ValidationError{Msg: msg, Err: cause}
	case status >= 500:
		return domain.UnavailableError{Service: "marketplace", Err: fmt.Errorf("%w: %s", cause, msg)}
	default:
		return domain.InternalError{Msg: "marketplace error: " + msg, Err: cause}
	}
}
