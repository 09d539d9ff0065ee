package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"
)

// Itinerary operations - all methods operate directly on Client.
//
// Every endpoint speaks the same envelope: {data: <payload>, error: <message>}
// plus a non-2xx status on failure. The client performs no local state
// mutation; ownership of lists and current-selection lives in the store.

const userIDHeader = "X-User-ID"

// GenerateItinerary asks the service to generate (and usually persist) a new
// trip plan. The returned Itinerary carries an ID only if the service stored
// it. EndDate must already be set on req; deriving it is the caller's job.
func (c *Client) GenerateItinerary(ctx context.Context, req GenerateRequest) (it *Itinerary, err error) {
	defer func() { observe("generate", err) }()

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	if err = ValidateGenerateRequest(&req); err != nil {
		return nil, err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate-itinerary", bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(userIDHeader, req.UserID)

	env, status, err := c.do("generate itinerary", httpReq)
	if err != nil {
		return nil, err
	}
	if len(env.Data) == 0 {
		log.Warn().Int("status_code", status).Msg("generate response lacks data payload")
		return nil, &MalformedResponseError{Op: "generate itinerary"}
	}
	it = &Itinerary{}
	if err = json.Unmarshal(env.Data, it); err != nil {
		return nil, &MalformedResponseError{Op: "generate itinerary"}
	}
	return it, nil
}

// ListItineraries returns all itineraries belonging to userID, newest first as
// ordered by the service. Summaries may omit detailed content. A success
// response without a data field is an empty list, not an error.
func (c *Client) ListItineraries(ctx context.Context, userID string) (list []Itinerary, err error) {
	defer func() { observe("list", err) }()

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	if err = ValidateUserID(userID); err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/api/itineraries?user_id=%s", c.baseURL, url.QueryEscape(userID))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set(userIDHeader, userID)

	env, _, err := c.do("list itineraries", httpReq)
	if err != nil {
		return nil, err
	}
	if len(env.Data) == 0 {
		return []Itinerary{}, nil
	}
	if err = json.Unmarshal(env.Data, &list); err != nil {
		return nil, &MalformedResponseError{Op: "list itineraries"}
	}
	if list == nil {
		list = []Itinerary{}
	}
	return list, nil
}

// GetItinerary fetches one itinerary with full content.
func (c *Client) GetItinerary(ctx context.Context, id string) (it *Itinerary, err error) {
	defer func() { observe("get", err) }()

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, &ValidationError{Message: "itinerary id is required"}
	}
	u := fmt.Sprintf("%s/api/itineraries/%s", c.baseURL, url.PathEscape(id))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	env, _, err := c.do("get itinerary", httpReq)
	if err != nil {
		return nil, err
	}
	if len(env.Data) == 0 {
		return nil, &MalformedResponseError{Op: "get itinerary"}
	}
	it = &Itinerary{}
	if err = json.Unmarshal(env.Data, it); err != nil {
		return nil, &MalformedResponseError{Op: "get itinerary"}
	}
	return it, nil
}

// DeleteItinerary removes an itinerary on the service side. Any 2xx status is
// success; the body is ignored. Pruning local lists is the store's job.
func (c *Client) DeleteItinerary(ctx context.Context, id string) (err error) {
	defer func() { observe("delete", err) }()

	if err = ctx.Err(); err != nil {
		return err
	}
	if id == "" {
		return &ValidationError{Message: "itinerary id is required"}
	}
	u := fmt.Sprintf("%s/api/itineraries/%s", c.baseURL, url.PathEscape(id))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return &NetworkError{Op: "delete itinerary", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	// Any 2xx is success; the body carries no information we need.
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	var env envelope
	_ = json.NewDecoder(resp.Body).Decode(&env)
	msg := env.Error
	if msg == "" {
		msg = fmt.Sprintf("delete itinerary: status %d", resp.StatusCode)
	}
	return &ServerError{Status: resp.StatusCode, Message: msg}
}

// Health probes GET /api/health and returns the service-defined payload.
func (c *Client) Health(ctx context.Context) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, &NetworkError{Op: "health check", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ServerError{Status: resp.StatusCode}
	}
	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &MalformedResponseError{Op: "health check"}
	}
	return payload, nil
}

// do issues the request and unwraps the response envelope. A 400 maps to
// ValidationError (the service rejected the request shape), any other non-2xx
// to ServerError with the envelope's error message when one was sent.
func (c *Client) do(op string, req *http.Request) (*envelope, int, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, &NetworkError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := env.Error
		if msg == "" {
			msg = fmt.Sprintf("%s: status %d", op, resp.StatusCode)
		}
		if resp.StatusCode == http.StatusBadRequest {
			return nil, resp.StatusCode, &ValidationError{Message: msg}
		}
		return nil, resp.StatusCode, &ServerError{Status: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return nil, resp.StatusCode, &MalformedResponseError{Op: op}
	}
	return &env, resp.StatusCode, nil
}
