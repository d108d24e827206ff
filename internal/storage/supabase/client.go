// Package supabase reads and writes the hosted database through its PostgREST API.
package supabase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/supabase-community/postgrest-go"
)

const (
	restPath = "/rest/v1"
	schema   = "public"

	// codeNoRows is returned by PostgREST when a single object was requested and none matched.
	codeNoRows = "PGRST116"
)

var errNotConfigured = errors.New("supabase url is not configured")

// Client wraps a postgrest client authenticated with the service role key.
type Client struct {
	rest    *postgrest.Client
	baseURL string
}

func NewClient(baseURL string, serviceRoleKey string) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	return &Client{
		rest: postgrest.NewClient(baseURL+restPath, schema, map[string]string{
			"apikey":        serviceRoleKey,
			"Authorization": fmt.Sprintf("Bearer %s", serviceRoleKey),
		}),
		baseURL: baseURL,
	}
}

// from starts a query on table. postgrest-go has no context-aware Execute, so ctx is only
// checked before the request goes out.
func (c *Client) from(ctx context.Context, table string) (*postgrest.QueryBuilder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.baseURL == "" {
		return nil, errNotConfigured
	}
	if c.rest.ClientError != nil {
		return nil, fmt.Errorf("invalid supabase url: %w", c.rest.ClientError)
	}
	return c.rest.From(table), nil
}

// isNoRows reports whether err is PostgREST's "no rows for a single object" error.
// postgrest-go formats failures as "(<code>) <message>".
func isNoRows(err error) bool {
	return err != nil && strings.Contains(err.Error(), "("+codeNoRows+")")
}

// Ping checks that user_secrets is readable with the configured key.
func (c *Client) Ping(ctx context.Context) error {
	query, err := c.from(ctx, "user_secrets")
	if err != nil {
		return err
	}
	_, _, err = query.Select("user_id", "", false).Limit(1, "").Execute()
	return err
}
