package main

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"webhooks-api/internal/auth"
)

// issueToken writes a bearer token for the given user id to w.
func issueToken(w io.Writer, rawID string, ttl time.Duration) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("invalid user id %q: %w", rawID, err)
	}
	token, err := auth.GenerateToken(id, ttl)
	if err != nil {
		return fmt.Errorf("generate token: %w", err)
	}
	_, err = fmt.Fprintln(w, token)
	return err
}
