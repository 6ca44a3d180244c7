package db

import (
	"fmt"

	database "github.com/bearisterai/bearister-api/api/database"
)

// The processed-session store keeps one row per checkout session whose plan
// update has already landed, so the webhook path and the redirect path do not
// both apply the same purchase. When no database is configured both functions
// report "not processed", which degrades to the uncoordinated dual-write the
// payment provider tolerates anyway.

// SessionProcessed reports whether a plan update was already applied for the
// given checkout session.
func SessionProcessed(sessionID string) (bool, error) {
	conn := database.GetDB()
	if conn == nil {
		return false, nil
	}
	var count int
	err := conn.QueryRow(
		"SELECT COUNT(1) FROM processed_checkout_session WHERE session_id = $1",
		sessionID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("query processed_checkout_session: %w", err)
	}
	return count > 0, nil
}

// MarkSessionProcessed records that the plan update for the given checkout
// session has been applied. Safe to call from both confirmation paths.
func MarkSessionProcessed(sessionID string) error {
	conn := database.GetDB()
	if conn == nil {
		return nil
	}
	_, err := conn.Exec(
		"INSERT INTO processed_checkout_session (session_id, processed_at) VALUES ($1, NOW()) ON CONFLICT (session_id) DO NOTHING",
		sessionID,
	)
	if err != nil {
		return fmt.Errorf("insert processed_checkout_session: %w", err)
	}
	return nil
}
