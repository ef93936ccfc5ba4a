//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// ResetDB empties the settlement journal between subtests.
func ResetDB(db DBLike) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := db.Exec(ctx, "TRUNCATE scan_settlements")
	return err
}

func CountSettlements(t *testing.T, db DBLike) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM scan_settlements").Scan(&n)
	require.NoError(t, err)
	return n
}

func SettlementOutcome(t *testing.T, db DBLike, requestID uuid.UUID) string {
	t.Helper()
	var outcome string
	err := db.QueryRow(context.Background(),
		"SELECT outcome FROM scan_settlements WHERE id = $1", requestID).Scan(&outcome)
	require.NoError(t, err)
	return outcome
}
