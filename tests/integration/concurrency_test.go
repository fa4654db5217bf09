package integration

import (
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Concurrent deposits must all land: the ledger serializes writes and the
// final balances account for every confirmed transaction.
func TestConcurrentDeposits(t *testing.T) {
	app := newTestApp(t)

	const workers = 20
	app.ledger.seed(sessionAccount, mustParse("20"))

	var wg sync.WaitGroup
	statuses := make([]int, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			statuses[i], _ = app.post(t, "/api/v1/deposit", `{"amount":"1"}`)
		}(i)
	}
	wg.Wait()

	for i, status := range statuses {
		assert.Equal(t, http.StatusAccepted, status, "deposit %d", i)
	}

	status, body := app.get(t, "/api/v1/balances")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "0", dataOf(t, body)["public_balance"])

	status, body = app.post(t, "/api/v1/balances/decrypt", `{}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "20", dataOf(t, body)["balance"])
}

// Reads must stay consistent while writes are in flight: every balance
// response is well-formed and the history endpoint never returns an error
// mid-stream.
func TestReadsDuringWrites(t *testing.T) {
	app := newTestApp(t)
	app.ledger.seed(sessionAccount, mustParse("50"))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			status, _ := app.post(t, "/api/v1/deposit", `{"amount":"1"}`)
			assert.Equal(t, http.StatusAccepted, status)
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			status, body := app.get(t, "/api/v1/balances")
			assert.Equal(t, http.StatusOK, status)
			assert.Contains(t, dataOf(t, body), "public_balance")
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			status, _ := app.get(t, "/api/v1/history")
			assert.Equal(t, http.StatusOK, status)
		}()
	}
	wg.Wait()
}
