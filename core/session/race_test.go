package session_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sharp0802/humus/core/cipher"
	"github.com/Sharp0802/humus/core/session"
)

// TestConcurrentLoadAndConfigure exercises the lock-free configuration read
// path while configurations are republished. Every load must observe one
// coherent configuration: success under the matching passphrase or an
// authentication failure under the other, never a mixed state.
func TestConcurrentLoadAndConfigure(t *testing.T) {
	t.Parallel()

	manager, err := session.NewManager(session.Config{Passphrase: "first passphrase"})
	require.NoError(t, err)

	sess, err := session.New("user-42")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	require.NoError(t, manager.Save(w, sess))
	cookies := w.Result().Cookies()

	newRequest := func() *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		for _, c := range cookies {
			r.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
		}
		return r
	}

	const (
		readers    = 16
		iterations = 200
	)

	var wg sync.WaitGroup
	wg.Add(readers + 1)

	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			passphrase := "first passphrase"
			if i%2 == 1 {
				passphrase = "second passphrase"
			}
			assert.NoError(t, manager.Configure(session.Config{Passphrase: passphrase}))
		}
	}()

	for g := 0; g < readers; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				_, err := manager.Load(newRequest())
				if err != nil && !errors.Is(err, cipher.ErrAuthenticationFailed) {
					assert.Failf(t, "unexpected load failure", "got %v", err)
					return
				}

				if err := manager.Save(httptest.NewRecorder(), sess); err != nil {
					assert.Failf(t, "unexpected save failure", "got %v", err)
					return
				}
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(30 * time.Second):
		t.Fatal("concurrent load/configure did not finish")
	}
}
