package service_test

import (
	"kasaglow/internal/domains/booking/service"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIssuer_Next(t *testing.T) {
	fixed := time.UnixMilli(1718000000000)
	issuer := service.NewIssuerWithClock("KSG", func() time.Time { return fixed })

	assert.Equal(t, "KSG-1718000000000", issuer.Next())
	assert.Equal(t, "KSG-1718000000001", issuer.Next())
	assert.Equal(t, "KSG-1718000000002", issuer.Next())
}

func TestIssuer_ClockStepsBack(t *testing.T) {
	clock := time.UnixMilli(5000)
	issuer := service.NewIssuerWithClock("KSG", func() time.Time { return clock })

	assert.Equal(t, "KSG-5000", issuer.Next())

	clock = time.UnixMilli(1000)
	assert.Equal(t, "KSG-5001", issuer.Next())

	clock = time.UnixMilli(9000)
	assert.Equal(t, "KSG-9000", issuer.Next())
}

func TestIssuer_ConcurrentIDsAreUnique(t *testing.T) {
	issuer := service.NewIssuerWithClock("KSG", time.Now)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[string]struct{})
	)

	for range 100 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			id := issuer.Next()

			mu.Lock()
			seen[id] = struct{}{}
			mu.Unlock()
		}()
	}

	wg.Wait()

	assert.Len(t, seen, 100)

	for id := range seen {
		assert.True(t, strings.HasPrefix(id, "KSG-"))
	}
}
