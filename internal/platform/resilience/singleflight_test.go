package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestGroup_Do(t *testing.T) {
	var g Group[string]
	var counter int32

	const workers = 20
	start := make(chan struct{})
	release := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			got, err, _ := g.Do("acquire", func() (string, error) {
				atomic.AddInt32(&counter, 1)
				<-release
				return "ok", nil
			})
			if err != nil || got != "ok" {
				t.Errorf("singleflight call got=%q err=%v", got, err)
			}
		}()
	}

	close(start)
	deadline := time.Now().Add(time.Second)
	for !g.InFlight("acquire") && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
	if g.InFlight("acquire") {
		t.Fatalf("expected no call in flight after completion")
	}
}
