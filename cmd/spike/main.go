package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	notekeeper "github.com/Workflow-Manager-admin/note-keeper"
	"github.com/Workflow-Manager-admin/note-keeper/internal/apitest"
)

const workerCount = 100

func main() {
	log.Println("⚡ Spike: concurrent writes against one backend")

	// 1. Setup an in-process backend
	backend := apitest.New()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	httpSrv := &http.Server{Handler: backend.Handler()}
	go httpSrv.Serve(ln)
	defer httpSrv.Close()

	baseURL := "http://" + ln.Addr().String()
	log.Printf("📂 Backend at: %s", baseURL)

	// 2. One shared service, many writers. No client side lock: the
	// service is stateless and the backend serializes its own store.
	svc, err := notekeeper.New(baseURL)
	if err != nil {
		log.Fatalf("init: %v", err)
	}

	ctx := context.Background()
	start := time.Now()

	var wg sync.WaitGroup
	wg.Add(workerCount)

	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			title := fmt.Sprintf("spike note %d", id)
			if _, err := svc.CreateNote(ctx, title, time.Now().Format(time.RFC3339)); err != nil {
				log.Printf("[error] create %d: %v", id, err)
			}
		}(i)
	}

	wg.Wait()
	duration := time.Since(start)

	// 3. Validate
	log.Println("🏁 All goroutines finished.")
	log.Printf("⏱️  Total: %v", duration)
	log.Printf("⚡ Throughput: %.2f creates/sec", float64(workerCount)/duration.Seconds())

	if got := backend.Len(); got != workerCount {
		log.Fatalf("❌ FAIL: backend holds %d notes, want %d (lost writes)", got, workerCount)
	}

	list, err := svc.ListNotes(ctx)
	if err != nil {
		log.Fatalf("❌ FAIL: final list: %v", err)
	}

	seen := make(map[int64]bool, len(list))
	for _, n := range list {
		if seen[n.ID] {
			log.Fatalf("❌ FAIL: duplicate id %d in listing", n.ID)
		}
		seen[n.ID] = true
	}

	log.Printf("✅ SUCCESS: %d notes, all ids unique.", len(list))
}
