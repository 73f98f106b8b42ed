package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	notekeeper "github.com/Workflow-Manager-admin/note-keeper"
	"github.com/Workflow-Manager-admin/note-keeper/internal/apitest"
)

func main() {
	count := flag.Int("count", 1000, "Number of notes to seed")
	flag.Parse()

	// 1. Setup Backend
	backend := apitest.New()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		panic(err)
	}
	httpSrv := &http.Server{Handler: backend.Handler()}
	go httpSrv.Serve(ln)
	defer httpSrv.Close()

	baseURL := "http://" + ln.Addr().String()
	fmt.Printf("Seeding %d notes into %s...\n", *count, baseURL)

	startGen := time.Now()
	// Direct store writes are faster for setup. We want to simulate an
	// "existing backend", not bench the create path here.
	for i := 0; i < *count; i++ {
		backend.Seed(fmt.Sprintf("Note %d", i), "This is a test note.")
	}
	fmt.Printf("Seeding took: %v\n", time.Since(startGen))

	// 2. Initialize Session
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
	sess, err := notekeeper.Open(baseURL, notekeeper.WithLogger(logger))
	if err != nil {
		panic(err)
	}
	defer sess.Close()

	ctx := context.TODO()

	// Run 1: Refresh (full round trip, decode everything)
	fmt.Println("Running Refresh (Run 1 - network)...")
	startFetch := time.Now()
	if err := sess.Refresh(ctx); err != nil {
		panic(err)
	}
	fetchDur := time.Since(startFetch)
	fmt.Printf("Run 1 Result: %v (Items: %d)\n", fetchDur, len(sess.Notes()))

	// Run 2: Notes (served from the session cache, no I/O)
	fmt.Println("Running Notes (Run 2 - cached)...")
	startCached := time.Now()
	list := sess.Notes()
	cachedDur := time.Since(startCached)
	fmt.Printf("Run 2 Result: %v (Items: %d)\n", cachedDur, len(list))

	// Run 3: Refresh again. The cache is transient, so every refresh pays
	// the full network cost. There is nothing persistent to warm up.
	fmt.Println("Running Refresh (Run 3 - network again)...")
	startAgain := time.Now()
	if err := sess.Refresh(ctx); err != nil {
		panic(err)
	}
	againDur := time.Since(startAgain)
	fmt.Printf("Run 3 Result: %v\n", againDur)

	// 4. Write path: one full save cycle (create + refetch)
	sess.StartNew()
	sess.SetTitle("bench write")
	sess.SetContent("measuring the save round trip")
	startSave := time.Now()
	if _, err := sess.Save(ctx); err != nil {
		panic(err)
	}
	saveDur := time.Since(startSave)

	fmt.Printf("--------------------------------------------------\n")
	fmt.Printf("Benchmark Result (%d notes):\n", *count)
	fmt.Printf("  Refetch (network): %v\n", fetchDur)
	fmt.Printf("  Cached read:       %v\n", cachedDur)
	fmt.Printf("  Refetch again:     %v\n", againDur)
	fmt.Printf("  Save round trip:   %v\n", saveDur)
	fmt.Printf("--------------------------------------------------\n")
}
