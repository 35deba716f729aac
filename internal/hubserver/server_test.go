package hubserver

import (
	"context"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestListenPortConflict(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()
	port := ln.Addr().(*net.TCPAddr).Port

	srv := New(t.TempDir(), port)

	done := make(chan error, 1)
	go func() {
		_, err := srv.Listen()
		done <- err
	}()

	select {
	case err := <-done:
		if err == nil {
			t.Error("Listen on an occupied port should fail")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Listen did not fail fast on an occupied port")
	}
}

func TestServeStaticFiles(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "index.html"), []byte("<h1>hub</h1>"), 0644); err != nil {
		t.Fatal(err)
	}

	srv := New(root, 0)
	ln, err := srv.Listen()
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	serveDone := make(chan error, 1)
	go func() {
		serveDone <- srv.Serve(ctx, ln)
	}()

	resp, err := http.Get(srv.URL(ln) + "/index.html")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if string(body) != "<h1>hub</h1>" {
		t.Errorf("body = %q", body)
	}
	if ct := resp.Header.Get("Content-Type"); ct == "" {
		t.Error("missing Content-Type header")
	}

	// Directory index resolution: / serves index.html.
	resp, err = http.Get(srv.URL(ln) + "/")
	if err != nil {
		t.Fatalf("GET / failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("GET / status = %d, want 200", resp.StatusCode)
	}

	// Graceful shutdown on cancel.
	cancel()
	select {
	case err := <-serveDone:
		if err != nil {
			t.Errorf("Serve returned %v after cancel, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not stop after context cancel")
	}
}
