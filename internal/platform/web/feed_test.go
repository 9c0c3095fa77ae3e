package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/crucible-tabletop/crucible/internal/sim"
)

func newTestFeed() *Feed {
	return NewFeed(log.New(io.Discard))
}

func TestFeedBroadcastReachesSpectator(t *testing.T) {
	feed := newTestFeed()
	srv := httptest.NewServer(feed.Handler())
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer conn.Close()

	// The handler registers the client before returning from the
	// upgrade, so the connection is immediately broadcastable.
	waitFor(t, func() bool { return feed.Spectators() == 1 })

	sent := sim.Event{Round: 2, Phase: sim.PhaseShooting, Side: "Red", Unit: "Devastators", Detail: "lascannon wounds Ork Boyz (6 damage)"}
	feed.Broadcast(sent)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got sim.Event
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}
	if got != sent {
		t.Errorf("received %+v, want %+v", got, sent)
	}
}

func TestFeedDropsClosedClients(t *testing.T) {
	feed := newTestFeed()
	srv := httptest.NewServer(feed.Handler())
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	waitFor(t, func() bool { return feed.Spectators() == 1 })

	conn.Close()
	waitFor(t, func() bool { return feed.Spectators() == 0 })
}

func TestFeedCloseDisconnectsAll(t *testing.T) {
	feed := newTestFeed()
	srv := httptest.NewServer(feed.Handler())
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	for i := 0; i < 3; i++ {
		conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		if err != nil {
			t.Fatalf("Dial %d failed: %v", i, err)
		}
		defer conn.Close()
	}
	waitFor(t, func() bool { return feed.Spectators() == 3 })

	feed.Close()
	if got := feed.Spectators(); got != 0 {
		t.Errorf("Spectators() after Close = %d, want 0", got)
	}
}

func TestOriginCheck(t *testing.T) {
	cases := []struct {
		origin string
		host   string
		want   bool
	}{
		{"", "example.com", true}, // non-browser client
		{"http://example.com", "example.com", true},
		{"http://localhost:3000", "example.com", true},
		{"http://127.0.0.1:8080", "example.com", true},
		{"http://evil.com", "example.com", false},
		{"://bad url", "example.com", false},
	}

	for _, c := range cases {
		r := httptest.NewRequest(http.MethodGet, "/ws", nil)
		r.Host = c.host
		if c.origin != "" {
			r.Header.Set("Origin", c.origin)
		}
		if got := isValidOrigin(r); got != c.want {
			t.Errorf("isValidOrigin(origin=%q, host=%q) = %v, want %v", c.origin, c.host, got, c.want)
		}
	}
}

// waitFor polls cond for up to two seconds.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met within deadline")
}
