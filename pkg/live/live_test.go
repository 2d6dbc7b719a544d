package live

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/seidr-ui/seidr/pkg/observable"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readUpdate(t *testing.T, conn *websocket.Conn) Update {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var u Update
	if err := conn.ReadJSON(&u); err != nil {
		t.Fatalf("read update: %v", err)
	}
	return u
}

func TestPublisherSendsInitialValues(t *testing.T) {
	p := NewPublisher(nil)
	p.Expose("count", observable.New(10))
	p.Expose("alert", observable.New("none"))

	srv := httptest.NewServer(p)
	defer srv.Close()

	conn := dial(t, srv)

	// Initial frames arrive in sorted name order.
	first := readUpdate(t, conn)
	if first.Name != "alert" || first.Value != "none" {
		t.Errorf("first frame = %+v, want alert/none", first)
	}
	second := readUpdate(t, conn)
	if second.Name != "count" || second.Value != float64(10) {
		t.Errorf("second frame = %+v, want count/10", second)
	}
}

func TestPublisherStreamsChanges(t *testing.T) {
	count := observable.New(0)
	p := NewPublisher(nil)
	p.Expose("count", count)

	srv := httptest.NewServer(p)
	defer srv.Close()

	conn := dial(t, srv)
	if u := readUpdate(t, conn); u.Value != float64(0) {
		t.Fatalf("initial frame = %+v, want 0", u)
	}

	count.Set(1)
	count.Set(2)

	if u := readUpdate(t, conn); u.Name != "count" || u.Value != float64(1) {
		t.Errorf("frame = %+v, want count/1", u)
	}
	if u := readUpdate(t, conn); u.Value != float64(2) {
		t.Errorf("frame = %+v, want count/2", u)
	}
}

func TestPublisherUnsubscribesOnDisconnect(t *testing.T) {
	count := observable.New(0)
	p := NewPublisher(nil)
	p.Expose("count", count)

	srv := httptest.NewServer(p)
	defer srv.Close()

	conn := dial(t, srv)
	readUpdate(t, conn)
	conn.Close()

	deadline := time.Now().Add(5 * time.Second)
	for count.SubscriberCount() > 0 {
		if time.Now().After(deadline) {
			t.Fatalf("subscriber not removed after disconnect, count = %d",
				count.SubscriberCount())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestPublisherManyObservablesOnConnect(t *testing.T) {
	p := NewPublisher(nil)
	const n = sendBuffer + 36
	for i := 0; i < n; i++ {
		p.Expose(fmt.Sprintf("obs-%03d", i), observable.New(i))
	}

	srv := httptest.NewServer(p)
	defer srv.Close()

	// Connecting must not wedge on the initial frames even when the number
	// of exposed observables exceeds the per-connection queue.
	conn := dial(t, srv)
	for i := 0; i < n; i++ {
		u := readUpdate(t, conn)
		want := fmt.Sprintf("obs-%03d", i)
		if u.Name != want {
			t.Fatalf("frame %d = %q, want %q", i, u.Name, want)
		}
	}
}

func TestPublisherConcurrentSetsDuringConnections(t *testing.T) {
	count := observable.New(0)
	p := NewPublisher(nil)
	p.Expose("count", count)

	srv := httptest.NewServer(p)
	defer srv.Close()

	// Mutate continuously while clients connect, read, and disconnect.
	stop := make(chan struct{})
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		for i := 1; ; i++ {
			select {
			case <-stop:
				return
			default:
				count.Set(i)
			}
		}
	}()

	for c := 0; c < 5; c++ {
		url := "ws" + strings.TrimPrefix(srv.URL, "http")
		conn, _, err := websocket.DefaultDialer.Dial(url, nil)
		if err != nil {
			t.Fatalf("dial: %v", err)
		}
		// The snapshot frame may outrun updates queued just before it, so
		// only change frames are checked for ordering.
		if u := readUpdate(t, conn); u.Name != "count" {
			t.Fatalf("initial frame = %+v", u)
		}
		prev := -1.0
		for i := 0; i < 10; i++ {
			u := readUpdate(t, conn)
			v, ok := u.Value.(float64)
			if !ok {
				t.Fatalf("frame value = %T, want number", u.Value)
			}
			if v < prev {
				t.Fatalf("frames out of order: %v after %v", v, prev)
			}
			prev = v
		}
		conn.Close()
	}

	close(stop)
	<-writerDone
}
