package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwdomes/mushland-game/internal/config"
	"github.com/jwdomes/mushland-game/internal/protocol"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	return newTestServerWith(t, config.Config{Port: 8080, MaxSessions: 4, Seed: 42, QRSize: 128})
}

func newTestServerWith(t *testing.T, cfg config.Config) *httptest.Server {
	t.Helper()
	static := fstest.MapFS{"index.html": {Data: []byte("<html></html>")}}
	srv := New(cfg, static)
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func createSession(t *testing.T, ts *httptest.Server) string {
	t.Helper()
	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}}
	resp, err := client.Post(ts.URL+"/api/create", "", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	loc, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	id := loc.Query().Get("session")
	require.NotEmpty(t, id)
	return id
}

func readUntil(t *testing.T, conn *websocket.Conn, typ string) protocol.Envelope {
	t.Helper()
	for {
		var env protocol.Envelope
		require.NoError(t, conn.ReadJSON(&env))
		if env.Type == typ {
			return env
		}
	}
}

func TestWebSocketDrawAndReplay(t *testing.T) {
	ts := newTestServer(t)
	id := createSession(t, ts)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?session=" + id
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	var view struct {
		DeckSize  int `json:"deck_size"`
		Nutrients int `json:"nutrients"`
	}
	require.NoError(t, readUntil(t, conn, protocol.MsgGameState).Decode(&view))
	assert.Equal(t, 36, view.DeckSize)
	assert.Equal(t, 8, view.Nutrients)

	require.NoError(t, conn.WriteJSON(protocol.MustEnvelope(protocol.MsgDraw, nil)))
	require.NoError(t, readUntil(t, conn, protocol.MsgGameState).Decode(&view))
	assert.Equal(t, 35, view.DeckSize)

	resp, err := http.Get(ts.URL + "/api/sessions/" + id + "/replay")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var replay struct {
		Seed    uint64            `json:"seed"`
		Actions []json.RawMessage `json:"actions"`
		View    struct {
			DeckSize int `json:"deck_size"`
		} `json:"view"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&replay))
	assert.Equal(t, uint64(42), replay.Seed)
	assert.Len(t, replay.Actions, 1)
	assert.Equal(t, 35, replay.View.DeckSize)
}

func TestQRAndErrors(t *testing.T) {
	ts := newTestServer(t)
	id := createSession(t, ts)

	resp, err := http.Get(ts.URL + "/api/qr?session=" + id)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	for _, path := range []string{"/api/qr", "/api/qr?session=nope", "/ws?session=nope", "/api/sessions/nope/replay"} {
		resp, err := http.Get(ts.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.GreaterOrEqual(t, resp.StatusCode, 400, path)
	}
}

func TestDeleteSession(t *testing.T) {
	ts := newTestServer(t)
	id := createSession(t, ts)

	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/api/sessions/"+id, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/api/sessions/" + id + "/replay")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSessionLimit(t *testing.T) {
	ts := newTestServer(t)
	for i := 0; i < 4; i++ {
		createSession(t, ts)
	}
	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}}
	resp, err := client.Post(ts.URL+"/api/create", "", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	createSession(t, ts)
	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	var body map[string]int
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body["sessions"])
}

func dial(t *testing.T, ts *httptest.Server, id string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?session=" + id
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestDeleteSessionClosesSocket(t *testing.T) {
	ts := newTestServer(t)
	id := createSession(t, ts)
	conn := dial(t, ts, id)
	readUntil(t, conn, protocol.MsgGameState)

	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/api/sessions/"+id, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	for {
		_, _, err = conn.ReadMessage()
		if err != nil {
			break
		}
	}
	var closeErr *websocket.CloseError
	assert.ErrorAs(t, err, &closeErr)
}

func TestIdleSessionEvictedAtLimit(t *testing.T) {
	ts := newTestServerWith(t, config.Config{Port: 8080, MaxSessions: 1, SessionIdle: time.Nanosecond, QRSize: 128})
	first := createSession(t, ts)
	time.Sleep(time.Millisecond)
	second := createSession(t, ts)
	assert.NotEqual(t, first, second)

	resp, err := http.Get(ts.URL + "/api/sessions/" + first + "/replay")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestConnectedSessionNotEvicted(t *testing.T) {
	ts := newTestServerWith(t, config.Config{Port: 8080, MaxSessions: 1, SessionIdle: time.Nanosecond, QRSize: 128})
	id := createSession(t, ts)
	conn := dial(t, ts, id)
	readUntil(t, conn, protocol.MsgGameState)

	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}}
	resp, err := client.Post(ts.URL+"/api/create", "", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
