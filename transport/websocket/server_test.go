package websocket

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/testing/suite"
)

func dial(t *testing.T) *websocket.Conn {
	t.Helper()

	_, st := suite.New(t, entity.Circle)

	srv := httptest.NewServer(New(st.Logger, st.Manager))
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func send(t *testing.T, conn *websocket.Conn, action string, payload any) (string, ResponsePayload) {
	t.Helper()

	msg := Message{Action: action}
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		msg.Payload = data
	}
	require.NoError(t, conn.WriteJSON(msg))

	var reply Message
	require.NoError(t, conn.ReadJSON(&reply))

	var resp ResponsePayload
	require.NoError(t, json.Unmarshal(reply.Payload, &resp))

	return reply.Action, resp
}

func TestServer_Connect(t *testing.T) {
	t.Run("Creates a session", func(t *testing.T) {
		conn := dial(t)

		// When: the client connects without a session id
		action, resp := send(t, conn, actionConnect, RequestPayload{})

		// Then: a fresh session comes back
		assert.Equal(t, actionConnect, action)
		assert.Empty(t, resp.Error)
		require.NotNil(t, resp.Session)
		assert.NotEmpty(t, resp.Session.SessionID)
		assert.Equal(t, entity.NewMatchState(entity.Circle), resp.Session.State)
	})

	t.Run("Resumes a known session", func(t *testing.T) {
		conn := dial(t)

		_, created := send(t, conn, actionConnect, nil)
		_, _ = send(t, conn, actionTap, map[string]int{"position": 1})

		_, resumed := send(t, conn, actionConnect, RequestPayload{SessionID: created.Session.SessionID})

		require.NotNil(t, resumed.Session)
		assert.Equal(t, created.Session.SessionID, resumed.Session.SessionID)
		assert.Equal(t, entity.Circle, resumed.Session.State.Board.At(1))
	})
}

func TestServer_Tap(t *testing.T) {
	t.Run("Human move is answered by the computer", func(t *testing.T) {
		// Given: a connected client
		conn := dial(t)
		send(t, conn, actionConnect, nil)

		// When: the human taps the corner
		action, resp := send(t, conn, actionTap, map[string]int{"position": 1})

		// Then: the computer took the center
		assert.Equal(t, actionTap, action)
		require.NotNil(t, resp.Session)
		assert.Equal(t, entity.Circle, resp.Session.State.Board.At(1))
		assert.Equal(t, entity.Cross, resp.Session.State.Board.At(5))
	})

	t.Run("Tap before connect is an error", func(t *testing.T) {
		conn := dial(t)

		_, resp := send(t, conn, actionTap, map[string]int{"position": 1})

		assert.Equal(t, "no active session", resp.Error)
		assert.Nil(t, resp.Session)
	})

	t.Run("Tap without a position is an error", func(t *testing.T) {
		conn := dial(t)
		send(t, conn, actionConnect, nil)

		_, resp := send(t, conn, actionTap, map[string]int{})

		assert.Equal(t, "position is required", resp.Error)
	})

	t.Run("Tap outside the board is an error", func(t *testing.T) {
		conn := dial(t)
		send(t, conn, actionConnect, nil)

		_, resp := send(t, conn, actionTap, map[string]int{"position": 42})

		assert.Equal(t, "invalid cell index", resp.Error)
	})
}

func TestServer_PlayAgain(t *testing.T) {
	// Given: a round the computer won on the middle column
	conn := dial(t)
	send(t, conn, actionConnect, nil)

	var resp ResponsePayload
	for _, position := range []int{1, 9, 7} {
		_, resp = send(t, conn, actionTap, map[string]int{"position": position})
	}
	require.NotNil(t, resp.Session)
	require.Equal(t, "Player 'X' Won", resp.Session.State.Status)

	// When: the client asks for a new round
	action, resp := send(t, conn, actionPlayAgain, nil)

	// Then: the computer opened the new round
	assert.Equal(t, actionPlayAgain, action)
	require.NotNil(t, resp.Session)
	assert.Equal(t, entity.Cross, resp.Session.State.Board.At(5))
	assert.Equal(t, 1, resp.Session.State.CrossWinCount)
}

func TestServer_PingAndUnknownAction(t *testing.T) {
	conn := dial(t)

	action, resp := send(t, conn, actionPing, nil)
	assert.Equal(t, actionPong, action)
	assert.Empty(t, resp.Error)

	action, resp = send(t, conn, "game:undo", nil)
	assert.Equal(t, actionError, action)
	assert.Equal(t, "unknown action: game:undo", resp.Error)
}

func TestServer_MalformedMessage(t *testing.T) {
	conn := dial(t)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))

	var reply Message
	require.NoError(t, conn.ReadJSON(&reply))

	assert.Equal(t, actionError, reply.Action)
}
