package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"divgame/game"
	"divgame/searcher"

	"github.com/stretchr/testify/require"
)

func newTestServer() http.Handler {
	return New(Config{Depth: 3, StartMin: 20000, StartMax: 30000, Seed: 5}).Router()
}

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPing(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ping", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestStart(t *testing.T) {
	h := newTestServer()

	t.Run("defaults to the human moving first", func(t *testing.T) {
		rec := post(t, h, "/api/start", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var state game.GameState
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
		require.Equal(t, game.Human, state.Turn)
		require.Zero(t, state.Number%12, "Start numbers are multiples of 12")
		require.GreaterOrEqual(t, state.Number, 20000)
		require.LessOrEqual(t, state.Number, 30000)
		require.Zero(t, state.HumanScore)
		require.Zero(t, state.ComputerScore)
	})

	t.Run("computer first", func(t *testing.T) {
		rec := post(t, h, "/api/start", `{"first":"computer"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var state game.GameState
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
		require.Equal(t, game.Computer, state.Turn)
	})

	t.Run("unknown player", func(t *testing.T) {
		rec := post(t, h, "/api/start", `{"first":"nobody"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestApply(t *testing.T) {
	h := newTestServer()

	t.Run("legal division", func(t *testing.T) {
		rec := post(t, h, "/api/apply", `{"state":{"number":24,"humanScore":0,"computerScore":0,"turn":"human"},"divisor":2}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp applyResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, game.GameState{Number: 12, Turn: game.Computer}, resp.State)
		require.Equal(t, "Player divided by 2, result: 12 | Human: 0, Computer: 0", resp.Message)
		require.False(t, resp.Over)
	})

	t.Run("finishing division reports the outcome", func(t *testing.T) {
		rec := post(t, h, "/api/apply", `{"state":{"number":22,"humanScore":0,"computerScore":1,"turn":"human"},"divisor":2}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp applyResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, game.GameState{Number: 11, HumanScore: 1, ComputerScore: 1, Turn: game.Computer}, resp.State)
		require.True(t, resp.Over)
		require.Equal(t, "draw", resp.Outcome)
	})

	t.Run("illegal division", func(t *testing.T) {
		rec := post(t, h, "/api/apply", `{"state":{"number":27,"turn":"human"},"divisor":2}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "27 is not divisible by 2")
	})

	t.Run("finished game", func(t *testing.T) {
		for _, number := range []int{8, 25} {
			rec := post(t, h, "/api/apply", `{"state":{"number":`+strconv.Itoa(number)+`,"turn":"human"},"divisor":2}`)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Contains(t, rec.Body.String(), "game is over", "%d has no move left", number)
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		rec := post(t, h, "/api/apply", `{"state":`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMove(t *testing.T) {
	h := newTestServer()

	t.Run("matches the searcher", func(t *testing.T) {
		for _, algorithm := range searcher.Algorithms {
			rec := post(t, h, "/api/move", `{"state":{"number":24,"turn":"computer"},"algorithm":"`+string(algorithm)+`","depth":1}`)
			require.Equal(t, http.StatusOK, rec.Code)

			var resp moveResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.NotNil(t, resp.Result)
			require.Equal(t, game.Move(2), resp.Result.Move, "Ties go to the smallest divisor")
			require.Equal(t, game.GameState{Number: 12, Turn: game.Human}, resp.Result.State)
			require.Equal(t, string(algorithm), resp.Metrics.Algorithm)
			require.Equal(t, int64(4), resp.Metrics.NodesVisited)
			require.False(t, resp.Over)
		}
	})

	t.Run("configured depth and algorithm by default", func(t *testing.T) {
		rec := post(t, h, "/api/move", `{"state":{"number":24,"turn":"computer"}}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp moveResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, 3, resp.Metrics.Depth)
		require.Equal(t, string(searcher.AlgorithmAlphaBeta), resp.Metrics.Algorithm)
	})

	t.Run("no legal move ends the game", func(t *testing.T) {
		rec := post(t, h, "/api/move", `{"state":{"number":13,"humanScore":2,"turn":"computer"},"depth":2}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp moveResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Nil(t, resp.Result)
		require.False(t, resp.Skip)
		require.True(t, resp.Over)
		require.Equal(t, "human", resp.Outcome)
	})

	t.Run("rejected requests", func(t *testing.T) {
		for name, body := range map[string]string{
			"human to move":     `{"state":{"number":24,"turn":"human"}}`,
			"terminal":          `{"state":{"number":10,"turn":"computer"}}`,
			"negative depth":    `{"state":{"number":24,"turn":"computer"},"depth":-1}`,
			"unknown algorithm": `{"state":{"number":24,"turn":"computer"},"algorithm":"mcts"}`,
			"unknown field":     `{"state":{"number":24,"turn":"computer"},"depthh":2}`,
		} {
			rec := post(t, h, "/api/move", body)
			require.Equal(t, http.StatusBadRequest, rec.Code, name)
		}
	})
}
