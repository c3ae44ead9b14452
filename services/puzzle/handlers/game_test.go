// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/dictionary"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/engine"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// =============================================================================
// Test Setup
// =============================================================================

// testIndex loads the fixture corpus around the "lactone" alphabet:
// nine playable words for (acelnot, center a), one for the auction set.
func testIndex(t *testing.T) *dictionary.Index {
	t.Helper()
	entries := map[string]map[string]any{
		"lactone": {"frequency": 8e-06, "definition": "a cyclic ester"},
		"auction": {"frequency": 9e-06, "definition": "a public sale"},
		"ethanol": {"frequency": 1e-06, "definition": "grain alcohol"},
		"alone":   {"frequency": 2e-05, "definition": "apart from others"},
		"clean":   {"frequency": 5e-05, "definition": "free from dirt"},
		"neat":    {"frequency": 4e-05, "definition": "tidy"},
		"tonal":   {"frequency": 1e-05, "definition": "relating to tone"},
		"lean":    {"frequency": 3e-05, "definition": "thin"},
		"canal":   {"frequency": 2e-05, "definition": "an artificial waterway"},
		"eaten":   {"frequency": 3e-05, "definition": "consumed"},
		"ocean":   {"frequency": 4e-05, "definition": "a large sea"},
	}
	data, err := json.Marshal(entries)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "dictionary.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	idx, err := dictionary.Load(path, nil)
	require.NoError(t, err)
	return idx
}

// gameRouter wires the game endpoints the way routes.SetupRoutes does,
// without the middleware stack.
func gameRouter(t *testing.T, opts engine.Options, prune bool) (*gin.Engine, *session.Store) {
	t.Helper()
	eng := engine.New(testIndex(t), opts)
	store := session.NewStore()

	router := gin.New()
	api := router.Group("/api")
	api.POST("/validate-seed", ValidateSeed(eng))
	api.POST("/start-game", StartGame(eng, store, prune))
	api.POST("/check-word", CheckWord(eng, store))
	api.POST("/generate-hints", GenerateHints(eng, store))
	return router, store
}

// postJSON performs a POST with a JSON body and returns the recorder.
func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, err := http.NewRequest("POST", path, bytes.NewReader(data))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// startGame opens a session for the lactone/a puzzle and returns its ID.
func startGame(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := postJSON(t, router, "/api/start-game", StartGameRequest{SeedWord: "lactone", CenterLetter: "a"})
	require.Equal(t, http.StatusOK, w.Code, "start-game body: %s", w.Body.String())
	resp := decodeBody[StartGameResponse](t, w)
	require.NotEmpty(t, resp.SessionID)
	return resp.SessionID
}

// =============================================================================
// Validate Seed
// =============================================================================

func TestValidateSeed_Valid(t *testing.T) {
	router, _ := gameRouter(t, engine.DefaultOptions(), false)

	w := postJSON(t, router, "/api/validate-seed", ValidateSeedRequest{SeedWord: "Lactone"})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody[ValidateSeedResponse](t, w)
	assert.True(t, resp.Valid)
	assert.Equal(t, "acelnot", resp.Letters)
	assert.Equal(t, []string{"a", "c", "e", "l", "n", "o", "t"}, resp.CenterOptions)
	assert.Empty(t, resp.Error)
}

func TestValidateSeed_TooFewLetters(t *testing.T) {
	router, _ := gameRouter(t, engine.DefaultOptions(), false)

	w := postJSON(t, router, "/api/validate-seed", ValidateSeedRequest{SeedWord: "neat"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeBody[ValidateSeedResponse](t, w)
	assert.False(t, resp.Valid)
	assert.Contains(t, resp.Error, "distinct letters")
	assert.Empty(t, resp.CenterOptions)
}

func TestValidateSeed_MissingField(t *testing.T) {
	router, _ := gameRouter(t, engine.DefaultOptions(), false)

	w := postJSON(t, router, "/api/validate-seed", gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
	assert.Contains(t, w.Body.String(), "seed_word is required",
		"details should name the JSON field, not the Go struct field")
}

// =============================================================================
// Start Game
// =============================================================================

func TestStartGame(t *testing.T) {
	router, store := gameRouter(t, engine.DefaultOptions(), false)

	w := postJSON(t, router, "/api/start-game", StartGameRequest{SeedWord: "LACTONE", CenterLetter: "A"})
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	resp := decodeBody[StartGameResponse](t, w)
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, "acelnot", resp.Letters)
	assert.Equal(t, "a", resp.Center)
	assert.Equal(t, 9, resp.TotalWords)
	assert.Equal(t, 46, resp.MaxScore)
	assert.Equal(t, 1, resp.PangramCount)

	// The word list stays server side.
	assert.NotContains(t, w.Body.String(), "valid_words")
	assert.NotContains(t, w.Body.String(), "lactone")

	// The session is live in the store.
	p, err := store.Puzzle(resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 9, p.TotalWords)
}

func TestStartGame_PrunedSession(t *testing.T) {
	opts := engine.DefaultOptions()
	opts.Pruning.Target = 5
	opts.Pruning.TopWords = 4
	opts.Pruning.RandomSample = 1
	opts.RandSeed = 17
	router, _ := gameRouter(t, opts, true)

	w := postJSON(t, router, "/api/start-game", StartGameRequest{SeedWord: "lactone", CenterLetter: "a"})
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	resp := decodeBody[StartGameResponse](t, w)
	assert.Equal(t, 5, resp.TotalWords)
	assert.Less(t, resp.MaxScore, 46)
	assert.Equal(t, 1, resp.PangramCount, "pangram survives pruning")
}

func TestStartGame_InvalidSeed(t *testing.T) {
	router, _ := gameRouter(t, engine.DefaultOptions(), false)

	w := postJSON(t, router, "/api/start-game", StartGameRequest{SeedWord: "neat", CenterLetter: "a"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "distinct letters")
}

func TestStartGame_CenterNotInSet(t *testing.T) {
	router, _ := gameRouter(t, engine.DefaultOptions(), false)

	w := postJSON(t, router, "/api/start-game", StartGameRequest{SeedWord: "lactone", CenterLetter: "z"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "center")
}

func TestStartGame_CenterNotALetter(t *testing.T) {
	router, _ := gameRouter(t, engine.DefaultOptions(), false)

	for _, center := range []string{"ab", "", "4"} {
		w := postJSON(t, router, "/api/start-game", gin.H{"seed_word": "lactone", "center_letter": center})
		assert.Equal(t, http.StatusBadRequest, w.Code, "center %q", center)
	}
}

func TestStartGame_NoPlayableWords(t *testing.T) {
	router, _ := gameRouter(t, engine.DefaultOptions(), false)

	// bagfruit reduces to abfgirt, which matches nothing in the fixture
	// corpus.
	w := postJSON(t, router, "/api/start-game", StartGameRequest{SeedWord: "bagfruit", CenterLetter: "a"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "hint")
}

// =============================================================================
// Check Word
// =============================================================================

func TestCheckWord_GameFlow(t *testing.T) {
	router, _ := gameRouter(t, engine.DefaultOptions(), false)
	id := startGame(t, router)

	// First find.
	w := postJSON(t, router, "/api/check-word", CheckWordRequest{SessionID: id, Word: "clean"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[CheckWordResponse](t, w)
	assert.True(t, resp.Valid)
	assert.Equal(t, 5, resp.Points)
	assert.False(t, resp.IsPangram)
	assert.Equal(t, 5, resp.Score)
	assert.Equal(t, 1, resp.FoundCount)

	// Duplicate of the same word scores nothing.
	w = postJSON(t, router, "/api/check-word", CheckWordRequest{SessionID: id, Word: "CLEAN"})
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeBody[CheckWordResponse](t, w)
	assert.False(t, resp.Valid)
	assert.Equal(t, "already found", resp.Reason)
	assert.Equal(t, 5, resp.Score)
	assert.Equal(t, 1, resp.FoundCount)

	// The pangram carries the bonus.
	w = postJSON(t, router, "/api/check-word", CheckWordRequest{SessionID: id, Word: "lactone"})
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeBody[CheckWordResponse](t, w)
	assert.True(t, resp.Valid)
	assert.True(t, resp.IsPangram)
	assert.Equal(t, 14, resp.Points)
	assert.Equal(t, 19, resp.Score)
	assert.Equal(t, 2, resp.FoundCount)

	// A word outside the alphabet is rejected with a reason.
	w = postJSON(t, router, "/api/check-word", CheckWordRequest{SessionID: id, Word: "ethanol"})
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeBody[CheckWordResponse](t, w)
	assert.False(t, resp.Valid)
	assert.NotEmpty(t, resp.Reason)
	assert.Equal(t, 19, resp.Score)
}

func TestCheckWord_UnknownSession(t *testing.T) {
	router, _ := gameRouter(t, engine.DefaultOptions(), false)

	w := postJSON(t, router, "/api/check-word", CheckWordRequest{SessionID: "nope", Word: "clean"})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "unknown session")
}

func TestCheckWord_MissingFields(t *testing.T) {
	router, _ := gameRouter(t, engine.DefaultOptions(), false)
	id := startGame(t, router)

	w := postJSON(t, router, "/api/check-word", gin.H{"session_id": id})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
	assert.Contains(t, w.Body.String(), "word is required")
}

// =============================================================================
// Hints
// =============================================================================

func TestGenerateHints(t *testing.T) {
	router, _ := gameRouter(t, engine.DefaultOptions(), false)
	id := startGame(t, router)

	w := postJSON(t, router, "/api/generate-hints", HintsRequest{SessionID: id})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Letters string `json:"letters"`
		Center  string `json:"center"`
		Hints   struct {
			Grid     map[string]map[string]int `json:"grid"`
			Prefixes map[string]int            `json:"two_letter_counts"`
			Totals   struct {
				Words    int `json:"words"`
				Points   int `json:"points"`
				Pangrams int `json:"pangrams"`
			} `json:"totals"`
		} `json:"hints"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "acelnot", resp.Letters)
	assert.Equal(t, "a", resp.Center)
	assert.Equal(t, 9, resp.Hints.Totals.Words)
	assert.Equal(t, 46, resp.Hints.Totals.Points)
	assert.Equal(t, 1, resp.Hints.Totals.Pangrams)

	// lactone and lean share the "l" row; no answers leak.
	assert.NotEmpty(t, resp.Hints.Grid["l"])
	assert.NotContains(t, w.Body.String(), "lactone")
}

func TestGenerateHints_UnknownSession(t *testing.T) {
	router, _ := gameRouter(t, engine.DefaultOptions(), false)

	w := postJSON(t, router, "/api/generate-hints", HintsRequest{SessionID: "nope"})
	require.Equal(t, http.StatusNotFound, w.Code)
}
