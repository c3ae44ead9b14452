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
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jinseo0904/contextual-word-puzzle/pkg/validation"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/engine"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/generator"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/letterset"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/session"
	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/telemetry"
)

// ========== REQUEST / RESPONSE TYPES ==========

type ValidateSeedRequest struct {
	SeedWord string `json:"seed_word" binding:"required"`
}

type ValidateSeedResponse struct {
	Valid         bool     `json:"valid"`
	Letters       string   `json:"letters,omitempty"`
	CenterOptions []string `json:"center_options,omitempty"`
	Error         string   `json:"error,omitempty"`
}

type StartGameRequest struct {
	SeedWord     string `json:"seed_word" binding:"required"`
	CenterLetter string `json:"center_letter" binding:"required"`
}

type StartGameResponse struct {
	SessionID    string `json:"session_id"`
	Letters      string `json:"letters"`
	Center       string `json:"center"`
	TotalWords   int    `json:"total_words"`
	MaxScore     int    `json:"max_score"`
	PangramCount int    `json:"pangram_count"`
}

type CheckWordRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Word      string `json:"word" binding:"required"`
}

type CheckWordResponse struct {
	Valid      bool   `json:"valid"`
	Word       string `json:"word"`
	Points     int    `json:"points"`
	IsPangram  bool   `json:"is_pangram"`
	Score      int    `json:"score"`
	FoundCount int    `json:"found_count"`
	Reason     string `json:"reason,omitempty"`
}

type HintsRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

// ========== HANDLERS ==========

// ValidateSeed checks whether a seed word can anchor a puzzle.
//
// A usable seed reduces to the canonical seven-letter alphabet, which
// is returned together with its center options so the client can offer
// the center choice. Rejections answer 400 with the reason in the same
// payload shape.
func ValidateSeed(eng *engine.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ValidateSeedRequest
		if !bindJSON(c, &req) {
			return
		}

		set, err := eng.ValidateSeed(req.SeedWord)
		if err != nil {
			slog.Info("Rejected seed word", "seed", req.SeedWord, "error", err)
			c.JSON(http.StatusBadRequest, ValidateSeedResponse{Valid: false, Error: err.Error()})
			return
		}

		letters := set.String()
		options := make([]string, 0, len(letters))
		for i := 0; i < len(letters); i++ {
			options = append(options, string(letters[i]))
		}
		c.JSON(http.StatusOK, ValidateSeedResponse{
			Valid:         true,
			Letters:       letters,
			CenterOptions: options,
		})
	}
}

// StartGame generates the puzzle for a seed/center pair and opens a
// session against it.
//
// The response carries only the playable summary. When prune is set the
// session plays the curated list, so total_words and max_score reflect
// the pruned puzzle.
//
// Status mapping: bad seed or center 400, no playable words 422 with a
// retry hint, pruning invariant failures 500.
func StartGame(eng *engine.Engine, store *session.Store, prune bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var req StartGameRequest
		if !bindJSON(c, &req) {
			return
		}

		center, err := validation.SanitizeCenter(req.CenterLetter)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		p, err := eng.NewPuzzle(ctx, req.SeedWord, center)
		if err != nil {
			telemetry.LoggerWithTrace(ctx, slog.Default()).Warn("Failed to start game",
				"seed", req.SeedWord, "center", string(center), "error", err)
			switch {
			case errors.Is(err, letterset.ErrInvalidSeed), errors.Is(err, letterset.ErrInvalidCenter):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, generator.ErrEmptyResult):
				c.JSON(http.StatusUnprocessableEntity, gin.H{
					"error": err.Error(),
					"hint":  "try a different seed word or center letter",
				})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{
					"error":    "failed to generate puzzle",
					"trace_id": telemetry.TraceID(ctx),
				})
			}
			return
		}

		if prune {
			pruned, err := eng.PrunePuzzle(ctx, p)
			if err != nil {
				telemetry.LoggerWithTrace(ctx, slog.Default()).Error("Failed to prune puzzle for session",
					"letters", p.Letters, "error", err)
				c.JSON(http.StatusInternalServerError, gin.H{
					"error":    "failed to prepare puzzle",
					"trace_id": telemetry.TraceID(ctx),
				})
				return
			}
			p = pruned
		}

		st := store.Create(p)
		telemetry.LoggerWithSession(ctx, slog.Default(), st.ID).Info("Started game session",
			"letters", p.Letters,
			"center", p.Center,
			"words", p.TotalWords,
			"max_score", p.MaxScore)
		c.JSON(http.StatusOK, StartGameResponse{
			SessionID:    st.ID,
			Letters:      p.Letters,
			Center:       p.Center,
			TotalWords:   p.TotalWords,
			MaxScore:     p.MaxScore,
			PangramCount: len(p.Pangrams),
		})
	}
}

// CheckWord scores one guess against a session's puzzle and folds the
// result into the running session state. Invalid guesses answer 200
// with valid:false and a reason; only an unknown session is an error.
func CheckWord(eng *engine.Engine, store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var req CheckWordRequest
		if !bindJSON(c, &req) {
			return
		}

		p, err := store.Puzzle(req.SessionID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown session", "session_id": req.SessionID})
			return
		}
		found, err := store.Found(req.SessionID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown session", "session_id": req.SessionID})
			return
		}

		res := eng.CheckWord(ctx, p, found, req.Word)
		st, err := store.Apply(req.SessionID, res)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown session", "session_id": req.SessionID})
			return
		}
		telemetry.LoggerWithSession(ctx, slog.Default(), req.SessionID).Debug("Checked word",
			"word", res.Word,
			"valid", res.Valid,
			"points", res.Points)

		c.JSON(http.StatusOK, CheckWordResponse{
			Valid:      res.Valid,
			Word:       res.Word,
			Points:     res.Points,
			IsPangram:  res.IsPangram,
			Score:      st.Score,
			FoundCount: len(st.Found),
			Reason:     res.Reason,
		})
	}
}

// GenerateHints returns the hint matrix for a session's puzzle: word
// counts by first letter and length, two-letter prefix counts, and the
// puzzle totals. Counts only, never word text.
func GenerateHints(eng *engine.Engine, store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req HintsRequest
		if !bindJSON(c, &req) {
			return
		}

		p, err := store.Puzzle(req.SessionID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown session", "session_id": req.SessionID})
			return
		}

		m := eng.Hints(c.Request.Context(), p)
		c.JSON(http.StatusOK, gin.H{
			"letters": p.Letters,
			"center":  p.Center,
			"hints":   m,
		})
	}
}
