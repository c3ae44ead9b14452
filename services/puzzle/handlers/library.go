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
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jinseo0904/contextual-word-puzzle/services/puzzle/artifacts"
)

// ListPuzzles returns the IDs of every puzzle in the library.
func ListPuzzles(lib *artifacts.Library) gin.HandlerFunc {
	return func(c *gin.Context) {
		ids := lib.List()
		c.JSON(http.StatusOK, gin.H{"puzzles": ids, "count": len(ids)})
	}
}

// GetPuzzle returns one library puzzle by ID, word list included.
// Library puzzles are published artifacts, not live game sessions.
func GetPuzzle(lib *artifacts.Library) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		p, err := lib.Get(id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "puzzle not found", "id": id})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}
