package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/google/uuid"
)

type matchCacheKeyInput struct {
	Direction string    `json:"direction"`
	AnchorID  uuid.UUID `json:"anchor_id"`
	Limit     int       `json:"limit"`
}

func matchCacheKey(direction string, anchorID uuid.UUID, limit int) string {
	in := matchCacheKeyInput{Direction: direction, AnchorID: anchorID, Limit: limit}
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "match:" + direction + ":" + hex.EncodeToString(sum[:])
}
