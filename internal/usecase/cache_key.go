package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// AnalyticsCacheKey is analytics:<kind>:<user>:<sha256 of params>.
func AnalyticsCacheKey(kind string, userID uuid.UUID, params any) string {
	b, _ := json.Marshal(params)
	sum := sha256.Sum256(b)
	return "analytics:" + kind + ":" + userID.String() + ":" + hex.EncodeToString(sum[:])
}

func UserAnalyticsPattern(userID uuid.UUID) string {
	return "analytics:*:" + userID.String() + ":*"
}

func ArchetypesCacheKey(sport string) string {
	return "archetypes:" + strings.ToLower(strings.TrimSpace(sport))
}
