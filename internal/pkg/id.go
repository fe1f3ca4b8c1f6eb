package pkg

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"

	petname "github.com/dustinkirkland/golang-petname"
)

const (
	petnameWords  = 2
	suffixBytes   = 2
	maxGameIDSize = 64
)

var gameIDPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// GenerateGameID - a readable unique identifier for a game session, like "brave-otter-3fa9".
func GenerateGameID() (string, error) {
	suffix := make([]byte, suffixBytes)
	if _, err := rand.Read(suffix); err != nil {
		return "", fmt.Errorf("failed to read random suffix: %w", err)
	}

	return petname.Generate(petnameWords, "-") + "-" + hex.EncodeToString(suffix), nil
}

// IsValidGameID - rejects ids that GenerateGameID could never produce before they reach storage.
func IsValidGameID(id string) bool {
	return len(id) > 0 && len(id) <= maxGameIDSize && gameIDPattern.MatchString(id)
}
