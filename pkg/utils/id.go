package utils

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 10
)

// GenerateSnapshotID gera o identificador de uma execução do ranking, ex: rk_01-2025_Ab3dE9xYz0
func GenerateSnapshotID(month string) (string, error) {
	id, err := gonanoid.Generate(idAlphabet, idLength)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("rk_%s_%s", month, id), nil
}
