package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador curto para correlacionar uma submissão de
// correção com suas linhas de log.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
