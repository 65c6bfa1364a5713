package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID returns a short random identifier of the given length
func GenerateID(length int) (string, error) {
	return gonanoid.Generate(characters, length)
}
