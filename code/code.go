package code

import (
	"math/rand"
	"strings"
)

var letters = strings.Split("ABCDEFGHIJKLMNOPQRSTUVWXYZ", "")

// Length is the number of letters in every room code.
const Length = 4

func GenerateRandom() string {
	code := ""
	for i := 0; i < Length; i++ {
		index := rand.Intn(len(letters))
		code += letters[index]
	}
	return code
}
