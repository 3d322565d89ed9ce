package terminal

import (
	"strconv"
	"strings"
)

// faceGlyphs are the unicode die faces, indexed by face value
var faceGlyphs = [...]string{"?", "⚀", "⚁", "⚂", "⚃", "⚄", "⚅"}

// renderFaces draws dice as glyphs followed by their values, e.g. "⚀ ⚄  [1 5]"
func renderFaces(faces []int) string {
	glyphs := make([]string, len(faces))
	values := make([]string, len(faces))
	for i, face := range faces {
		if face >= 1 && face < len(faceGlyphs) {
			glyphs[i] = faceGlyphs[face]
		} else {
			glyphs[i] = faceGlyphs[0]
		}
		values[i] = strconv.Itoa(face)
	}
	return strings.Join(glyphs, " ") + "  [" + strings.Join(values, " ") + "]"
}
