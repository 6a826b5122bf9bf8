package ffmpeg

import "strconv"

// BuildRotateArgs builds the stream-copy pass that writes the container
// rotation tag. The mov/mp4 muxer cannot set this tag while encoding, so it
// has to happen in a second invocation over the finished file.
//
// A display rotation of N degrees clockwise is stored as a 360-N rotate tag.
func BuildRotateArgs(inputPath, outputPath string, rotate int) []string {
	return []string{
		"-y",
		"-loglevel", "error",
		"-i", inputPath,
		"-codec", "copy",
		"-map_metadata", "0",
		"-metadata:s:v", "rotate=" + strconv.Itoa(360-rotate),
		outputPath,
	}
}

// TempPath derives the sibling temp file for the rotation pass by inserting
// a "tmp." segment before the final extension: out.mp4 -> out.tmp.mp4.
// Paths without an extension get a ".tmp" suffix instead.
func TempPath(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		switch path[i] {
		case '.':
			return path[:i+1] + "tmp" + path[i:]
		case '/':
			return path + ".tmp"
		}
	}
	return path + ".tmp"
}
