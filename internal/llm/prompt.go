package llm

import "fmt"

// BuildPrompt builds the single user message sent to the chat endpoint.
//
// The instruction pins down everything the parser depends on: the exact
// number of songs, no duplicates of the playlist's own songs, and the
// {"songs": [{"name", "artist"}]} response shape. The playlist listing is
// embedded verbatim.
func BuildPrompt(playlistText string, count int) string {
	return fmt.Sprintf(
		"I will give you a playlist, give me %d songs that are similar to the songs in the playlist, "+
			"no songs that you give me should be the same as the songs in the playlist. "+
			"Your goal is to give me songs that fit the vibe of the playlist. "+
			"You are only allowed to give me the songs nothing more. "+
			"The format of your answer will be a JSON object with the key 'songs' and the value being "+
			"a list of song objects. Each song object should have the keys 'name' and 'artist'. "+
			"Here is the playlist: %s",
		count, playlistText,
	)
}
