package telegram

// chunkSize is the maximum rendered length of a single content item.
// Telegram caps message text at 4096 characters; content longer than this
// is split into ordered chunks and shown one chunk at a time.
const chunkSize = 4000

// splitChunks splits text into rune-safe chunks of at most size runes.
// Concatenating the result reproduces the input exactly.
func splitChunks(text string, size int) []string {
	if text == "" {
		return nil
	}

	runes := []rune(text)
	chunks := make([]string, 0, (len(runes)+size-1)/size)
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}

	return chunks
}

// chunkAt returns the chunk at the given offset, clamping offsets past the
// end to the last chunk, and whether a further chunk exists.
func chunkAt(text string, part int) (chunk string, hasMore bool, clampedPart int) {
	chunks := splitChunks(text, chunkSize)
	if len(chunks) == 0 {
		return "", false, 0
	}

	if part >= len(chunks) {
		part = len(chunks) - 1
	}

	return chunks[part], part < len(chunks)-1, part
}

// ellipsize shortens text to at most max runes, marking the cut with an
// ellipsis. List screens whose rows share one message use it to keep every
// row visible instead of losing the tail to the message size cap.
func ellipsize(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max-1]) + "…"
}

// neighbors computes the previous and next navigation targets for a state
// within a paged collection. Crossing a page boundary re-targets page±1 with
// the index wrapped to the opposite edge; the wrapped "last item" index on a
// previous page is encoded as pageSize-1 and clamped by the renderer once
// the page is fetched. A nil return means no neighbor exists in that
// direction, so no button is rendered.
func neighbors(s navState, itemsOnPage, pageSize, totalPages int) (prev, next *navState) {
	switch {
	case s.Index > 0:
		p := s
		p.Index--
		p.Part = 0
		prev = &p
	case s.Page > 1:
		p := s
		p.Page--
		p.Index = pageSize - 1
		p.Part = 0
		prev = &p
	}

	switch {
	case s.Index < itemsOnPage-1:
		n := s
		n.Index++
		n.Part = 0
		next = &n
	case s.Page < totalPages:
		n := s
		n.Page++
		n.Index = 0
		n.Part = 0
		next = &n
	}

	return prev, next
}
