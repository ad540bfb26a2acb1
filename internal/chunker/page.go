package chunker

import "fmt"

// PageResult is one page of a document's paragraph blocks.
//
// ChunkIndex, ChunkStart and ChunkEnd are set only when the page holds exactly
// one chunk; pages with zero or several chunks leave all three nil.
type PageResult struct {
	Page        int
	PageSize    int
	TotalChunks int
	HasNext     bool
	HasPrev     bool
	Chunks      []Chunk

	ChunkIndex *int
	ChunkStart *int
	ChunkEnd   *int
}

// Texts returns the text of every chunk on the page. It never returns nil.
func (r PageResult) Texts() []string {
	texts := make([]string, len(r.Chunks))
	for i, c := range r.Chunks {
		texts[i] = c.Text
	}
	return texts
}

// Page segments text into paragraph blocks and returns the requested page.
//
// A document without blocks yields an empty result for any request. Otherwise
// page and pageSize must be >= 1 (ErrInvalidParameter) and the page must start
// before the last block (ErrOutOfRange).
func Page(text string, page, pageSize int) (PageResult, error) {
	chunks := Split(text)
	total := len(chunks)

	if total == 0 {
		return PageResult{
			Page:     page,
			PageSize: pageSize,
			Chunks:   []Chunk{},
		}, nil
	}

	if page < 1 {
		return PageResult{}, fmt.Errorf("%w: page must be >= 1, got %d", ErrInvalidParameter, page)
	}
	if pageSize < 1 {
		return PageResult{}, fmt.Errorf("%w: page_size must be >= 1, got %d", ErrInvalidParameter, pageSize)
	}

	// Guard the multiplication so huge page numbers cannot wrap around.
	if page-1 > (total-1)/pageSize {
		return PageResult{}, fmt.Errorf("%w: page %d of %d chunks with page_size %d", ErrOutOfRange, page, total, pageSize)
	}
	startIdx := (page - 1) * pageSize
	endIdx := startIdx + pageSize
	hasNext := endIdx < total
	if endIdx > total {
		endIdx = total
	}

	result := PageResult{
		Page:        page,
		PageSize:    pageSize,
		TotalChunks: total,
		HasNext:     hasNext,
		HasPrev:     page > 1,
		Chunks:      chunks[startIdx:endIdx],
	}

	if len(result.Chunks) == 1 {
		only := result.Chunks[0]
		index, start, end := only.Index, only.Offset, only.End()
		result.ChunkIndex = &index
		result.ChunkStart = &start
		result.ChunkEnd = &end
	}

	return result, nil
}
