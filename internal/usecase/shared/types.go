package shared

import "shareit/internal/pkg/errs"

// Page translates a raw offset/size pair into a page request the way the
// store consumes it: the offset truncates onto a page index, so offsets that
// are not exact multiples of size alias onto the preceding aligned page.
type Page struct {
	Number int
	Size   int
}

func NewPage(from, size int) (Page, error) {
	if from < 0 {
		return Page{}, errs.Mark(errs.Newf("page offset must not be less than zero: %d", from), ErrInvalidPage)
	}
	if size < 1 {
		return Page{}, errs.Mark(errs.Newf("page size must not be less than one: %d", size), ErrInvalidPage)
	}
	return Page{Number: from / size, Size: size}, nil
}

func (p Page) Limit() int32 {
	return int32(p.Size)
}

func (p Page) Offset() int32 {
	return int32(p.Number * p.Size)
}
