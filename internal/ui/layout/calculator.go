// Package layout provides pure functions for slider dimension calculations.
package layout

// Padding is the number of blank cells kept between the window edge and
// the slider on each side.
const Padding = 2

// MinTrackLength is the shortest track that is still rendered.
const MinTrackLength = 3

// TrackOpts contains the parameters needed to place the track.
type TrackOpts struct {
	WindowWidth  int
	WindowHeight int
	Vertical     bool

	HeaderHeight int // rows above the slider (title, value)
	FooterHeight int // rows below the slider (help line)

	StartCap int // cells taken by the start cap along the track axis
	EndCap   int // cells taken by the end cap along the track axis
	Gutter   int // overhang of end labels beyond the track, per side

	Length int // requested track length, 0 fits the window
}

// Track is the track's placement in window cells.
type Track struct {
	X, Y   int // top-left cell of the track
	Length int
}

// AvailableLength returns the room along the track axis after padding,
// caps and gutters.
func AvailableLength(opts TrackOpts) int {
	total := opts.WindowWidth
	if opts.Vertical {
		total = opts.WindowHeight - opts.HeaderHeight - opts.FooterHeight
	}
	total -= 2 * Padding
	total -= opts.StartCap + opts.EndCap
	total -= 2 * opts.Gutter
	return max(total, 0)
}

// TrackLength returns the track length, honoring a requested length that
// fits. It returns 0 when not even MinTrackLength cells are available.
func TrackLength(opts TrackOpts) int {
	avail := AvailableLength(opts)
	if avail < MinTrackLength {
		return 0
	}
	if opts.Length > 0 && opts.Length < avail {
		return opts.Length
	}
	return avail
}

// Place computes where the track sits in the window.
// Horizontal tracks run along the first row below the header, vertical
// tracks down the column after the padding.
func Place(opts TrackOpts) Track {
	length := TrackLength(opts)
	lead := Padding + opts.StartCap + opts.Gutter
	if opts.Vertical {
		return Track{
			X:      Padding + opts.Gutter,
			Y:      opts.HeaderHeight + lead,
			Length: length,
		}
	}
	return Track{
		X:      lead,
		Y:      opts.HeaderHeight,
		Length: length,
	}
}

// IsTooSmall returns true if the window cannot hold a track.
func IsTooSmall(opts TrackOpts) bool {
	return TrackLength(opts) == 0
}
