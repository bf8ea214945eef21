package input

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

var (
	// ErrNoSurface is returned when a widget has no render surface.
	ErrNoSurface = errors.New("input: no render surface")
	// ErrMultipleSurfaces is returned when more than one surface kind is
	// configured for the same widget.
	ErrMultipleSurfaces = errors.New("input: more than one render surface")
	// ErrSizeNotSet is returned when the widget's logical size is missing.
	ErrSizeNotSet = errors.New("input: widget size not set")
)

// SurfaceKind is the kind of render target a widget is drawn on.
type SurfaceKind uint8

const (
	// SurfacePanel is a screen-space UI panel. Pointer positions are in
	// screen units, y down.
	SurfacePanel SurfaceKind = iota + 1
	// SurfaceFlat is a flat sprite in world space. Pointer positions are
	// world units, y up, relative to the world origin.
	SurfaceFlat
	// SurfacePlane3D is a plane in a 3D scene. Pointer positions arrive as
	// the ray hit's UV coordinates in [0,1], v down.
	SurfacePlane3D
)

func (k SurfaceKind) String() string {
	switch k {
	case SurfacePanel:
		return "panel"
	case SurfaceFlat:
		return "flat"
	case SurfacePlane3D:
		return "plane3d"
	}
	return "none"
}

// Panel places a widget on screen with its top-left corner at Origin.
type Panel struct {
	Origin Point
}

// Flat places a widget in world space centered on Center. Scale is the
// number of world units per logical unit; zero means 1.
type Flat struct {
	Center Point
	Scale  float32
}

// Plane places a widget on a 3D plane.
type Plane struct{}

// SurfaceOptions lists the candidate surfaces of a widget; exactly one must
// be set.
type SurfaceOptions struct {
	Panel *Panel
	Flat  *Flat
	Plane *Plane

	// Size is the logical widget size.
	Size Point
}

// Surface is a resolved render surface.
type Surface struct {
	kind  SurfaceKind
	panel Panel
	flat  Flat
	size  Point
}

// NewSurface resolves the single render surface described by opt.
func NewSurface(opt SurfaceOptions) (Surface, error) {
	var s Surface
	n := 0
	if opt.Panel != nil {
		n++
		s.kind = SurfacePanel
		s.panel = *opt.Panel
	}
	if opt.Flat != nil {
		n++
		s.kind = SurfaceFlat
		s.flat = *opt.Flat
		if s.flat.Scale == 0 {
			s.flat.Scale = 1
		}
	}
	if opt.Plane != nil {
		n++
		s.kind = SurfacePlane3D
	}
	switch {
	case n == 0:
		return Surface{}, ErrNoSurface
	case n > 1:
		return Surface{}, fmt.Errorf("%w: %d candidates", ErrMultipleSurfaces, n)
	}
	s.size = opt.Size
	return s, nil
}

func (s Surface) Kind() SurfaceKind { return s.kind }

// Size returns the logical widget size.
func (s Surface) Size() (Point, error) {
	if s.kind == 0 {
		return Point{}, ErrNoSurface
	}
	if s.size.X <= 0 || s.size.Y <= 0 {
		return Point{}, ErrSizeNotSet
	}
	return s.size, nil
}

// Resize sets the logical widget size.
func (s *Surface) Resize(size Point) { s.size = size }

// Move repositions a panel or flat surface.
func (s *Surface) Move(p Point) {
	switch s.kind {
	case SurfacePanel:
		s.panel.Origin = p
	case SurfaceFlat:
		s.flat.Center = p
	}
}

// VerticalAlign anchors text shorter than the widget.
type VerticalAlign uint8

const (
	AlignTop VerticalAlign = iota
	AlignMiddle
	AlignBottom
)

// Normalize maps a pointer position into widget-normalized coordinates:
// (0,0) is the top-left corner and (1,1) the bottom-right.
func (s Surface) Normalize(p Point) (Point, error) {
	size, err := s.Size()
	if err != nil {
		return Point{}, err
	}
	switch s.kind {
	case SurfacePanel:
		return Point{
			X: (p.X - s.panel.Origin.X) / size.X,
			Y: (p.Y - s.panel.Origin.Y) / size.Y,
		}, nil
	case SurfaceFlat:
		lx := (p.X - s.flat.Center.X) / s.flat.Scale
		ly := (p.Y - s.flat.Center.Y) / s.flat.Scale
		return Point{X: lx/size.X + 0.5, Y: 0.5 - ly/size.Y}, nil
	default:
		return p, nil
	}
}

// Contains reports whether p falls inside the widget.
func (s Surface) Contains(p Point) bool {
	n, err := s.Normalize(p)
	if err != nil {
		return false
	}
	return n.X >= 0 && n.X < 1 && n.Y >= 0 && n.Y < 1
}

// ToBuffer maps a pointer position to buffer-local coordinates for a text of
// contentHeight logical units. Vertical alignment shifts y only.
func (s Surface) ToBuffer(p Point, contentHeight float32, va VerticalAlign) (Point, error) {
	n, err := s.Normalize(p)
	if err != nil {
		return Point{}, err
	}
	size, _ := s.Size()
	local := Point{X: n.X * size.X, Y: n.Y * size.Y}
	local.Y -= alignOffset(va, size.Y, contentHeight)
	return local, nil
}

// alignOffset is the distance from the widget top to the text top.
func alignOffset(va VerticalAlign, height, content float32) float32 {
	free := math32.Max(0, height-content)
	switch va {
	case AlignMiddle:
		return free / 2
	case AlignBottom:
		return free
	}
	return 0
}

// ContentOffset is the vertical offset at which text of contentHeight is
// drawn inside the widget.
func (s Surface) ContentOffset(contentHeight float32, va VerticalAlign) float32 {
	return alignOffset(va, s.size.Y, contentHeight)
}
