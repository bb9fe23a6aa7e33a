package game

import (
	"bytes"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/iburimskiy/wheel-picker/internal/wheel"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	sliceBorder = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

func init() {
	whiteImage.Fill(color.White)
}

// fonts caches bold faces by pixel size.
type fonts struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

func newFonts() (*fonts, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, err
	}
	return &fonts{source: src, faces: map[float64]*text.GoTextFace{}}, nil
}

func (f *fonts) face(size float64) *text.GoTextFace {
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{Source: f.source, Size: size}
	f.faces[size] = face
	return face
}

// drawText draws s with its top-left (or aligned edge) at x, y.
func (f *fonts) drawText(dst *ebiten.Image, s string, size, x, y float64, align text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(dst, s, f.face(size), op)
}

func (f *fonts) measure(s string, size float64) (float64, float64) {
	return text.Measure(s, f.face(size), size*1.2)
}

// surface renders the wheel onto an ebiten image.
type surface struct {
	dst   *ebiten.Image
	fonts *fonts
}

func (s *surface) Size() (float64, float64) {
	b := s.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *surface) FillWedge(cx, cy, radius, start, end float64, fill color.Color) {
	var path vector.Path
	path.MoveTo(float32(cx), float32(cy))
	path.Arc(float32(cx), float32(cy), float32(radius), float32(start), float32(end), vector.Clockwise)
	path.Close()

	fillPath(s.dst, &path, fill)
	strokePath(s.dst, &path, 2, sliceBorder)
}

func (s *surface) FillCircle(cx, cy, radius float64, fill color.Color) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(radius), fill, true)
	vector.StrokeCircle(s.dst, float32(cx), float32(cy), float32(radius), 2, sliceBorder, true)
}

// DrawLabel mirrors a canvas translate/rotate/fillText: the label's
// baseline sits at (X, Y) in the rotated frame.
func (s *surface) DrawLabel(l wheel.Label) {
	face := s.fonts.face(l.FontSize)

	op := &text.DrawOptions{}
	op.GeoM.Translate(l.X, l.Y-face.Metrics().HAscent)
	op.GeoM.Rotate(l.Angle)
	op.GeoM.Translate(l.OriginX, l.OriginY)
	op.ColorScale.ScaleWithColor(l.Color)
	switch l.Align {
	case wheel.AlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case wheel.AlignEnd:
		op.PrimaryAlign = text.AlignEnd
	default:
		op.PrimaryAlign = text.AlignStart
	}
	text.Draw(s.dst, l.Text, face, op)
}

func fillPath(dst *ebiten.Image, path *vector.Path, clr color.Color) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	drawVertices(dst, vs, is, clr)
}

func strokePath(dst *ebiten.Image, path *vector.Path, width float32, clr color.Color) {
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
	})
	drawVertices(dst, vs, is, clr)
}

func drawVertices(dst *ebiten.Image, vs []ebiten.Vertex, is []uint16, clr color.Color) {
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
