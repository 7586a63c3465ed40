package shading

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func identityUniforms() *Uniforms {
	return &Uniforms{Camera: mgl32.Ident4(), Model: mgl32.Ident4()}
}

func TestFaceIndexDerivation(t *testing.T) {
	cases := []struct {
		index uint32
		want  uint32
	}{
		{0, 0}, {1, 0}, {2, 0}, {3, 0},
		{4, 1}, {7, 1},
		{8, 2},
		{1000, 250}, {1003, 250},
	}
	u := identityUniforms()
	for _, c := range cases {
		out := VertexStage(Vertex{}, c.index, u)
		if out.FaceIndex.Value != c.want {
			t.Errorf("vertex index %d: face %d, want %d", c.index, out.FaceIndex.Value, c.want)
		}
	}
}

func TestLightingLadder(t *testing.T) {
	codes := map[uint32]mgl32.Vec4{
		0: {0.3, 0, 0, 1},
		1: {0.3, 0, 0, 1},
		2: {0.5, 0, 0, 1},
		3: {0.5, 0, 0, 1},
		4: {0.75, 0, 0, 1},
		5: {0.75, 0, 0, 1},
		6:          SentinelColor,
		255:        SentinelColor,
		0xFFFFFFFF: SentinelColor,
	}
	for code, want := range codes {
		got := FragmentStage(FragmentInput{FaceIndex: Flat{Value: 0}}, []uint32{code})
		if got != want {
			t.Errorf("code %d: got %v, want %v", code, got, want)
		}
	}
}

func TestFragmentStageOutOfRangeIndex(t *testing.T) {
	got := FragmentStage(FragmentInput{FaceIndex: Flat{Value: 3}}, []uint32{2})
	if got != SentinelColor {
		t.Fatalf("face index past buffer end: got %v, want sentinel %v", got, SentinelColor)
	}
	got = FragmentStage(FragmentInput{}, nil)
	if got != SentinelColor {
		t.Fatalf("nil face-code buffer: got %v, want sentinel %v", got, SentinelColor)
	}
}

func TestFragmentStageIgnoresVertexColor(t *testing.T) {
	codes := []uint32{4}
	a := FragmentStage(FragmentInput{Color: mgl32.Vec3{0, 1, 0}}, codes)
	b := FragmentStage(FragmentInput{Color: mgl32.Vec3{1, 1, 1}}, codes)
	if a != b {
		t.Fatalf("shading depends on interpolated color: %v vs %v", a, b)
	}
}

func TestVertexStageTransformOrder(t *testing.T) {
	// Model moves the vertex first, then the camera transform applies.
	u := &Uniforms{
		Camera: mgl32.Scale3D(2, 2, 2),
		Model:  mgl32.Translate3D(1, 0, 0),
	}
	out := VertexStage(Vertex{Position: mgl32.Vec3{1, 0, 0}}, 0, u)
	want := mgl32.Vec4{4, 0, 0, 1} // scale(2) * (translate(1) * (1,0,0,1))
	if out.ClipPosition != want {
		t.Fatalf("clip position %v, want %v (model must apply before camera)", out.ClipPosition, want)
	}

	// The reversed order would give a different result; pin that it does.
	reversed := u.Model.Mul4(u.Camera).Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	if reversed == want {
		t.Fatal("test matrices do not distinguish transform order")
	}
}

func TestVertexStageDeterminism(t *testing.T) {
	u := &Uniforms{
		Camera: mgl32.Perspective(mgl32.DegToRad(60), 1.5, 0.1, 1000).Mul4(
			mgl32.LookAtV(mgl32.Vec3{8, 20, 40}, mgl32.Vec3{8, 8, 8}, mgl32.Vec3{0, 1, 0})),
		Model: mgl32.Translate3D(16, 0, 16),
	}
	v := Vertex{Position: mgl32.Vec3{3.5, -2, 7}, Color: mgl32.Vec3{1, 0, 0}}

	first := VertexStage(v, 42, u)
	// Interleave unrelated invocations; they must not influence the result.
	for i := uint32(0); i < 8; i++ {
		VertexStage(Vertex{Position: mgl32.Vec3{float32(i), 0, 0}}, i, u)
	}
	second := VertexStage(v, 42, u)

	if first != second {
		t.Fatalf("vertex stage is not a pure function: %+v vs %+v", first, second)
	}
}

func TestVertexStageColorPassthrough(t *testing.T) {
	c := mgl32.Vec3{0.25, 0.5, 0.75}
	out := VertexStage(Vertex{Color: c}, 9, identityUniforms())
	if out.Color != c {
		t.Fatalf("color %v, want unmodified %v", out.Color, c)
	}
}

func BenchmarkVertexStage(b *testing.B) {
	u := &Uniforms{Camera: mgl32.Perspective(1.0, 1.5, 0.1, 1000), Model: mgl32.Ident4()}
	v := Vertex{Position: mgl32.Vec3{1, 2, 3}, Color: mgl32.Vec3{1, 0, 0}}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = VertexStage(v, uint32(i), u)
	}
}

func BenchmarkFragmentStage(b *testing.B) {
	codes := []uint32{0, 1, 2, 3, 4, 5}
	in := FragmentInput{FaceIndex: Flat{Value: 3}}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = FragmentStage(in, codes)
	}
}
