package scene

// PointCloud is a flat particle buffer: three float32 per point for both
// position and color. Whoever mutates Positions must call MarkDirty so the
// renderer re-uploads the buffer.
type PointCloud struct {
	Name      string
	Positions []float32
	Colors    []float32

	Material PointsMaterial

	// Handle is reserved for the renderer's counterpart object.
	Handle interface{}

	version uint64
}

// PointsMaterial mirrors the handful of material switches the star sprites need.
type PointsMaterial struct {
	Size         float64
	Sprite       string
	VertexColors bool
	Transparent  bool
	Additive     bool
}

// NewPointCloud allocates buffers for count points.
func NewPointCloud(name string, count int) *PointCloud {
	return &PointCloud{
		Name:      name,
		Positions: make([]float32, count*3),
		Colors:    make([]float32, count*3),
	}
}

// Count returns the number of points.
func (p *PointCloud) Count() int {
	return len(p.Positions) / 3
}

// MarkDirty flags the position buffer as changed.
func (p *PointCloud) MarkDirty() {
	p.version++
}

// Version increases every time MarkDirty is called.
func (p *PointCloud) Version() uint64 {
	return p.version
}
