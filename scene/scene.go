package scene

// Scene is the root of everything a renderer draws.
type Scene struct {
	Root   *Group
	Points []*PointCloud
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{Root: NewGroup("scene")}
}

// Add attaches groups to the scene root.
func (s *Scene) Add(groups ...*Group) {
	s.Root.Add(groups...)
}

// AddPoints registers a point cloud for rendering.
func (s *Scene) AddPoints(p *PointCloud) {
	s.Points = append(s.Points, p)
}

// RemovePoints unregisters a point cloud.
func (s *Scene) RemovePoints(p *PointCloud) {
	for i, q := range s.Points {
		if q == p {
			s.Points = append(s.Points[:i], s.Points[i+1:]...)
			return
		}
	}
}
