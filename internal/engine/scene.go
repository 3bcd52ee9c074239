package engine

type Scene struct {
	Name        string
	GameObjects []*GameObject
	World       WorldAccess
	Clock       *TickClock
	byUID       map[uint64]*GameObject
}

// WorldAccess gives components access to world-level queries without an
// import cycle on the world package.
type WorldAccess interface {
	GetCollidableObjects() []*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		Clock:       &TickClock{},
		byUID:       make(map[uint64]*GameObject),
	}
}

// AddGameObject adds a root object. Children already attached are indexed too.
func (s *Scene) AddGameObject(g *GameObject) {
	s.GameObjects = append(s.GameObjects, g)
	s.index(g)
}

func (s *Scene) index(g *GameObject) {
	g.Scene = s
	s.byUID[g.UID] = g
	for _, child := range g.Children {
		s.index(child)
	}
}

func (s *Scene) unindex(g *GameObject) {
	delete(s.byUID, g.UID)
	g.Scene = nil
	for _, child := range g.Children {
		s.unindex(child)
	}
}

// RemoveGameObject removes g and its descendants from the scene.
func (s *Scene) RemoveGameObject(g *GameObject) {
	if g.Parent != nil {
		g.Parent.RemoveChild(g)
	} else {
		for i, obj := range s.GameObjects {
			if obj == g {
				s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
				break
			}
		}
	}
	s.unindex(g)
}

func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.byUID[uid]
}

// FindByName returns the first object named name, roots before their children.
func (s *Scene) FindByName(name string) *GameObject {
	var walk func(objs []*GameObject) *GameObject
	walk = func(objs []*GameObject) *GameObject {
		for _, g := range objs {
			if g.Name == name {
				return g
			}
		}
		for _, g := range objs {
			if found := walk(g.Children); found != nil {
				return found
			}
		}
		return nil
	}
	return walk(s.GameObjects)
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

// Update advances the scene clock by deltaTime and then updates every root object.
func (s *Scene) Update(deltaTime float32) {
	s.Clock.Advance(deltaTime)
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}
