package storage

// Output is one image written during a run.
type Output struct {
	Name string
	Path string
}

type OutputStore struct {
	outputs []Output
}

func NewOutputStore() *OutputStore {
	return &OutputStore{}
}

// Add records an output. Re-rendering a name replaces its path but keeps its position.
func (s *OutputStore) Add(name, path string) {
	for i := range s.outputs {
		if s.outputs[i].Name == name {
			s.outputs[i].Path = path
			return
		}
	}
	s.outputs = append(s.outputs, Output{Name: name, Path: path})
}

func (s *OutputStore) All() []Output {
	out := make([]Output, len(s.outputs))
	copy(out, s.outputs)
	return out
}

func (s *OutputStore) Len() int {
	return len(s.outputs)
}
