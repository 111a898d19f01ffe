package bundler

import "path/filepath"

// frame is one entry of the path context: the file whose content is being
// walked and the directory its relative references resolve against.
type frame struct {
	dir  string
	file string
}

func fileFrame(file string) frame {
	return frame{dir: filepath.Dir(file), file: file}
}

// pathStack tracks which file the walker is inside. The bottom frame is the
// root document and is never popped.
type pathStack struct {
	frames []frame
}

func newPathStack(rootFile string) *pathStack {
	return &pathStack{frames: []frame{fileFrame(rootFile)}}
}

func (s *pathStack) top() frame {
	return s.frames[len(s.frames)-1]
}

// current returns the base directory for the next relative reference.
func (s *pathStack) current() string {
	return s.top().dir
}

// file returns the document currently being walked.
func (s *pathStack) file() string {
	return s.top().file
}

func (s *pathStack) push(f frame) {
	s.frames = append(s.frames, f)
}

// pop removes the top frame. Popping the root frame is a programming error.
func (s *pathStack) pop() {
	if len(s.frames) <= 1 {
		panic("bundler: pop of root path context")
	}
	s.frames = s.frames[:len(s.frames)-1]
}

func (s *pathStack) depth() int {
	return len(s.frames)
}

// resolve returns the absolute, cleaned location of rel as seen from the
// current frame. Absolute paths are returned cleaned.
func (s *pathStack) resolve(rel string) string {
	p := filepath.FromSlash(rel)
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(s.current(), p)
}
