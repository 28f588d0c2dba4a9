package tably

import "sync"

// Document is a minimal stand-in for the host page: a set of named mount
// points whose content is replaced wholesale on each render. Concurrent
// renders into the same container are safe; the last writer wins.
type Document struct {
	mu         sync.RWMutex
	containers map[string]string
}

// NewDocument creates a document with the given container ids.
func NewDocument(ids ...string) *Document {
	d := &Document{containers: make(map[string]string, len(ids))}
	for _, id := range ids {
		d.containers[id] = ""
	}
	return d
}

// AddContainer registers an empty mount point. Re-adding an existing id
// clears its content.
func (d *Document) AddContainer(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.containers[id] = ""
}

// Has reports whether the container exists.
func (d *Document) Has(id string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.containers[id]
	return ok
}

// Content returns the current content of the container and whether the
// container exists.
func (d *Document) Content(id string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	content, ok := d.containers[id]
	return content, ok
}

func (d *Document) setContent(id, content string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.containers[id] = content
}
