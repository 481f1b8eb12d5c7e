package ws

import (
	"sync"

	"chess-relay/internal/room"
)

// Directory is the identity directory: a bidirectional display-name to
// connection mapping. Both directions are updated under one lock, so an
// entry exists in one map iff it exists in the other.
type Directory struct {
	mu     sync.Mutex
	byName map[string]room.Conn
	byConn map[room.Conn]string
}

func NewDirectory() *Directory {
	return &Directory{
		byName: make(map[string]room.Conn),
		byConn: make(map[room.Conn]string),
	}
}

// Bind maps name to conn. A prior connection for the same name is displaced
// (last bind wins), and its reverse entry is dropped.
func (d *Directory) Bind(name string, conn room.Conn) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if old, ok := d.byName[name]; ok && old != conn {
		delete(d.byConn, old)
	}
	d.byName[name] = conn
	d.byConn[conn] = name
}

// Unbind removes both directions for conn and returns the name that was
// bound. Unknown connections return ok=false.
func (d *Directory) Unbind(conn room.Conn) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	name, ok := d.byConn[conn]
	if !ok {
		return "", false
	}
	delete(d.byConn, conn)
	// The name may have been re-bound to a newer connection; only drop the
	// forward entry if it still points at this one.
	if cur, ok := d.byName[name]; ok && cur == conn {
		delete(d.byName, name)
	}
	return name, true
}

func (d *Directory) Lookup(name string) (room.Conn, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	c, ok := d.byName[name]
	return c, ok
}

func (d *Directory) NameOf(conn room.Conn) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	n, ok := d.byConn[conn]
	return n, ok
}
